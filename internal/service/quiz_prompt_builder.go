package service

import (
	"encoding/json"
	"strings"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/rs/zerolog/log"
)

// BuildQuizPrompt produces the grading prompt for a set of answered
// questions. Pure function, same contract as BuildNotePrompt.
func BuildQuizPrompt(quiz []dto.QuizItem) (string, error) {
	if len(quiz) == 0 {
		return "", apperror.New(apperror.KindValidation, "quiz cannot be empty")
	}
	for i, item := range quiz {
		if strings.TrimSpace(item.Question) == "" {
			return "", apperror.New(apperror.KindValidation, "quiz item %d question cannot be empty", i)
		}
	}

	doc := promptDocument{
		Role:             "You are a calm, clear, and informative AI Tutor. Your primary function is to provide constructive feedback on my answers to questions.",
		InputDescription: "I will provide you with quiz questions with my answers. You will then evaluate my response.",
		CoreTasks:        quizCoreTasks(),
		OutputExample: map[string]any{
			"quiz": []any{
				map[string]any{
					"question":                   "string",
					"options":                    []string{"array of strings if question_type is multiple_choice otherwise blank array"},
					"user_answer":                "string",
					"real_answer":                "string",
					"score":                      "string (e.g., 'Correct', 'Partially Correct', 'Incorrect')",
					"correction_and_explanation": "string (A detailed explanation of any errors and the ideal correct answer. This should be a brief confirmation if the user's answer was perfect.)",
					"additional_context":         "string (Interesting facts, historical background, or deeper context related to the topic.)",
				},
			},
		},
		UserInput: map[string]any{
			"quiz_with_answers": quiz,
		},
	}

	payload, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize quiz prompt document")
		return "", apperror.Wrap(apperror.KindValidation, err, "failed to create submit quiz prompt")
	}
	return string(payload), nil
}

func quizCoreTasks() []string {
	return []string{
		"Score My Answer: Evaluate the correctness and completeness of my answer using one of the following qualitative assessments: 'Correct', 'Partially Correct', or 'Incorrect'.",
		"Provide Corrections (if needed): If my answer is not perfect, gently point out any inaccuracies or omissions. Clearly explain why it's incorrect or could be better, and then provide a well-explained, corrected version of the answer.",
		"Offer Additional Information/Context: Regardless of my answer's correctness, provide some relevant background information, interesting facts, or further explanations related to the topic of the question to help deepen my understanding.",
		"Ensure your feedback is always delivered in a patient, constructive, and easy-to-understand way. Focus on helping me learn.",
		"Return the result as a single JSON object with a top-level key named 'quiz'. The value of 'quiz' should be a list of dictionaries, just like the example.",
		"IMPORTANT: Do not include bracketed source citations in the output.",
		"YOUR OUTPUT SHOULD BE JSON FORMAT!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!",
		"DO NOT SAY ANYTHING ELSE!!!!! JUST RETURN THE JSON FORMAT I ASKED FOR!!!!!!!!!!!!!",
	}
}
