package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/model"
	"github.com/rs/zerolog/log"
)

// promptDocument is the structured document sent to the model: a role
// description, a task list, an explicit output-schema example and the user's
// payload, serialized as indented JSON.
type promptDocument struct {
	Role             string   `json:"role"`
	InputDescription string   `json:"input_description"`
	CoreTasks        []string `json:"core_tasks"`
	OutputExample    any      `json:"example_of_output_format(the result should be a json)"`
	UserInput        any      `json:"user_input"`
}

var requiredQuizStructureKeys = []string{
	model.QuestionTypeMultipleChoice,
	model.QuestionTypeShortAnswer,
	model.QuestionTypeLongAnswer,
}

// BuildNotePrompt produces the analysis prompt for a lecture transcript.
// It is a pure function: identical input always yields an identical
// document. The requested question counts are the only input-dependent
// instruction besides the transcript itself.
func BuildNotePrompt(note string, quizStructure map[string]int) (string, error) {
	if strings.TrimSpace(note) == "" {
		return "", apperror.New(apperror.KindValidation, "note content cannot be empty")
	}
	if quizStructure == nil {
		return "", apperror.New(apperror.KindValidation, "quiz structure must be a map")
	}
	for _, key := range requiredQuizStructureKeys {
		count, ok := quizStructure[key]
		if !ok {
			return "", apperror.New(apperror.KindValidation, "quiz structure missing required key: %s", key)
		}
		if count < 0 {
			return "", apperror.New(apperror.KindValidation, "quiz structure value for '%s' must be a non-negative integer", key)
		}
	}

	doc := promptDocument{
		Role:             "You are an AI Lecture Transcript Analyst and Tutor. Your primary function is to help me understand lecture material better by analyzing, refining, and explaining concepts based on the transcripts I provide.",
		InputDescription: "I will provide you with a transcript from a lecture. These transcripts might be automatically generated (and thus contain errors), incomplete, or lack proper formatting.",
		CoreTasks:        noteCoreTasks(quizStructure),
		OutputExample: map[string]any{
			"summary": "summary in markdown, which looks professional and concise(do not include bracketed source citations)",
			"quiz": []any{
				map[string]any{
					"question_type": "string(multiple_choice, short_answer, long_answer)",
					"question":      "string",
					"options":       []string{"array of strings if question_type is multiple_choice otherwise None(options don't include option labels)"},
					"answer":        "string",
				},
			},
		},
		UserInput: map[string]string{
			"note_transcript": note,
		},
	}

	payload, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize note prompt document")
		return "", apperror.Wrap(apperror.KindValidation, err, "failed to create submit note prompt")
	}
	return string(payload), nil
}

func noteCoreTasks(quizStructure map[string]int) []string {
	return []string{
		"Fact-Check: Identify and point out any potential factual inaccuracies or outdated information that might stem from transcription errors or the lecture's content. Suggest corrections with brief explanations.",
		"Identify Gaps: Pinpoint areas that seem incomplete or where crucial information might be missing (e.g., a speaker trailed off, or a key detail was omitted). Suggest what might be missing or what questions I could ask to fill these gaps.",
		"Clarify Ambiguities: If any part of the transcript is unclear, ambiguous, or poorly phrased, rephrase it for better understanding.",
		"Improve Structure & Organization: If applicable, suggest ways to better structure the information (e.g., using headings, bullet points, summaries).",
		"Define Key Terms: Identify key terminology within the transcript. Provide clear and concise definitions for any terms that might be complex or foundational to the topic.",
		"Explain Core Concepts: For the main topics covered in the transcript, provide a clear explanation as if you were teaching it to me for the first time or clarifying a point of confusion.",
		"Provide Examples: Where appropriate, offer relevant examples, analogies, or real-world applications to illustrate the concepts discussed in the lecture.",
		"Connect to Broader Topics: If possible, explain how the concepts in the transcript relate to larger themes within the subject or to previously discussed topics.",
		"Suggest Further Learning: If relevant, suggest resources (articles, videos, concepts to Google) for deeper exploration of the topics.",
		"DO NOT INCLUDE BRACKETED SOURCE CITATIONS IN THE SUMMARY AND QUIZ like [0, 3, 4, 12, 13, 14, 15].",
		"YOUR OUTPUT SHOULD BE JSON FORMAT!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!",
		"DO NOT SAY ANYTHING ELSE!!!!! JUST RETURN THE JSON FORMAT I ASKED FOR!!!!!!!!!!!!!",
		"The summaary should be concise and easy to read and understand.",
		"Please structure the summary for at-a-glance comprehension. It must be organized into clear categories based on context or usage level, such as 'Most Common Expressions', 'Simpler Terms', and 'More Technical/Professional Expressions'.",
		fmt.Sprintf("Generate Practice Questions: Create exactly %d multiple-choice, %d short-answer, and %d long-answer questions. Adhere strictly to the 'quiz' structure defined in the 'output_format'.",
			quizStructure[model.QuestionTypeMultipleChoice],
			quizStructure[model.QuestionTypeShortAnswer],
			quizStructure[model.QuestionTypeLongAnswer]),
	}
}
