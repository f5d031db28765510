package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/jihokoo/notequiz/internal/model"
	"github.com/jihokoo/notequiz/internal/repository"
	"github.com/jihokoo/notequiz/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	submitQuizSvc service.SubmitQuizService
	gradingRepo   repository.GradingRepository
	questionRepo  repository.QuestionRepository
}

func NewQuizController(
	submitQuizSvc service.SubmitQuizService,
	gradingRepo repository.GradingRepository,
	questionRepo repository.QuestionRepository,
) *QuizController {
	return &QuizController{
		submitQuizSvc: submitQuizSvc,
		gradingRepo:   gradingRepo,
		questionRepo:  questionRepo,
	}
}

// GradeQuiz godoc
// @Summary Grade a set of answered questions
// @Description Sends the answered questions to the AI for grading and stores one grading per question, replacing any earlier grading of the same question.
// @Tags quiz
// @Accept json
// @Produce json
// @Param note_id path int true "Note ID the questions belong to"
// @Param quiz body dto.GradeQuizRequest true "Answered questions to grade"
// @Success 200 {object} dto.GradeQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "AI call or response validation failed after retries"
// @Router /notes/{note_id}/grade [post]
func (ctrl *QuizController) GradeQuiz(c *gin.Context) {
	var req dto.GradeQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GradeQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz := make([]dto.QuizItem, 0, len(req.Quiz))
	for _, item := range req.Quiz {
		quiz = append(quiz, dto.QuizItem{
			Question:   item.Question,
			Options:    item.Options,
			UserAnswer: item.UserAnswer,
		})
	}

	result, err := ctrl.submitQuizSvc.Submit(c.Request.Context(), req.ApiKey, req.Model, quiz)
	if err != nil {
		log.Error().Err(err).Int("quizLength", len(quiz)).Msg("GradeQuiz failed")
		c.JSON(statusForError(err), dto.ErrorResponse{Message: "Failed to grade quiz", Details: []string{err.Error()}})
		return
	}

	// The validator guarantees one graded entry per submitted item, in
	// order, so graded[i] corresponds to req.Quiz[i].
	for i, graded := range result.Quiz {
		questionID := req.Quiz[i].QuestionID
		ctrl.persistGrading(questionID, graded)
	}

	c.JSON(http.StatusOK, dto.GradeQuizResponse{Quiz: result.Quiz})
}

// persistGrading stores a grading for one question, updating in place when
// the question was graded before. Persistence failures here do not fail the
// request; the graded result is still returned to the caller.
func (ctrl *QuizController) persistGrading(questionID uint, graded dto.GradedAnswer) {
	existing, err := ctrl.gradingRepo.FindByQuestionID(questionID)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Failed to look up existing grading")
		return
	}

	if existing != nil {
		existing.UserAnswer = graded.UserAnswer
		existing.RealAnswer = graded.RealAnswer
		existing.Score = graded.Score
		existing.CorrectionAndExplanation = graded.CorrectionAndExplanation
		existing.AdditionalContext = graded.AdditionalContext
		if err := ctrl.gradingRepo.Update(existing); err != nil {
			log.Warn().Err(err).Uint("questionID", questionID).Msg("Failed to update grading")
		}
		return
	}

	grading := &model.Grading{
		QuestionID:               questionID,
		UserAnswer:               graded.UserAnswer,
		RealAnswer:               graded.RealAnswer,
		Score:                    graded.Score,
		CorrectionAndExplanation: graded.CorrectionAndExplanation,
		AdditionalContext:        graded.AdditionalContext,
	}
	if err := ctrl.gradingRepo.Insert(grading); err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Failed to insert grading")
	}
}

// GetGradingByQuestionID godoc
// @Summary Get the stored grading for one question
// @Tags quiz
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.GradingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found or not graded yet"
// @Router /questions/{question_id}/grading [get]
func (ctrl *QuizController) GetGradingByQuestionID(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	if _, err := ctrl.questionRepo.FindByID(uint(questionID)); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
		return
	}

	grading, err := ctrl.gradingRepo.FindByQuestionID(uint(questionID))
	if err != nil {
		log.Error().Err(err).Uint64("questionID", questionID).Msg("Failed to load grading")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve grading"})
		return
	}
	if grading == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question has not been graded yet"})
		return
	}

	c.JSON(http.StatusOK, dto.GradingResponse{
		ID:                       grading.ID,
		QuestionID:               grading.QuestionID,
		UserAnswer:               grading.UserAnswer,
		RealAnswer:               grading.RealAnswer,
		Score:                    grading.Score,
		CorrectionAndExplanation: grading.CorrectionAndExplanation,
		AdditionalContext:        grading.AdditionalContext,
		UpdatedAt:                grading.UpdatedAt,
	})
}
