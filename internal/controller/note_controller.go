package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/jihokoo/notequiz/internal/apperror"
	"github.com/jihokoo/notequiz/internal/dto"
	"github.com/jihokoo/notequiz/internal/repository"
	"github.com/jihokoo/notequiz/internal/service"
	"github.com/rs/zerolog/log"
)

type NoteController struct {
	submitNoteSvc service.SubmitNoteService
	noteRepo      repository.NoteRepository
	hashtagRepo   repository.NoteHashtagRepository
}

func NewNoteController(
	submitNoteSvc service.SubmitNoteService,
	noteRepo repository.NoteRepository,
	hashtagRepo repository.NoteHashtagRepository,
) *NoteController {
	return &NoteController{
		submitNoteSvc: submitNoteSvc,
		noteRepo:      noteRepo,
		hashtagRepo:   hashtagRepo,
	}
}

// statusForError maps an error kind to an HTTP status. Untagged errors fall
// through to 500.
func statusForError(err error) int {
	kind, ok := apperror.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindProvider, apperror.KindSchema:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// SubmitNote godoc
// @Summary Submit a lecture note for analysis
// @Description Sends the transcript to the AI for summarization and quiz generation, then persists the note, summary and questions.
// @Tags notes
// @Accept json
// @Produce json
// @Param note body dto.SubmitNoteRequest true "Note content, tags and requested quiz structure"
// @Success 201 {object} dto.SubmitNoteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or quiz structure"
// @Failure 502 {object} dto.ErrorResponse "AI call or response validation failed after retries"
// @Failure 500 {object} dto.ErrorResponse "Persistence failure"
// @Router /notes [post]
func (ctrl *NoteController) SubmitNote(c *gin.Context) {
	var req dto.SubmitNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitNoteRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.submitNoteSvc.Submit(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("noteName", req.Name).Msg("SubmitNote failed")
		c.JSON(statusForError(err), dto.ErrorResponse{Message: "Failed to submit note", Details: []string{err.Error()}})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAllNotes godoc
// @Summary List all notes
// @Tags notes
// @Produce json
// @Success 200 {array} dto.NoteSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes [get]
func (ctrl *NoteController) GetAllNotes(c *gin.Context) {
	notes, err := ctrl.noteRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list notes")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve notes"})
		return
	}

	resp := make([]dto.NoteSummaryResponse, 0, len(notes))
	for _, note := range notes {
		item := dto.NoteSummaryResponse{ID: note.ID, Name: note.Name, CreatedAt: note.CreatedAt}
		tags, err := ctrl.hashtagRepo.FindTagsByNoteID(note.ID)
		if err != nil {
			log.Warn().Err(err).Uint("noteID", note.ID).Msg("Failed to load tags for note listing")
		} else {
			item.Tags = tags
		}
		resp = append(resp, item)
	}
	c.JSON(http.StatusOK, resp)
}

// GetNoteDetails godoc
// @Summary Get a note with its summary, tags, questions and gradings
// @Tags notes
// @Produce json
// @Param note_id path int true "Note ID"
// @Success 200 {object} dto.NoteDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid note ID format"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{note_id} [get]
func (ctrl *NoteController) GetNoteDetails(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("note_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid note ID format"})
		return
	}

	note, err := ctrl.noteRepo.FindByIDWithDetails(uint(noteID))
	if err != nil {
		log.Warn().Err(err).Uint64("noteID", noteID).Msg("Note not found")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Note not found"})
		return
	}

	resp := dto.NoteDetailResponse{
		ID:        note.ID,
		Name:      note.Name,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
	if note.Summary != nil {
		resp.Summary = note.Summary.Content
	}

	tags, err := ctrl.hashtagRepo.FindTagsByNoteID(note.ID)
	if err != nil {
		log.Warn().Err(err).Uint("noteID", note.ID).Msg("Failed to load tags for note details")
	} else {
		resp.Tags = tags
	}

	resp.Questions = make([]dto.QuestionResponse, 0, len(note.Questions))
	for _, question := range note.Questions {
		qResp := dto.QuestionResponse{
			ID:      question.ID,
			Content: question.Content,
			Type:    question.Type,
			Answer:  question.Answer,
		}
		for _, option := range question.Options {
			qResp.Options = append(qResp.Options, option.Content)
		}
		if question.Grading != nil {
			var gradingResp dto.GradingResponse
			if err := copier.Copy(&gradingResp, question.Grading); err != nil {
				log.Warn().Err(err).Uint("questionID", question.ID).Msg("Failed to map grading to response")
			} else {
				qResp.Grading = &gradingResp
			}
		}
		resp.Questions = append(resp.Questions, qResp)
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Param note_id path int true "Note ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid note ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes/{note_id} [delete]
func (ctrl *NoteController) DeleteNote(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("note_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid note ID format"})
		return
	}

	if err := ctrl.noteRepo.Delete(uint(noteID)); err != nil {
		log.Error().Err(err).Uint64("noteID", noteID).Msg("Failed to delete note")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete note"})
		return
	}
	c.Status(http.StatusNoContent)
}
