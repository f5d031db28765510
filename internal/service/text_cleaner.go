package service

import (
	"regexp"
	"strings"

	"github.com/jihokoo/notequiz/internal/dto"
)

// Gemini's grounded generation sometimes leaves bracketed source-citation
// markers like [12, 13] in the text even when told not to. They are stripped
// from every display field before persistence.
var (
	bracketedSpan   = regexp.MustCompile(`\[(.*?)\]`)
	citationContent = regexp.MustCompile(`^[0-9,\s]*$`)
)

// EraseBracketedCitations removes every bracketed span whose content is only
// digits, commas and whitespace. Any other bracketed content (e.g. "[abc]",
// "[1-2]") is left untouched. The result is trimmed of surrounding
// whitespace.
func EraseBracketedCitations(text string) string {
	cleaned := bracketedSpan.ReplaceAllStringFunc(text, func(match string) string {
		content := match[1 : len(match)-1]
		if citationContent.MatchString(content) {
			return ""
		}
		return match
	})
	return strings.TrimSpace(cleaned)
}

// CleanNoteResult strips citation artifacts from the display fields of a
// validated note result: the summary and, per question, the question text,
// options and answer. Nothing else is touched.
func CleanNoteResult(result *dto.NoteResult) {
	if result == nil {
		return
	}
	result.Summary = EraseBracketedCitations(result.Summary)
	for i := range result.Quiz {
		q := &result.Quiz[i]
		q.Question = EraseBracketedCitations(q.Question)
		q.Answer = EraseBracketedCitations(q.Answer)
		for j := range q.Options {
			q.Options[j] = EraseBracketedCitations(q.Options[j])
		}
	}
}

// CleanGradingResult strips citation artifacts from the display fields of a
// validated grading result.
func CleanGradingResult(result *dto.QuizGradingResult) {
	if result == nil {
		return
	}
	for i := range result.Quiz {
		g := &result.Quiz[i]
		g.Question = EraseBracketedCitations(g.Question)
		g.UserAnswer = EraseBracketedCitations(g.UserAnswer)
		g.RealAnswer = EraseBracketedCitations(g.RealAnswer)
		g.CorrectionAndExplanation = EraseBracketedCitations(g.CorrectionAndExplanation)
		g.AdditionalContext = EraseBracketedCitations(g.AdditionalContext)
		for j := range g.Options {
			g.Options[j] = EraseBracketedCitations(g.Options[j])
		}
	}
}
