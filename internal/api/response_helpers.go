package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/texttrace/internal/analysis"
)

const (
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeCanceled     = "canceled"
	ErrCodeInternal     = "internal_error"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

func respondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{Success: false, Error: &APIError{Code: code, Message: message}})
}

// classifyError maps an analysis error to an HTTP status, an error code and a
// message that is safe to show to the user.
func classifyError(err error) (int, string, string) {
	switch {
	case analysis.IsInputError(err):
		return http.StatusBadRequest, ErrCodeInvalidInput, inputMessage(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrCodeCanceled, "analysis was canceled"
	default:
		return http.StatusInternalServerError, ErrCodeInternal, "analysis failed, check the server logs"
	}
}

func inputMessage(err error) string {
	switch {
	case errors.Is(err, analysis.ErrEmptyText):
		return "Please enter some text to analyze."
	case errors.Is(err, analysis.ErrTextTooLong):
		return "The text is too long to analyze."
	case errors.Is(err, analysis.ErrTooFewTokens):
		return "The text is too short to score; enter at least two words, or start the server with PERPLEXITY_ALIGNMENT=same to score a single word."
	case errors.Is(err, analysis.ErrNoWords):
		return "The text contains no words to analyze."
	default:
		return err.Error()
	}
}
