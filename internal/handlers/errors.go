package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/advisor_client_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a service error to its HTTP status and a short message.
func statusFor(err error) (int, string) {
	switch apperrors.KindOf(err) {
	case apperrors.KindDuplicateEmail:
		return http.StatusConflict, "email already exists"
	case apperrors.KindNotFound:
		return http.StatusNotFound, "not found"
	case apperrors.KindInvalidCredential:
		return http.StatusUnauthorized, "wrong password"
	case apperrors.KindExpired:
		return http.StatusGone, "session expired"
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized, "not authorized"
	case apperrors.KindValidation:
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondError writes the mapped status for err. Unexpected errors are logged with msg.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status, text := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
	} else {
		logger.Info(msg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, ErrorResponse{Error: text})
}
