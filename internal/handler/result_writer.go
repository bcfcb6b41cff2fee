package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-marketplace-api/internal/response"
)

// ResultWriter turns service outcomes into HTTP responses
type ResultWriter struct {
	logger *zap.Logger
}

// NewResultWriter creates a ResultWriter
func NewResultWriter(logger *zap.Logger) *ResultWriter {
	return &ResultWriter{logger: logger}
}

// Query writes a query outcome: 200 with the payload on success
func (w *ResultWriter) Query(c *gin.Context, o response.Outcome) {
	if err := o.Failure(); err != nil {
		w.Fail(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, o.Payload())
}

// Command writes a command outcome: 201 with the payload when created, otherwise 204
func (w *ResultWriter) Command(c *gin.Context, o response.Outcome) {
	if err := o.Failure(); err != nil {
		w.Fail(c, err)
		return
	}
	if o.SuccessKind() == response.KindCreated {
		response.SendSuccess(c, http.StatusCreated, o.Payload())
		return
	}
	c.Status(http.StatusNoContent)
}

// Fail logs the failure and writes its error envelope
func (w *ResultWriter) Fail(c *gin.Context, err *response.AppError) {
	status := StatusFor(err.Code)
	fields := []zap.Field{
		zap.String("code", string(err.Code)),
		zap.String("message", err.Message),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
	}
	if err.Details != "" {
		fields = append(fields, zap.String("details", err.Details))
	}
	if status >= http.StatusInternalServerError {
		w.logger.Error("Operation failed", fields...)
	} else {
		w.logger.Debug("Operation rejected", fields...)
	}
	response.SendAppError(c, status, err)
}

// StatusFor maps an error category to its HTTP status
func StatusFor(code response.ErrorCode) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeBadRequest, response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	case response.ErrCodeConflict:
		// request clashes with stored state, e.g. a stale concurrency stamp
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
