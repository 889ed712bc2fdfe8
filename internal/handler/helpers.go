package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "tambula/internal/pkg/errors"
	"tambula/internal/pkg/response"
)

func getUsername(c *gin.Context) string {
	value, _ := c.Get("username")
	username, _ := value.(string)
	return username
}

// logError keeps the full failure detail server side; clients only ever
// see the mapped status and a generic message.
func logError(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("username", getUsername(c)),
		zap.Error(err),
	)
}

// handleError is the final error boundary for known sentinels; anything
// unrecognized becomes a generic 500.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logError(c, err)
	switch {
	case errors.Is(err, appErr.ErrConflict):
		response.Error(c, http.StatusBadRequest, "conflict")
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindErrors turns a ShouldBindJSON failure into per-field messages.
func bindErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid request body"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return msgs
}
