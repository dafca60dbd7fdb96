package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"qa-platform/internal/question"
)

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, question.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "question not found"})
	case errors.Is(err, question.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, errorResponse{Error: invalidArgumentMessage(err)})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

// invalidArgumentMessage strips the sentinel suffix so clients see only the
// parameter-level reason, e.g. "keyword is required".
func invalidArgumentMessage(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "+question.ErrInvalidArgument.Error()); idx > 0 {
		return msg[:idx]
	}
	return msg
}

// parseCountParam falls back to the default when the value is absent or not
// an integer. Non-positive integers are passed through unchanged.
func parseCountParam(c *gin.Context, key string, defaultValue int) int {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseIDParam(c *gin.Context, key string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(c.Param(key)))
	if err != nil {
		return 0, question.ErrNotFound
	}
	return parsed, nil
}
