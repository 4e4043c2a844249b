package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// businessStatus maps business codes to HTTP statuses. Unknown codes
// fall back to 400 so new rules fail closed, not as 500s.
var businessStatus = map[string]int{
	"not_found":            http.StatusNotFound,
	"trainer_not_found":    http.StatusNotFound,
	"session_not_found":    http.StatusNotFound,
	"schedule_not_found":   http.StatusNotFound,
	"enrollment_not_found": http.StatusNotFound,
	"goal_not_found":       http.StatusNotFound,
	"bill_not_found":       http.StatusNotFound,
	"member_not_found":     http.StatusNotFound,
	"equipment_not_found":  http.StatusNotFound,
	"time_conflict":        http.StatusConflict,
	"already_enrolled":     http.StatusConflict,
	"session_full":         http.StatusConflict,
	"goal_exists":          http.StatusConflict,
	"invalid_state":        http.StatusConflict,
}

// FromBusiness writes a business error with its mapped status; any other
// error becomes a 500 internal_error.
func FromBusiness(c *gin.Context, err error) {
	if code, ok := BusinessCode(err); ok {
		status, mapped := businessStatus[code]
		if !mapped {
			status = http.StatusBadRequest
		}
		Write(c, status, code, code)
		return
	}
	Internal(c, "internal_error", "unexpected error")
}
