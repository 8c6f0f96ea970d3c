package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/modelvision/leadgen/log"
)

// ErrorResponse is the uniform JSON error body. Details carries request
// context (never internal error detail, which is logged only).
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error sends a JSON error body with the given status.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: msg})
}

// LogInternalError logs an error under the given code, and responds 500 with
// the given public message. Internal detail stays server-side.
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, err error, msg string) {
	log.Errorf("%s: %s", code, err)
	Error(w, r, http.StatusInternalServerError, msg)
}

// LogStatus logs an error code at the given level, and responds with the
// status and its default text.
func LogStatus(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string) {
	log.Log(level, code)
	Error(w, r, status, http.StatusText(status))
}

// LogStatusMsg logs an error code and message at the given level, and
// responds with the status and the formatted message.
func LogStatusMsg(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	Error(w, r, status, errMsg)
}
