package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hirebase/hirebase-go/internal/model"
	"github.com/hirebase/hirebase-go/internal/service"
)

const genericErrorMsg = "An unexpected error occurred"

// HandleError is the single funnel for failures that escape the handlers. It
// logs the raw error, then emits exactly one ErrorEnvelope response: the
// override status when given, 500 for validation-class errors, 400 for
// everything else. If a response was already started nothing more is written.
func HandleError(w http.ResponseWriter, r *http.Request, err error, status ...int) {
	slog.Error("unhandled error", "handler", "errors", "path", r.URL.Path, "error", err)

	if started, ok := w.(interface{ Written() bool }); ok && started.Written() {
		// Exactly one response per request; someone already answered.
		return
	}

	code := http.StatusBadRequest
	var verr service.ValidationError
	if errors.As(err, &verr) {
		code = http.StatusInternalServerError
	}
	if len(status) > 0 {
		code = status[0]
	}

	errorCode := -1
	var coded interface{ ErrorCode() int }
	if errors.As(err, &coded) {
		errorCode = coded.ErrorCode()
	}

	msg := err.Error()
	if msg == "" {
		msg = genericErrorMsg
	}

	body := model.ErrorBody{ErrorCode: errorCode, ErrorMsg: msg}
	if code < 400 {
		writeJSON(w, code, model.SuccessEnvelope{Success: body})
		return
	}
	writeJSON(w, code, model.ErrorEnvelope{Error: body})
}
