// mybuddy/routes/handlers.go
package routes

import (
	"errors"
	"net/http"
	"strconv"

	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/utils/logging"
	"mybuddy/mybuddy/views"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errBadID = errors.New("invalid id")

// validationError is shown to the user as-is with a 422.
type validationError struct{ msg string }

func (e validationError) Error() string { return e.msg }

// handleHTML adapts a handler that returns an error; errors become small
// HTML fragments with a matching status.
func handleHTML(v *views.Renderer, handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			writeError(v, w, r, err)
		}
	}
}

func writeError(v *views.Renderer, w http.ResponseWriter, r *http.Request, err error) {
	var verr validationError
	status, msg := http.StatusInternalServerError, "Something went wrong."
	switch {
	case errors.Is(err, controllers.ErrNotFound):
		status, msg = http.StatusNotFound, "Not found"
	case errors.Is(err, errBadID):
		status, msg = http.StatusBadRequest, "Invalid id"
	case errors.As(err, &verr):
		status, msg = http.StatusUnprocessableEntity, verr.msg
	default:
		logging.ErrorLogger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	if rerr := v.Fragment(w, status, views.Message, msg); rerr != nil {
		http.Error(w, msg, status)
	}
}

func idParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errBadID
	}
	return uint(id), nil
}

// hxRedirect tells the hypermedia client to navigate after a DELETE.
func hxRedirect(w http.ResponseWriter, to string) {
	w.Header().Set("HX-Redirect", to)
	w.WriteHeader(http.StatusOK)
}
