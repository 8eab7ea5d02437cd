// mybuddy/routes/reminders.go
package routes

import (
	"net/http"

	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/views"

	"github.com/go-chi/chi/v5"
)

func RemindersRoutes(ctrl *controllers.RemindersController, v *views.Renderer) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		reminders, err := ctrl.ListPending(r.Context())
		if err != nil {
			return err
		}
		return v.Page(w, http.StatusOK, views.RemindersList, views.Page{Active: "reminders", Title: "Reminders", Data: reminders})
	}))

	// Dismiss or restore; the client reloads the current page
	r.Post("/{id}/dismiss", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		if err := ctrl.ToggleDismissed(r.Context(), id); err != nil {
			return err
		}
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return nil
	}))

	return r
}
