// mybuddy/routes/actions.go
package routes

import (
	"net/http"

	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/sources/database/models"
	"mybuddy/mybuddy/views"

	"github.com/go-chi/chi/v5"
)

type actionsPage struct {
	Actions []models.ActionItemView
	Filter  string
}

func ActionsRoutes(ctrl *controllers.ActionsController, v *views.Renderer) chi.Router {
	r := chi.NewRouter()

	// List with ?filter=all|pending|completed
	r.Get("/", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		filter := controllers.NormalizeFilter(r.URL.Query().Get("filter"))
		actions, err := ctrl.ListActions(r.Context(), filter)
		if err != nil {
			return err
		}
		return v.Page(w, http.StatusOK, views.ActionsList, views.Page{
			Active: "actions",
			Title:  "Actions",
			Data:   actionsPage{Actions: actions, Filter: filter},
		})
	}))

	// Toggle completion; answers with the re-rendered row
	r.Post("/{id}/toggle", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		item, err := ctrl.ToggleAction(r.Context(), id)
		if err != nil {
			return err
		}
		return v.Fragment(w, http.StatusOK, views.ActionRow, item)
	}))

	// Delete one; the row is swapped for nothing
	r.Delete("/{id}", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		if err := ctrl.DeleteAction(r.Context(), id); err != nil {
			return err
		}
		w.WriteHeader(http.StatusOK)
		return nil
	}))

	// Clear completed
	r.Delete("/", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		if _, err := ctrl.ClearCompleted(r.Context()); err != nil {
			return err
		}
		hxRedirect(w, "/actions")
		return nil
	}))

	return r
}
