// mybuddy/routes/router.go
package routes

import (
	"net/http"
	"time"

	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/middlewares"
	"mybuddy/mybuddy/views"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Controllers bundles everything the router serves.
type Controllers struct {
	Notes     *controllers.NotesController
	Actions   *controllers.ActionsController
	Contacts  *controllers.ContactsController
	Reminders *controllers.RemindersController
	OCR       *controllers.OCRController
	Health    *controllers.HealthController
}

func NewRouter(c Controllers, v *views.Renderer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/notes", http.StatusFound)
	})
	r.Mount("/notes", NotesRoutes(c.Notes, c.OCR, v))
	r.Mount("/actions", ActionsRoutes(c.Actions, v))
	r.Mount("/contacts", ContactsRoutes(c.Contacts, v))
	r.Mount("/reminders", RemindersRoutes(c.Reminders, v))
	r.Mount("/health", HealthRoutes(c.Health))
	return r
}
