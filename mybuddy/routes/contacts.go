// mybuddy/routes/contacts.go
package routes

import (
	"net/http"

	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/views"

	"github.com/go-chi/chi/v5"
)

func ContactsRoutes(ctrl *controllers.ContactsController, v *views.Renderer) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		contacts, err := ctrl.ListContacts(r.Context())
		if err != nil {
			return err
		}
		return v.Page(w, http.StatusOK, views.ContactsList, views.Page{Active: "contacts", Title: "Contacts", Data: contacts})
	}))

	r.Get("/{id}", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		detail, err := ctrl.GetContactDetail(r.Context(), id)
		if err != nil {
			return err
		}
		return v.Page(w, http.StatusOK, views.ContactDetail, views.Page{Active: "contacts", Title: detail.Contact.Name, Data: detail})
	}))

	r.Delete("/{id}", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		if err := ctrl.DeleteContact(r.Context(), id); err != nil {
			return err
		}
		hxRedirect(w, "/contacts")
		return nil
	}))

	return r
}
