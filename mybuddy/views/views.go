// Package views renders the embedded HTML pages and hypermedia fragments.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

//go:embed templates
var templateFS embed.FS

// Page names, one per file under templates/pages.
const (
	NotesList     = "notes_list"
	NoteForm      = "note_form"
	NoteDetail    = "note_detail"
	ActionsList   = "actions_list"
	ContactsList  = "contacts_list"
	ContactDetail = "contact_detail"
	RemindersList = "reminders_list"
)

// Fragment names, defined under templates/partials.
const (
	ActionRow  = "action_row"
	OCRSuccess = "ocr_success"
	OCRError   = "ocr_error"
	Message    = "message"
)

var pageNames = []string{NotesList, NoteForm, NoteDetail, ActionsList, ContactsList, ContactDetail, RemindersList}

// Page is the data every full page receives. Active selects the nav tab.
type Page struct {
	Active string
	Title  string
	Data   any
}

type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

var funcs = template.FuncMap{
	"orDash": func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("2006-01-02 15:04")
	},
}

func New() (*Renderer, error) {
	fragments, err := template.New("fragments").Funcs(funcs).ParseFS(templateFS, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragments: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames)), fragments: fragments}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/pages/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Page writes a full page wrapped in the layout.
func (r *Renderer) Page(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return write(w, status, func(buf io.Writer) error {
		return t.ExecuteTemplate(buf, "layout", page)
	})
}

// Fragment writes a bare partial, as swapped in by the front end.
func (r *Renderer) Fragment(w http.ResponseWriter, status int, name string, data any) error {
	return write(w, status, func(buf io.Writer) error {
		return r.fragments.ExecuteTemplate(buf, name, data)
	})
}

// Output is buffered; on a template error nothing is written.
func write(w http.ResponseWriter, status int, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
