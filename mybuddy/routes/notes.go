// mybuddy/routes/notes.go
package routes

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/services/extraction"
	"mybuddy/mybuddy/utils/logging"
	"mybuddy/mybuddy/views"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Room for multipart framing on top of the image itself.
const multipartOverhead = 1 << 20

func NotesRoutes(ctrl *controllers.NotesController, ocr *controllers.OCRController, v *views.Renderer) chi.Router {
	r := chi.NewRouter()

	// List notes
	r.Get("/", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		notes, err := ctrl.ListNotes(r.Context())
		if err != nil {
			return err
		}
		return v.Page(w, http.StatusOK, views.NotesList, views.Page{Active: "notes", Title: "Notes", Data: notes})
	}))

	// New note form
	r.Get("/new", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		return v.Page(w, http.StatusOK, views.NoteForm, views.Page{Active: "notes", Title: "New note"})
	}))

	// Create note
	r.Post("/", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		title, content, err := noteForm(r)
		if err != nil {
			return err
		}
		note, err := ctrl.CreateNote(r.Context(), title, content)
		if err != nil {
			return err
		}
		http.Redirect(w, r, fmt.Sprintf("/notes/%d", note.ID), http.StatusSeeOther)
		return nil
	}))

	r.Post("/ocr-image", ocrHandler(ocr, v))

	// Note detail
	r.Get("/{id}", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		detail, err := ctrl.GetNoteDetail(r.Context(), id)
		if err != nil {
			return err
		}
		return v.Page(w, http.StatusOK, views.NoteDetail, views.Page{Active: "notes", Title: detail.Note.Title, Data: detail})
	}))

	// Edit form
	r.Get("/{id}/edit", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		note, err := ctrl.GetNote(r.Context(), id)
		if err != nil {
			return err
		}
		return v.Page(w, http.StatusOK, views.NoteForm, views.Page{Active: "notes", Title: "Edit note", Data: note})
	}))

	// Update note and re-extract
	r.Post("/{id}/update", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		title, content, err := noteForm(r)
		if err != nil {
			return err
		}
		if err := ctrl.UpdateNote(r.Context(), id, title, content); err != nil {
			return err
		}
		http.Redirect(w, r, fmt.Sprintf("/notes/%d", id), http.StatusSeeOther)
		return nil
	}))

	// Delete note
	r.Delete("/{id}", handleHTML(v, func(w http.ResponseWriter, r *http.Request) error {
		id, err := idParam(r)
		if err != nil {
			return err
		}
		if err := ctrl.DeleteNote(r.Context(), id); err != nil {
			return err
		}
		hxRedirect(w, "/notes")
		return nil
	}))

	return r
}

func noteForm(r *http.Request) (string, string, error) {
	if err := r.ParseForm(); err != nil {
		return "", "", validationError{msg: "Invalid form"}
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	if title == "" {
		return "", "", validationError{msg: "Title is required"}
	}
	return title, r.PostFormValue("content"), nil
}

// ocrHandler answers with a fragment in every case: the success script, a 422
// for anything the user can fix, or a generic 500.
func ocrHandler(ocr *controllers.OCRController, v *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, ocr.MaxBytes()+multipartOverhead)
		text, err := readAndExtract(r, ocr)
		if err == nil {
			v.Fragment(w, http.StatusOK, views.OCRSuccess, text)
			return
		}

		var verr validationError
		var imgErr *controllers.ImageError
		switch {
		case errors.As(err, &imgErr):
			v.Fragment(w, http.StatusUnprocessableEntity, views.OCRError, imgErr.Message)
		case errors.Is(err, extraction.ErrNotConfigured):
			v.Fragment(w, http.StatusUnprocessableEntity, views.OCRError, err.Error())
		case errors.As(err, &verr):
			v.Fragment(w, http.StatusUnprocessableEntity, views.OCRError, verr.msg)
		default:
			logging.ErrorLogger.Error("image text extraction failed", zap.Error(err))
			v.Fragment(w, http.StatusInternalServerError, views.OCRError, "Failed to extract text from the image. Please try again.")
		}
	}
}

// readAndExtract streams the multipart body so the part's type is checked
// before its size, whatever the size of the upload.
func readAndExtract(r *http.Request, ocr *controllers.OCRController) (string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return "", errNoImage
	}
	for {
		part, err := mr.NextPart()
		if err != nil {
			return "", uploadError(err, ocr)
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}
		defer part.Close()

		mediaType := part.Header.Get("Content-Type")
		if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
			mediaType = parsed
		}
		if err := ocr.ValidateType(mediaType); err != nil {
			return "", err
		}
		data, err := io.ReadAll(io.LimitReader(part, ocr.MaxBytes()+1))
		if err != nil {
			return "", uploadError(err, ocr)
		}
		return ocr.ExtractText(r.Context(), data, mediaType)
	}
}

var errNoImage = validationError{msg: "No image uploaded"}

func uploadError(err error, ocr *controllers.OCRController) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return ocr.TooLarge()
	}
	return errNoImage
}
