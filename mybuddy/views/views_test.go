package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mybuddy/mybuddy/sources/database/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	require.NoError(t, err)
	return doc
}

// parseRow wraps a table row fragment so the HTML parser keeps the <tr>.
func parseRow(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table>" + rr.Body.String() + "</table>"))
	require.NoError(t, err)
	return doc
}

func TestNotesListPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, r.Page(rr, http.StatusOK, NotesList, Page{Active: "notes", Title: "Notes"}))
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "No notes yet")

	rr = httptest.NewRecorder()
	notes := []models.NoteSummary{{ID: 7, Title: "Standup <b>", CreatedAt: time.Now()}}
	require.NoError(t, r.Page(rr, http.StatusOK, NotesList, Page{Active: "notes", Data: notes}))
	doc := parse(t, rr)
	link := doc.Find(`a[href="/notes/7"]`)
	assert.Equal(t, "Standup <b>", link.Text())
	assert.Equal(t, "Notes", doc.Find("nav a.active").Text())
}

func TestActionRowFragment(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	item := models.ActionItemView{ID: 3, NoteID: 1, Description: "Task 1", NoteTitle: "N", IsCompleted: true}
	require.NoError(t, r.Fragment(rr, http.StatusOK, ActionRow, item))
	doc := parseRow(t, rr)
	require.Equal(t, 1, doc.Find("tr#action-3").Length())
	_, checked := doc.Find("#action-3 input[type=checkbox]").Attr("checked")
	assert.True(t, checked)
	assert.Equal(t, "completed", doc.Find(".tag").Text())

	rr = httptest.NewRecorder()
	item.IsCompleted = false
	require.NoError(t, r.Fragment(rr, http.StatusOK, ActionRow, item))
	assert.NotContains(t, rr.Body.String(), "checked")
}

func TestOCRFragments(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, r.Fragment(rr, http.StatusOK, OCRSuccess, "line one\nline </script> two"))
	body := rr.Body.String()
	assert.Contains(t, body, `id="ocr-success"`)
	assert.Equal(t, 1, strings.Count(body, "</script>"))

	rr = httptest.NewRecorder()
	require.NoError(t, r.Fragment(rr, http.StatusUnprocessableEntity, OCRError, "Unsupported file type: text/plain"))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Unsupported file type: text/plain", parse(t, rr).Find(".ocr-error").Text())
}

func TestUnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Page(httptest.NewRecorder(), http.StatusOK, "nope", Page{}))
}
