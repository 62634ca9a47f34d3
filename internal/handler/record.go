package handler

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/namebook/internal/domain"
	"github.com/pkordes/namebook/internal/view"
)

// createRecordForm is the urlencoded body of POST /.
type createRecordForm struct {
	Name string `json:"name"`
}

// ListRecords handles GET /.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r)
}

// CreateRecord handles POST /.
// On success it redirects to GET / so a browser refresh does not resubmit.
// A blank name inserts nothing and re-renders the current list.
func (s *Server) CreateRecord(w http.ResponseWriter, r *http.Request) {
	form, err := decodeCreateRecordForm(r)
	if err != nil {
		formError(w, err)
		return
	}

	if _, err := s.records.Create(r.Context(), form.Name); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.log.DebugContext(r.Context(), "record rejected", "error", err)
			s.renderHome(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderHome reads every record and writes the home page.
// The page is rendered into a buffer first so a failure still yields a clean 500.
func (s *Server) renderHome(w http.ResponseWriter, r *http.Request) {
	records, err := s.records.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := view.Home(records).Render(r.Context(), &buf); err != nil {
		s.serverError(w, r, fmt.Errorf("render home: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// multipartMemory is how much of a multipart body is held in memory before
// file parts spill to disk. The body size itself is capped by middleware.
const multipartMemory = 1 << 20

// decodeCreateRecordForm parses an urlencoded or multipart body and binds it
// to a createRecordForm. A missing name field leaves Name empty.
func decodeCreateRecordForm(r *http.Request) (createRecordForm, error) {
	var form createRecordForm
	if isMultipart(r) {
		// ParseMultipartForm also merges the text parts into r.PostForm.
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return form, fmt.Errorf("parse multipart form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return form, fmt.Errorf("parse form: %w", err)
	}
	if err := runtime.BindForm(&form, r.PostForm, nil, nil); err != nil {
		return form, fmt.Errorf("bind form: %w", err)
	}
	return form, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
