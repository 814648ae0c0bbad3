// Package views renders the server-side HTML pages of the catalog. Every
// page is parsed together with the shared layout at start-up.
package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/report-catalog/models"
)

// Page names accepted by [Renderer.Render].
const (
	PageIndex      = "index"
	PageLogin      = "login"
	PageNewRecord  = "new"
	PageEditRecord = "edit"
	PageUsers      = "users_index"
	PageNewUser    = "new_user"
	PageEditUser   = "edit_user"
	PageAdminRoles = "admin_roles"
)

var ErrUnknownPage = errors.New("unknown page")

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data handed to every template. Pages read only the fields they
// need; the layout reads Title, Authenticated, IsAdmin and Flash.
type Page struct {
	Title         string
	Authenticated bool
	IsAdmin       bool
	Flash         string

	Records    []models.Record
	Record     models.Record
	Users      []models.User
	User       models.User
	Usernames  []string
	Categories []string
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout with each page template.
func NewRenderer() (*Renderer, error) {
	names := []string{
		PageIndex, PageLogin, PageNewRecord, PageEditRecord,
		PageUsers, PageNewUser, PageEditUser, PageAdminRoles,
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/record_form.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes page name into a buffer and writes it with status. Nothing
// reaches w when execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("error rendering %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
