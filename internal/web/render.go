// Package web renders the gallery page from a gallery.View.
//
// The page works without JavaScript: tag chips, the engine selector, the
// dropdown toggle and the edit switch are links that re-encode the gallery
// state in the query string, and the search box is a form posted back to the
// server. In edit mode every card has a delete form posting to
// /shares/{id}/delete and an edit link; the card being edited shows its
// fields in a form posting to /shares/{id}/edit. Both forms carry the
// gallery state in hidden inputs so the server can redirect back to it.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/zvz09/2025-blog-public/internal/gallery"
)

//go:embed templates/*.html
var templateFS embed.FS

// AllTagsLabel is the chip label for the unfiltered view.
const AllTagsLabel = "全部"

// Renderer executes the embedded gallery template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web.NewRenderer: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderGallery writes the full HTML page for v. Nothing is written to w
// if the template fails.
func (r *Renderer) RenderGallery(w io.Writer, v gallery.View) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "gallery.html", NewPage(v)); err != nil {
		return fmt.Errorf("web.Renderer.RenderGallery: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Link is a navigation control that moves the gallery to another state.
type Link struct {
	Label    string
	Href     string
	Selected bool
}

// Field is a hidden form input.
type Field struct {
	Name  string
	Value string
}

// CardItem is the template model of one card.
type CardItem struct {
	ID            uuid.UUID
	Name          string
	Description   string
	URL           string // as stored, for the edit form
	Logo          template.URL
	RawLogo       string // as stored, for the edit form
	HasLogo       bool
	GradientClass string
	Fallback      string
	Tags          []string
	OpenHref      string // empty when the card must not navigate
	Target        string // the normalized URL, shown as a hint
	Editing       bool
	EditHref      string
	EditAction    string
	DeleteAction  string
}

// Page is the data the gallery template renders.
type Page struct {
	Term         string
	Tag          string
	Engine       string
	EngineName   string
	Placeholder  string
	EditMode     bool
	DropdownOpen bool

	MenuToggle Link
	EditToggle Link
	Engines    []Link
	Chips      []Link
	Cards      []CardItem
	Notices    []string

	// StateFields reproduce the gallery state in the card forms.
	StateFields []Field
	// CancelHref closes the card being edited without saving.
	CancelHref string
}

// logoPrefixes lists the logo references an <img> may load. Matching is
// case-insensitive. A root-relative path covers stored logos under /logos/.
var logoPrefixes = []string{"https://", "http://", "data:image/", "/"}

// safeLogo returns logo as a trusted URL when it starts with an allowed
// prefix. Anything else, protocol-relative URLs included, is refused.
func safeLogo(logo string) (template.URL, bool) {
	lower := strings.ToLower(strings.TrimSpace(logo))
	if strings.HasPrefix(lower, "//") {
		return "", false
	}
	for _, prefix := range logoPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return template.URL(strings.TrimSpace(logo)), true
		}
	}
	return "", false
}

// stateFields lists the parameters the card forms post back. The dropdown
// and the open card are dropped since a submitted form closes both.
func stateFields(st gallery.State) []Field {
	q := st.Query()
	var out []Field
	for _, key := range []string{"tag", "q", "engine", "edit"} {
		if v := q.Get(key); v != "" {
			out = append(out, Field{Name: key, Value: v})
		}
	}
	return out
}

// NewPage derives the template model from v. Every link is built from the
// view's state so that following it changes exactly one thing.
func NewPage(v gallery.View) Page {
	st := v.State
	p := Page{
		Term:         st.Term,
		Tag:          st.Tag,
		Engine:       string(st.Engine),
		EngineName:   st.Engine.DisplayName(),
		Placeholder:  st.Engine.Placeholder(),
		EditMode:     st.EditMode,
		DropdownOpen: st.DropdownOpen,
		Notices:      v.Notices,
	}

	p.MenuToggle = Link{Label: st.Engine.DisplayName(), Href: st.ToggleDropdown().Href(), Selected: st.DropdownOpen}

	editLabel := "编辑"
	if st.EditMode {
		editLabel = "完成"
	}
	p.EditToggle = Link{Label: editLabel, Href: st.ToggleEditMode().Href(), Selected: st.EditMode}

	closed := st
	closed.Editing = ""
	closed.DropdownOpen = false
	p.CancelHref = closed.Href()
	p.StateFields = stateFields(st)

	for _, e := range v.Engines {
		p.Engines = append(p.Engines, Link{
			Label:    e.Name,
			Href:     st.SelectEngine(e.ID).Href(),
			Selected: e.ID == st.Engine,
		})
	}

	p.Chips = append(p.Chips, Link{
		Label:    AllTagsLabel,
		Href:     st.SelectTag(gallery.AllTagsValue).Href(),
		Selected: st.Tag == gallery.AllTagsValue,
	})
	for _, t := range v.Tags {
		p.Chips = append(p.Chips, Link{Label: t, Href: st.SelectTag(t).Href(), Selected: st.Tag == t})
	}

	for _, c := range v.Cards {
		path := "/shares/" + c.Share.ID.String()
		item := CardItem{
			ID:          c.Share.ID,
			Name:        c.Share.Name,
			Description: c.Share.Description,
			URL:         c.Share.URL,
			RawLogo:     c.Share.Logo,
			Tags:        c.Share.Tags,
			Target:      c.Href,
			Editing:     c.Editing,
		}
		if c.HasLogo {
			item.Logo, item.HasLogo = safeLogo(c.Share.Logo)
		}
		// A refused logo renders like a card without one.
		if !item.HasLogo {
			item.GradientClass = gallery.AssignGradient(c.Share.Name).Class()
			item.Fallback = gallery.FallbackText(c.Share.Name)
		}
		if c.Clickable {
			item.OpenHref = path + "/open"
		}
		if st.EditMode {
			item.EditHref = st.EditCard(c.Share.ID.String()).Href()
			item.EditAction = path + "/edit"
			item.DeleteAction = path + "/delete"
		}
		p.Cards = append(p.Cards, item)
	}
	return p
}
