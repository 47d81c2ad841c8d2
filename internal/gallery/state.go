package gallery

import (
	"net/url"
	"strconv"
)

// State is the transient selection of one gallery view. The composing layer
// owns it (the HTTP handler rebuilds it from the query string on every
// request) and passes it to BuildView; nothing in this package keeps it.
type State struct {
	Tag          string
	Term         string
	Engine       Engine
	EditMode     bool
	DropdownOpen bool
	// Editing is the ID of the card whose fields are open for input. It is
	// meaningful only in edit mode.
	Editing string
}

// Normalize fills in defaults: EngineLocal for an empty engine and
// DefaultTag(tags) for an empty tag selection. Outside edit mode no card
// stays open for editing.
func (s State) Normalize(tags []string) State {
	if !s.EditMode {
		s.Editing = ""
	}
	if s.Engine == "" {
		s.Engine = EngineLocal
	}
	if s.Tag == "" {
		s.Tag = DefaultTag(tags)
	}
	return s
}

// SelectEngine switches engine and closes the engine dropdown.
func (s State) SelectEngine(e Engine) State {
	s.Engine = e
	s.DropdownOpen = false
	return s
}

// SelectTag switches the tag selection.
func (s State) SelectTag(tag string) State {
	s.Tag = tag
	return s
}

// ToggleEditMode switches edit mode and closes any card being edited.
func (s State) ToggleEditMode() State {
	s.EditMode = !s.EditMode
	s.Editing = ""
	return s
}

// EditCard opens the card with the given ID for editing.
func (s State) EditCard(id string) State {
	s.EditMode = true
	s.Editing = id
	return s
}

// ToggleDropdown opens a closed engine dropdown and closes an open one.
func (s State) ToggleDropdown() State {
	s.DropdownOpen = !s.DropdownOpen
	return s
}

// Query encodes the state as gallery query parameters. Zero values are
// omitted so that defaults are re-derived when the query is parsed again.
func (s State) Query() url.Values {
	v := url.Values{}
	if s.Tag != "" {
		v.Set("tag", s.Tag)
	}
	if s.Term != "" {
		v.Set("q", s.Term)
	}
	if s.Engine != "" && s.Engine != EngineLocal {
		v.Set("engine", string(s.Engine))
	}
	if s.EditMode {
		v.Set("edit", "1")
	}
	if s.DropdownOpen {
		v.Set("menu", "1")
	}
	if s.Editing != "" {
		v.Set("card", s.Editing)
	}
	return v
}

// Href returns a relative gallery link that reproduces the state.
func (s State) Href() string {
	q := s.Query().Encode()
	if q == "" {
		return "/"
	}
	return "/?" + q
}

// StateFromQuery is the inverse of State.Query. Unparseable flags read as false.
func StateFromQuery(v url.Values) State {
	return State{
		Tag:          v.Get("tag"),
		Term:         v.Get("q"),
		Engine:       Engine(v.Get("engine")),
		EditMode:     parseFlag(v.Get("edit")),
		DropdownOpen: parseFlag(v.Get("menu")),
		Editing:      v.Get("card"),
	}
}

func parseFlag(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
