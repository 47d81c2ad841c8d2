package gallery

import "github.com/zvz09/2025-blog-public/internal/domain"

// Notices shown under the card grid.
const (
	NoticeNoLocalMatch = "本地没有找到相关资源"
	NoticeNoTagMatch   = "本地资源中没有找到与 Tag 匹配的项目"
	NoticeEmpty        = "当前没有任何资源，请尝试添加。"
)

// Card is the render model of one share.
type Card struct {
	Share    domain.Share
	Gradient Gradient // meaningful only when HasLogo is false
	Fallback string   // initials shown on the gradient
	HasLogo  bool
	Href     string // normalized outbound URL
	// Clickable is false in edit mode, where clicking a card must not navigate.
	Clickable bool
	// Editing is true for the one card whose fields accept input.
	Editing bool
}

// View is everything needed to render one gallery page.
type View struct {
	State   State
	Engines []EngineOption
	Tags    []string
	Cards   []Card
	Total   int // number of shares before filtering
	Notices []string
}

// BuildView filters shares for state and derives the card models.
// state is normalized against the tags present in shares first, so a zero
// State yields the gallery's initial view.
func BuildView(shares []domain.Share, state State) View {
	tags := AllTags(shares)
	state = state.Normalize(tags)

	visible := Filter(shares, state.Term, state.Tag, state.Engine)
	cards := make([]Card, 0, len(visible))
	for _, s := range visible {
		c := NewCard(s, state.EditMode)
		session := NewEditSession(s)
		if state.Editing != "" && state.Editing == s.ID.String() {
			session.Begin()
		}
		c.Editing = session.CanEdit(state.EditMode)
		cards = append(cards, c)
	}

	return View{
		State:   state,
		Engines: Engines,
		Tags:    tags,
		Cards:   cards,
		Total:   len(shares),
		Notices: notices(len(shares), len(cards), state.Engine),
	}
}

// NewCard builds the render model for a single share.
func NewCard(s domain.Share, editMode bool) Card {
	c := Card{
		Share:     s,
		HasLogo:   s.HasLogo(),
		Href:      NormalizeURL(s.URL),
		Clickable: !editMode,
	}
	if !c.HasLogo {
		c.Gradient = AssignGradient(s.Name)
		c.Fallback = FallbackText(s.Name)
	}
	return c
}

func notices(total, visible int, engine Engine) []string {
	var out []string
	if visible == 0 {
		if engine.IsLocal() {
			out = append(out, NoticeNoLocalMatch)
		} else {
			out = append(out, NoticeNoTagMatch)
		}
	}
	if total == 0 {
		out = append(out, NoticeEmpty)
	}
	return out
}
