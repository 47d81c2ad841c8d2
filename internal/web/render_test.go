package web_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/gallery"
	"github.com/zvz09/2025-blog-public/internal/web"
)

func render(t *testing.T, shares []domain.Share, st gallery.State) *goquery.Document {
	t.Helper()
	r, err := web.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderGallery(&buf, gallery.BuildView(shares, st)))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func sampleShares() []domain.Share {
	return []domain.Share{
		{ID: uuid.New(), Name: "GitHub", URL: "github.com", Description: "code", Tags: []string{"dev"}},
		{ID: uuid.New(), Name: "Go", URL: "https://go.dev", Logo: "https://go.dev/logo.svg", Tags: []string{"dev", "lang"}},
		{ID: uuid.New(), Name: "Figma", URL: "figma.com", Tags: []string{"design"}},
	}
}

func TestRenderGallery_DefaultsToFirstTag(t *testing.T) {
	doc := render(t, sampleShares(), gallery.State{})

	assert.Equal(t, 2, doc.Find("article.card").Length())
	assert.Equal(t, "dev", strings.TrimSpace(doc.Find("a.chip.selected").Text()))
	assert.Equal(t, 4, doc.Find("a.chip").Length(), "all chip plus three tags")
}

func TestRenderGallery_FallbackAndLogo(t *testing.T) {
	doc := render(t, sampleShares(), gallery.State{Tag: gallery.AllTagsValue})

	fallback := doc.Find("article.card").First().Find(".fallback")
	require.Equal(t, 1, fallback.Length())
	assert.Equal(t, "G", strings.TrimSpace(fallback.Text()))
	class, _ := fallback.Attr("class")
	assert.Contains(t, class, gallery.AssignGradient("GitHub").From)

	logo := doc.Find("img.logo")
	require.Equal(t, 1, logo.Length())
	src, _ := logo.Attr("src")
	assert.Equal(t, "https://go.dev/logo.svg", src)
}

func TestRenderGallery_CardsLinkToOpen(t *testing.T) {
	shares := sampleShares()
	doc := render(t, shares, gallery.State{Tag: gallery.AllTagsValue})

	href, ok := doc.Find("article.card a.open").First().Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/shares/"+shares[0].ID.String()+"/open", href)
	assert.Equal(t, 0, doc.Find(".controls").Length())
}

func TestRenderGallery_EditModeDisablesNavigation(t *testing.T) {
	doc := render(t, sampleShares(), gallery.State{Tag: gallery.AllTagsValue, EditMode: true})

	assert.Equal(t, 0, doc.Find("a.open").Length())
	assert.Equal(t, 3, doc.Find(".controls").Length())
	edit, _ := doc.Find("#edit-toggle").Attr("href")
	assert.Equal(t, "/?tag=all", edit, "toggling edit off keeps the tag")
}

func TestRenderGallery_EngineMenu(t *testing.T) {
	closed := render(t, nil, gallery.State{})
	assert.Equal(t, 0, closed.Find("#engine-menu").Length())

	open := render(t, nil, gallery.State{DropdownOpen: true})
	engines := open.Find("#engine-menu a.engine")
	require.Equal(t, len(gallery.Engines), engines.Length())

	bing, _ := engines.Eq(1).Attr("href")
	assert.Equal(t, "/?engine=bing&tag=all", bing, "selecting an engine closes the menu")
	assert.Equal(t, "本地", strings.TrimSpace(engines.Filter(".font-bold").Text()))
}

func TestRenderGallery_PlaceholderFollowsEngine(t *testing.T) {
	doc := render(t, nil, gallery.State{Engine: gallery.EngineBaidu})

	ph, _ := doc.Find("input[name=q]").Attr("placeholder")
	assert.Equal(t, "在百度中搜索...", ph)
	eng, _ := doc.Find("input[name=engine]").Attr("value")
	assert.Equal(t, "baidu", eng)
}

func TestRenderGallery_Notices(t *testing.T) {
	doc := render(t, nil, gallery.State{})

	var got []string
	doc.Find("p.notice").Each(func(_ int, s *goquery.Selection) {
		got = append(got, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{gallery.NoticeNoLocalMatch, gallery.NoticeEmpty}, got)
}

func TestRenderGallery_EscapesContent(t *testing.T) {
	shares := []domain.Share{{ID: uuid.New(), Name: "<script>x</script>", URL: "x.com"}}
	r, err := web.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderGallery(&buf, gallery.BuildView(shares, gallery.State{})))

	assert.NotContains(t, buf.String(), "<script>x</script>")
}

func TestRenderGallery_DataImageLogo(t *testing.T) {
	const logo = "data:image/png;base64,iVBORw0KGgo="
	shares := []domain.Share{{ID: uuid.New(), Name: "Pixel", URL: "pixel.dev", Logo: logo}}

	doc := render(t, shares, gallery.State{})

	src, ok := doc.Find("img.logo").Attr("src")
	require.True(t, ok)
	assert.Equal(t, logo, src)
	assert.Equal(t, 0, doc.Find(".fallback").Length())
}

func TestRenderGallery_LogoPrefixes(t *testing.T) {
	cases := []struct {
		logo    string
		allowed bool
	}{
		{"https://go.dev/logo.svg", true},
		{"HTTP://example.com/a.png", true},
		{"/logos/" + uuid.NewString(), true},
		{"javascript:alert(1)", false},
		{"data:text/html,<b>x</b>", false},
		{"//evil.example/a.png", false},
		{"logo.png", false},
	}
	for _, tc := range cases {
		t.Run(tc.logo, func(t *testing.T) {
			shares := []domain.Share{{ID: uuid.New(), Name: "john doe", URL: "x.com", Logo: tc.logo}}

			doc := render(t, shares, gallery.State{})

			if tc.allowed {
				src, _ := doc.Find("img.logo").Attr("src")
				assert.Equal(t, tc.logo, src)
				return
			}
			assert.Equal(t, 0, doc.Find("img.logo").Length())
			fallback := doc.Find(".fallback")
			require.Equal(t, 1, fallback.Length())
			assert.Equal(t, "JD", strings.TrimSpace(fallback.Text()))
			class, _ := fallback.Attr("class")
			assert.Contains(t, class, gallery.AssignGradient("john doe").Class())
		})
	}
}

func TestRenderGallery_EditModeCardsPostDelete(t *testing.T) {
	shares := sampleShares()
	doc := render(t, shares, gallery.State{Tag: gallery.AllTagsValue, EditMode: true})

	forms := doc.Find("form.delete-form")
	require.Equal(t, 3, forms.Length())
	first := forms.First()
	action, _ := first.Attr("action")
	assert.Equal(t, "/shares/"+shares[0].ID.String()+"/delete", action)
	method, _ := first.Attr("method")
	assert.Equal(t, "post", method)

	hidden := map[string]string{}
	first.Find("input[type=hidden]").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		hidden[name], _ = s.Attr("value")
	})
	assert.Equal(t, map[string]string{"tag": "all", "edit": "1"}, hidden)

	edit, _ := doc.Find("article.card a.edit").First().Attr("href")
	assert.Equal(t, "/?card="+shares[0].ID.String()+"&edit=1&tag=all", edit)
	assert.Equal(t, 0, doc.Find("form.edit-form").Length())
}

func TestRenderGallery_EditingCardShowsFields(t *testing.T) {
	shares := sampleShares()
	st := gallery.State{Tag: gallery.AllTagsValue}.EditCard(shares[1].ID.String())

	doc := render(t, shares, st)

	form := doc.Find("form.edit-form")
	require.Equal(t, 1, form.Length())
	action, _ := form.Attr("action")
	assert.Equal(t, "/shares/"+shares[1].ID.String()+"/edit", action)

	value := func(sel string) string {
		v, _ := form.Find(sel).Attr("value")
		return v
	}
	assert.Equal(t, "Go", value("input[name=name]"))
	assert.Equal(t, "https://go.dev", value("input[name=url]"))
	assert.Equal(t, "https://go.dev/logo.svg", value("input[name=logo]"))
	assert.Equal(t, 1, form.Find("textarea[name=description]").Length())

	cancel, _ := form.Find("a.cancel").Attr("href")
	assert.Equal(t, "/?edit=1&tag=all", cancel)

	card := doc.Find("article.card").Eq(1)
	assert.Equal(t, 0, card.Find("a.edit").Length(), "the open card has no edit link")
	assert.Equal(t, 2, doc.Find("article.card a.edit").Length())
}
