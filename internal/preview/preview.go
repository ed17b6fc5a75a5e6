// Package preview renders the fixed-size (955×500) visual summary of saved
// casts used as the frame image. It is pure templating: same input, same
// output, no I/O.
package preview

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/auntiehomie/castkeepr/internal/utils"
)

// Width and Height are the logical card dimensions (1.91:1 aspect ratio).
const (
	Width  = 955
	Height = 500
)

// maxRendered caps how many casts appear on the card. The footer still
// reports the full input count.
const maxRendered = 3

// maxTextLen is the character budget for a cast body before "..." kicks in.
const maxTextLen = 80

// Cast is the caller-resolved cast summary embedded in the card. Timestamp
// is RFC 3339; anything unparsable renders as blank.
type Cast struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type castView struct {
	Author  string
	Initial string
	Text    string
	Date    string

	// SVG layout coordinates for this card slot.
	BoxY  int
	HeadY int
	InitY int
	TextY int
}

type cardData struct {
	Width   int
	Height  int
	Page    int
	Casts   []castView
	Total   int
	IsEmpty bool
}

// RenderHTML produces the markup form of the card. empty selects the
// "no saved casts yet" layout regardless of the cast list.
func RenderHTML(casts []Cast, page int, empty bool) string {
	return render(htmlTmpl, casts, page, empty)
}

// RenderSVG produces the vector form of the card.
func RenderSVG(casts []Cast, page int, empty bool) string {
	return render(svgTmpl, casts, page, empty)
}

func render(t *template.Template, casts []Cast, page int, empty bool) string {
	if page < 1 {
		page = 1
	}

	data := cardData{
		Width:   Width,
		Height:  Height,
		Page:    page,
		Total:   len(casts),
		IsEmpty: empty,
	}

	if !empty {
		shown := casts
		if len(shown) > maxRendered {
			shown = shown[:maxRendered]
		}
		for i, c := range shown {
			boxY := 115 + i*110
			data.Casts = append(data.Casts, castView{
				Author:  orUnknown(c.Author),
				Initial: initialOf(c.Author),
				Text:    utils.Truncate(c.Text, maxTextLen),
				Date:    formatDate(c.Timestamp),
				BoxY:    boxY,
				HeadY:   boxY + 28,
				InitY:   boxY + 33,
				TextY:   boxY + 72,
			})
		}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Templates are static and the data is plain values; this cannot
		// fail at runtime, but fall back to nothing rather than panic.
		return ""
	}
	return buf.String()
}

func orUnknown(author string) string {
	if author == "" {
		return "unknown"
	}
	return author
}

func initialOf(author string) string {
	if author == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(author)[0]))
}

func formatDate(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2")
}
