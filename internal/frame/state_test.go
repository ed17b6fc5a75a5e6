package frame

import (
	"testing"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		raw    string
		page   int
		wantOK bool
	}{
		{"page:1", 1, true},
		{"page:42", 42, true},
		{"", 0, false},
		{"page:", 0, false},
		{"page:abc", 0, false},
		{"page:0", 0, false},
		{"page:-3", 0, false},
		{"cursor:5", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseState(tt.raw)
		if ok != tt.wantOK {
			t.Errorf("ParseState(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			continue
		}
		if ok && got.Page != tt.page {
			t.Errorf("ParseState(%q) page = %d, want %d", tt.raw, got.Page, tt.page)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, s := range []State{{Page: 7}, {Empty: true}} {
		got, ok := ParseState(s.Token())
		if !ok || got != s {
			t.Errorf("round trip of %v gave %v (ok=%v)", s, got, ok)
		}
	}
}

func TestAdvanceInitialActivation(t *testing.T) {
	action, next := Advance(State{}, false, 1)
	if action != ShowPage || next.Page != 1 {
		t.Errorf("initial activation = (%v, %d), want (ShowPage, 1)", action, next.Page)
	}
}

func TestAdvanceNext(t *testing.T) {
	action, next := Advance(State{Page: 1}, true, 2)
	if action != ShowPage || next.Page != 2 {
		t.Errorf("Next from page 1 = (%v, %d), want (ShowPage, 2)", action, next.Page)
	}
}

func TestAdvanceNextClampsAtTotal(t *testing.T) {
	const total = 5
	_, next := Advance(State{Page: total}, true, 2)
	if got := next.Clamp(total); got.Page != total {
		t.Errorf("Next from page %d clamped to %d, want %d", total, got.Page, total)
	}
}

func TestAdvancePreviousClampsAtOne(t *testing.T) {
	action, next := Advance(State{Page: 1}, true, 1)
	if action != ShowPage || next.Page != 1 {
		t.Errorf("Previous from page 1 = (%v, %d), want (ShowPage, 1)", action, next.Page)
	}
}

func TestAdvanceBackToMain(t *testing.T) {
	action, _ := Advance(State{Page: 3}, true, 3)
	if action != ShowEntry {
		t.Errorf("Back to Main = %v, want ShowEntry", action)
	}
}

func TestAdvanceFromEmptyDocument(t *testing.T) {
	// Back to Main sits at position 1 on the empty document; the empty state
	// must route it to the entry document, not to Previous.
	action, _ := Advance(State{Empty: true}, true, 1)
	if action != ShowEntry {
		t.Errorf("Back to Main on the empty document = %v, want ShowEntry", action)
	}
}

func TestAdvanceUnknownButtonKeepsPage(t *testing.T) {
	action, next := Advance(State{Page: 4}, true, 9)
	if action != ShowPage || next.Page != 4 {
		t.Errorf("unknown button = (%v, %d), want (ShowPage, 4)", action, next.Page)
	}
}

func TestClampShrunkenTotal(t *testing.T) {
	// Total shrank between requests; overshoot clamps down, never errors.
	got := State{Page: 10}.Clamp(3)
	if got.Page != 3 {
		t.Errorf("Clamp(3) on page 10 = %d, want 3", got.Page)
	}
}

func TestClampFloor(t *testing.T) {
	got := State{Page: 0}.Clamp(5)
	if got.Page != 1 {
		t.Errorf("Clamp(5) on page 0 = %d, want 1", got.Page)
	}
}

func TestEmptyButtonsHaveNoPagination(t *testing.T) {
	for _, b := range EmptyButtons("https://example.com") {
		if b.Label == "⬅️ Previous" || b.Label == "➡️ Next" {
			t.Errorf("empty document must not offer %q", b.Label)
		}
	}
}

func TestPageButtonsOrder(t *testing.T) {
	buttons := PageButtons("https://example.com")
	if len(buttons) != 4 {
		t.Fatalf("expected 4 page buttons, got %d", len(buttons))
	}
	// The protocol binds control identity to position.
	if buttons[buttonPrevious-1].Label != "⬅️ Previous" {
		t.Errorf("button %d = %q, want Previous", buttonPrevious, buttons[buttonPrevious-1].Label)
	}
	if buttons[buttonNext-1].Label != "➡️ Next" {
		t.Errorf("button %d = %q, want Next", buttonNext, buttons[buttonNext-1].Label)
	}
	if buttons[buttonBack-1].Label != "🏠 Back to Main" {
		t.Errorf("button %d = %q, want Back to Main", buttonBack, buttons[buttonBack-1].Label)
	}
	if buttons[3].Action != "link" || buttons[3].Target == "" {
		t.Errorf("button 4 should be a link with a target, got %+v", buttons[3])
	}
}
