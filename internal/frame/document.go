package frame

// Button is one frame control descriptor. Action is "post" or "link";
// Target is only set for link buttons.
type Button struct {
	Label  string
	Action string
	Target string
}

// Document carries everything the meta-tag template needs to emit a frame
// vNext response. Button order is significant.
type Document struct {
	Title       string
	Description string
	Image       string
	PostURL     string
	State       string
	Buttons     []Button
}

// EntryButtons are the controls on the generic entry document.
func EntryButtons(appURL string) []Button {
	return []Button{
		{Label: "📚 My Saved Casts", Action: "post"},
		{Label: "🌐 Open CastKeepr", Action: "link", Target: appURL},
	}
}

// PageButtons are the controls on a paginated document. Positions must match
// the button constants in state.go.
func PageButtons(appURL string) []Button {
	return []Button{
		{Label: "⬅️ Previous", Action: "post"},
		{Label: "➡️ Next", Action: "post"},
		{Label: "🏠 Back to Main", Action: "post"},
		{Label: "🌐 Open App", Action: "link", Target: appURL},
	}
}

// EmptyButtons are the controls when the user has no saved casts: a way back
// and a pointer at how saving works. No Previous/Next.
func EmptyButtons(appURL string) []Button {
	return []Button{
		{Label: "🏠 Back to Main", Action: "post"},
		{Label: "💡 Learn How to Save", Action: "link", Target: appURL},
	}
}
