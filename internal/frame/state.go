// Package frame implements the Farcaster frame pagination state machine.
// All logic here is pure: the opaque "page:<n>" token is decoded once at the
// protocol boundary and everything else operates on the structured State.
package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// State is the client-held pagination state round-tripped through the
// frame protocol's opaque state field. Page is 1-based. Empty marks the
// no-saved-casts document, which has no page to point at.
type State struct {
	Page  int
	Empty bool
}

const (
	tokenPrefix = "page:"
	emptyToken  = "empty"
)

// ParseState decodes a "page:<n>" or "empty" token. ok is false for anything
// else, which callers treat as "no prior state".
func ParseState(raw string) (State, bool) {
	if raw == emptyToken {
		return State{Empty: true}, true
	}
	if !strings.HasPrefix(raw, tokenPrefix) {
		return State{}, false
	}
	page, err := strconv.Atoi(strings.TrimPrefix(raw, tokenPrefix))
	if err != nil || page < 1 {
		return State{}, false
	}
	return State{Page: page}, true
}

// Token encodes the state for the next round trip.
func (s State) Token() string {
	if s.Empty {
		return emptyToken
	}
	return fmt.Sprintf("%s%d", tokenPrefix, s.Page)
}

// Clamp bounds the page to [1, total]. Total can shrink between requests;
// an overshoot clamps down to the new maximum rather than erroring.
func (s State) Clamp(total int64) State {
	page := s.Page
	if page < 1 {
		page = 1
	}
	if total > 0 && int64(page) > total {
		page = int(total)
	}
	return State{Page: page}
}

// Action is what the responder should render next.
type Action int

const (
	// ShowEntry renders the generic, unpaginated entry document.
	ShowEntry Action = iota
	// ShowPage renders one page of the user's saved casts.
	ShowPage
)

// Button indexes on the paginated document. The protocol binds control
// identity to position, so these are fixed.
const (
	buttonPrevious = 1
	buttonNext     = 2
	buttonBack     = 3
)

// Advance computes the next state from the previously rendered document's
// state and the control the user activated. Initial activation (no prior
// state) lands on page 1. The result still needs Clamp against the current
// total before rendering.
func Advance(prev State, hasPrior bool, buttonIndex int) (Action, State) {
	if !hasPrior {
		return ShowPage, State{Page: 1}
	}

	// The empty document's only post control is Back to Main.
	if prev.Empty {
		return ShowEntry, State{}
	}

	switch buttonIndex {
	case buttonPrevious:
		page := prev.Page - 1
		if page < 1 {
			page = 1
		}
		return ShowPage, State{Page: page}
	case buttonNext:
		return ShowPage, State{Page: prev.Page + 1}
	case buttonBack:
		return ShowEntry, State{}
	default:
		return ShowPage, prev
	}
}
