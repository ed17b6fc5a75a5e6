package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/auntiehomie/castkeepr/internal/models"
	"github.com/auntiehomie/castkeepr/internal/neynar"

	"github.com/microcosm-cc/bluemonday"
)

// ReplyText is the acknowledgement posted under a saved cast.
const ReplyText = "💾 Cast saved!"

// ErrParentLookup wraps failures resolving the parent cast upstream.
var ErrParentLookup = errors.New("parent cast fetch failed")

// ErrStorage wraps insert failures.
var ErrStorage = errors.New("insert failed")

// CastLookup resolves a cast by hash through the indexing API.
type CastLookup interface {
	LookupCast(ctx context.Context, hash string) (*neynar.Cast, error)
}

// CastPublisher posts a reply cast through the indexing API.
type CastPublisher interface {
	PublishReply(ctx context.Context, text, parentHash string, parentAuthorFID int64) error
}

// CastAPI is what the ingestion flow needs from the Neynar client.
type CastAPI interface {
	CastLookup
	CastPublisher
}

// IngestResult classifies the outcome of a webhook event.
type IngestResult int

const (
	// IngestIgnored: the event did not match the trigger. Not an error.
	IngestIgnored IngestResult = iota
	// IngestNoParent: trigger matched but there was nothing to save.
	IngestNoParent
	// IngestSaved: one row persisted (the ack reply may still have failed).
	IngestSaved
	// IngestFailed: a matching save attempt did not complete. Always
	// accompanied by a non-nil error.
	IngestFailed
)

// IngestService turns a qualifying cast.created event into one persisted
// SavedCast and one best-effort acknowledgement reply.
type IngestService struct {
	store     SavedCastStore
	api       CastAPI
	mention   string
	trigger   string
	sanitizer *bluemonday.Policy
}

func NewIngestService(store SavedCastStore, api CastAPI, mention, trigger string) *IngestService {
	return &IngestService{
		store:   store,
		api:     api,
		mention: strings.ToLower(mention),
		trigger: strings.ToLower(trigger),
		// 保存前清除 cast 文本里的任何标记
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Matches reports whether the event is a save request: a cast.created event
// whose text contains both the bot mention and the trigger phrase. Both
// checks are case-insensitive substring checks; order is irrelevant.
func (s *IngestService) Matches(ev *neynar.WebhookEvent) bool {
	if ev == nil || ev.Type != neynar.EventCastCreated {
		return false
	}
	text := strings.ToLower(ev.Data.Text)
	return strings.Contains(text, s.mention) && strings.Contains(text, s.trigger)
}

// ProcessEvent runs the full ingestion flow. The insert is the durability
// boundary: a reply failure after a successful insert is logged and the
// event still counts as saved.
func (s *IngestService) ProcessEvent(ctx context.Context, ev *neynar.WebhookEvent) (IngestResult, error) {
	if !s.Matches(ev) {
		return IngestIgnored, nil
	}

	parentHash := ev.Data.ParentHash
	if parentHash == "" {
		return IngestNoParent, nil
	}

	parent, err := s.api.LookupCast(ctx, parentHash)
	if err != nil {
		return IngestFailed, fmt.Errorf("%w: %v", ErrParentLookup, err)
	}

	saved := &models.SavedCast{
		Hash:           parent.Hash,
		Text:           s.stripMarkup(parent.Text),
		AuthorFID:      parent.Author.FID,
		AuthorUsername: parent.Author.Username,
		SavedByFID:     ev.Data.Author.FID,
		Timestamp:      parent.Timestamp,
	}
	if err := s.store.Insert(ctx, saved); err != nil {
		return IngestFailed, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// Best-effort acknowledgement; never rolls back the insert.
	if err := s.api.PublishReply(ctx, ReplyText, parent.Hash, parent.Author.FID); err != nil {
		log.Printf("ack reply failed for cast %s: %v", parent.Hash, err)
	}

	return IngestSaved, nil
}

// stripMarkup removes any markup from remote cast text, keeping plain text.
// Escaping back out happens at render time, so the sanitized output is
// unescaped before storage.
func (s *IngestService) stripMarkup(text string) string {
	return html.UnescapeString(s.sanitizer.Sanitize(text))
}
