package neynar

// WebhookEvent is the envelope Neynar delivers to webhook subscribers.
// Only cast.created events carry a payload CastKeepr acts on; everything
// else is acknowledged and ignored.
type WebhookEvent struct {
	Type string      `json:"type" binding:"required"`
	Data WebhookCast `json:"data"`
}

// EventCastCreated is the event type that can trigger a save.
const EventCastCreated = "cast.created"

// WebhookCast is the cast payload inside a cast.created event. ParentHash is
// empty for top-level casts.
type WebhookCast struct {
	Hash       string     `json:"hash"`
	Text       string     `json:"text"`
	ParentHash string     `json:"parent_hash"`
	Author     CastAuthor `json:"author"`
}
