package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/auntiehomie/castkeepr/internal/config"
	"github.com/auntiehomie/castkeepr/internal/frame"
	"github.com/auntiehomie/castkeepr/internal/models"
	"github.com/auntiehomie/castkeepr/internal/preview"
	"github.com/auntiehomie/castkeepr/internal/services"

	"github.com/gin-gonic/gin"
)

// FrameHandler answers the Farcaster frame protocol. It never returns a
// protocol-breaking error: a broken embed is worse than a stale one, so any
// internal failure falls back to the entry document.
type FrameHandler struct {
	cfg   *config.Config
	store services.SavedCastStore
}

func NewFrameHandler(cfg *config.Config, store services.SavedCastStore) *FrameHandler {
	return &FrameHandler{cfg: cfg, store: store}
}

// framePacket is the interaction envelope posted by frame clients. Everything
// under untrustedData is client-asserted.
type framePacket struct {
	UntrustedData struct {
		FID         int64  `json:"fid"`
		ButtonIndex int    `json:"buttonIndex"`
		State       string `json:"state"`
	} `json:"untrustedData"`
}

// Entry GET /frame — the unpaginated entry document.
func (h *FrameHandler) Entry(c *gin.Context) {
	h.renderEntry(c)
}

// Interact POST /frame — one step of the pagination state machine.
func (h *FrameHandler) Interact(c *gin.Context) {
	var packet framePacket
	if err := c.ShouldBindJSON(&packet); err != nil {
		h.renderEntry(c)
		return
	}

	// Without an acting identity there is no personalized page to show.
	// Fail open to the generic view, not an error page.
	fid := packet.UntrustedData.FID
	if fid <= 0 {
		h.renderEntry(c)
		return
	}

	prev, hasPrior := frame.ParseState(decodeState(packet.UntrustedData.State))
	action, next := frame.Advance(prev, hasPrior, packet.UntrustedData.ButtonIndex)
	if action == frame.ShowEntry {
		h.renderEntry(c)
		return
	}

	total, err := h.store.CountSaved(c.Request.Context(), fid)
	if err != nil {
		log.Printf("frame count failed for fid %d: %v", fid, err)
		h.renderEntry(c)
		return
	}
	if total == 0 {
		h.renderEmpty(c)
		return
	}

	next = next.Clamp(total)
	casts, err := h.store.ListSaved(c.Request.Context(), fid, 1, next.Page-1)
	if err != nil || len(casts) == 0 {
		if err != nil {
			log.Printf("frame fetch failed for fid %d: %v", fid, err)
		}
		h.renderEntry(c)
		return
	}

	h.renderPage(c, casts[0], next, total)
}

func (h *FrameHandler) renderEntry(c *gin.Context) {
	doc := frame.Document{
		Title:       "CastKeepr",
		Description: "Your saved Farcaster casts, one frame away",
		Image:       h.cfg.BaseURL + "/static/preview.svg",
		PostURL:     h.cfg.BaseURL + "/frame",
		Buttons:     frame.EntryButtons(h.cfg.AppURL),
	}
	c.HTML(http.StatusOK, "frame/entry.html", gin.H{"Doc": doc})
}

func (h *FrameHandler) renderEmpty(c *gin.Context) {
	doc := frame.Document{
		Title:       "CastKeepr",
		Description: "No saved casts yet",
		Image:       h.cfg.BaseURL + "/api/frame-image?type=empty",
		PostURL:     h.cfg.BaseURL + "/frame",
		State:       frame.State{Empty: true}.Token(),
		Buttons:     frame.EmptyButtons(h.cfg.AppURL),
	}
	c.HTML(http.StatusOK, "frame/empty.html", gin.H{"Doc": doc})
}

func (h *FrameHandler) renderPage(c *gin.Context, cast models.SavedCast, state frame.State, total int64) {
	doc := frame.Document{
		Title:       "CastKeepr - Page " + strconv.Itoa(state.Page),
		Description: "Saved cast " + strconv.Itoa(state.Page) + " of " + strconv.FormatInt(total, 10),
		Image:       h.pageImageURL(cast, state.Page),
		PostURL:     h.cfg.BaseURL + "/frame",
		State:       state.Token(),
		Buttons:     frame.PageButtons(h.cfg.AppURL),
	}
	c.HTML(http.StatusOK, "frame/page.html", gin.H{"Doc": doc, "Cast": cast, "Total": total})
}

// pageImageURL hands the page's cast to the preview renderer as a URL-encoded
// JSON array, the same contract the mini-app's own preview calls use.
func (h *FrameHandler) pageImageURL(cast models.SavedCast, page int) string {
	payload, err := json.Marshal([]preview.Cast{{
		Author:    cast.AuthorUsername,
		Text:      cast.Text,
		Timestamp: cast.Timestamp.Format(time.RFC3339),
	}})
	if err != nil {
		return h.cfg.BaseURL + "/api/frame-image?type=empty"
	}
	return h.cfg.BaseURL + "/api/frame-image?casts=" + url.QueryEscape(string(payload)) + "&page=" + strconv.Itoa(page)
}

// decodeState tolerates clients that URL-encode the state field.
func decodeState(raw string) string {
	if decoded, err := url.QueryUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
