package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/auntiehomie/castkeepr/internal/preview"
	"github.com/auntiehomie/castkeepr/internal/utils"

	"github.com/gin-gonic/gin"
)

// PreviewHandler serves the frame image documents.
type PreviewHandler struct{}

func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{}
}

// FrameImage GET /api/frame-image?casts=<urlencoded JSON>&page=<n>&type=empty&format=svg
// A malformed casts parameter is silently treated as an empty list; the
// endpoint always renders something.
func (h *PreviewHandler) FrameImage(c *gin.Context) {
	isEmpty := c.Query("type") == "empty"

	var casts []preview.Cast
	if raw := c.Query("casts"); raw != "" && !isEmpty {
		decoded, err := url.QueryUnescape(raw)
		if err != nil {
			decoded = raw
		}
		if err := json.Unmarshal([]byte(decoded), &casts); err != nil {
			log.Printf("error parsing casts: %v", err)
			casts = nil
		}
	}

	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	// Clients may re-request the same image on every render; it is safe to
	// cache for a few minutes.
	c.Header("Cache-Control", "public, max-age=300")

	if c.Query("format") == "svg" {
		c.Data(http.StatusOK, "image/svg+xml", []byte(preview.RenderSVG(casts, page, isEmpty)))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(preview.RenderHTML(casts, page, isEmpty)))
}
