package handlers

import (
	"log"
	"net/http"

	"github.com/auntiehomie/castkeepr/internal/models"
	"github.com/auntiehomie/castkeepr/internal/services"
	"github.com/auntiehomie/castkeepr/internal/utils"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the mini-app's REST surface.
type APIHandler struct {
	store services.SavedCastStore
}

func NewAPIHandler(store services.SavedCastStore) *APIHandler {
	return &APIHandler{store: store}
}

// ListSavedCasts GET /api/saved-casts?fid=<n>&limit=<n>&offset=<n>
// fid is required; listing is always scoped to the account that issued the
// save commands. limit/offset are optional (0-based window).
func (h *APIHandler) ListSavedCasts(c *gin.Context) {
	fid, err := utils.ParseFID(c.Query("fid"))
	if err != nil {
		JSONError(c, http.StatusBadRequest, "missing or invalid fid")
		return
	}

	limit := utils.StringToInt(c.Query("limit"))
	offset := utils.StringToInt(c.Query("offset"))

	casts, err := h.store.ListSaved(c.Request.Context(), fid, limit, offset)
	if err != nil {
		log.Printf("list saved casts failed: %v", err)
		JSONError(c, http.StatusInternalServerError, "Failed to fetch saved casts")
		return
	}
	if casts == nil {
		casts = []models.SavedCast{}
	}
	c.JSON(http.StatusOK, casts)
}

// UserInfo GET /api/user-info?fid=<n>
func (h *APIHandler) UserInfo(c *gin.Context) {
	fid, err := utils.ParseFID(c.Query("fid"))
	if err != nil {
		JSONError(c, http.StatusBadRequest, "missing or invalid fid")
		return
	}

	count, err := h.store.CountSaved(c.Request.Context(), fid)
	if err != nil {
		log.Printf("count saved casts failed: %v", err)
		JSONError(c, http.StatusInternalServerError, "Failed to fetch user info")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fid":             fid,
		"savedCastsCount": count,
	})
}
