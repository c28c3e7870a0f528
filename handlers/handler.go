package handlers

import (
	"net/http"
	"sync"
	"time"

	"quickmart-api/middleware"
	"quickmart-api/session"
	"quickmart-api/storage"

	"github.com/gin-gonic/gin"
)

// Handler carries the API's collaborators: the session manager owning the
// per-user stores and the local key-value cache. Constructed once in main
// and injected — nothing here is package-level state.
type Handler struct {
	Sessions *session.Manager
	Cache    *storage.Store

	mu      sync.Mutex
	pending map[string]otpChallenge
}

type otpChallenge struct {
	hash      []byte
	expiresAt time.Time
}

func New(sessions *session.Manager, cache *storage.Store) *Handler {
	return &Handler{
		Sessions: sessions,
		Cache:    cache,
		pending:  make(map[string]otpChallenge),
	}
}

// currentSession resolves the caller's live session, replying 401 when the
// session is gone (token still valid but user logged out elsewhere).
func (h *Handler) currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := h.Sessions.Get(middleware.GetUserID(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
		return nil, false
	}
	return s, true
}
