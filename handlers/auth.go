package handlers

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"quickmart-api/middleware"
	"quickmart-api/models"
	"quickmart-api/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

type RequestOTPRequest struct {
	Phone       string `json:"phone" binding:"required,min=7"`
	CountryCode string `json:"country_code" binding:"required"`
}

type VerifyOTPRequest struct {
	Phone       string `json:"phone" binding:"required"`
	CountryCode string `json:"country_code" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
}

// RequestOTP issues a one-time code for a phone number. There is no SMS
// gateway — the code is written to the server log, which is the whole
// delivery mechanism in this simulation.
func (h *Handler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := generateOTP()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
		return
	}

	number := req.CountryCode + req.Phone
	h.mu.Lock()
	h.pending[number] = otpChallenge{hash: hash, expiresAt: time.Now().Add(otpTTL)}
	h.mu.Unlock()

	log.Printf("📱 OTP for %s: %s", number, code)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Verification code sent",
		"expires_in": int(otpTTL.Seconds()),
	})
}

// VerifyOTP checks the code, starts a fresh session with its own store set
// and returns a JWT for it.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	number := req.CountryCode + req.Phone
	h.mu.Lock()
	challenge, ok := h.pending[number]
	h.mu.Unlock()

	if !ok || time.Now().After(challenge.expiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Code expired or never requested"})
		return
	}
	if err := bcrypt.CompareHashAndPassword(challenge.hash, []byte(req.Code)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid verification code"})
		return
	}

	h.mu.Lock()
	delete(h.pending, number)
	h.mu.Unlock()

	user := models.User{
		ID:    uuid.NewString(),
		Phone: number,
	}

	s := h.Sessions.Start(user.ID)
	s.User.Dispatch(store.SetLoading{Loading: true})
	s.User.Dispatch(store.Login{User: user})

	token, err := middleware.GenerateToken(user.ID, user.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Phone number verified",
		"token":   token,
		"user":    user,
	})
}

// Logout tears the caller's session down, cancelling any live delivery
// timelines with it.
func (h *Handler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if s, ok := h.Sessions.Get(userID); ok {
		s.User.Dispatch(store.Logout{})
	}
	h.Sessions.End(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
