package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/http/middleware"
)

// ContentHandlers serves landing-screen content
type ContentHandlers struct {
	contentRepo domain.ContentRepository
}

// NewContentHandlers creates new content handlers
func NewContentHandlers(contentRepo domain.ContentRepository) *ContentHandlers {
	return &ContentHandlers{contentRepo: contentRepo}
}

// Sliders handles the public landing-screen carousel.
func (h *ContentHandlers) Sliders(c *gin.Context) {
	sliders, err := h.contentRepo.ListSliders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"sliders": sliders}})
}

// MainScreen handles the authenticated home screen payload.
func (h *ContentHandlers) MainScreen(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	sliders, err := h.contentRepo.ListSliders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"first_name":    account.FirstName,
			"register_type": account.RegisterType,
			"sliders":       sliders,
		},
	})
}
