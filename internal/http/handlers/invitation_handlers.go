package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/http/middleware"
)

// InvitationHandlers handles owner-to-captain invitation requests
type InvitationHandlers struct {
	invSvc domain.InvitationService
}

// NewInvitationHandlers creates new invitation handlers
func NewInvitationHandlers(invSvc domain.InvitationService) *InvitationHandlers {
	return &InvitationHandlers{invSvc: invSvc}
}

// CreateInvitationRequest names the bus and the captain being invited.
type CreateInvitationRequest struct {
	BusID     uint `json:"bus_id" binding:"required"`
	InviteeID uint `json:"invitee_id" binding:"required"`
}

// ReplyInvitationRequest carries the invitee's decision.
type ReplyInvitationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// Create handles invitation creation; the caller must own the bus.
func (h *InvitationHandlers) Create(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	inv, err := h.invSvc.Create(c.Request.Context(), account.ID, req.BusID, req.InviteeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":       "Invitation sent.",
			"invitation_id": inv.ID,
			"status":        inv.Status,
		},
	})
}

// ListPending handles listing the caller's pending invitations.
func (h *InvitationHandlers) ListPending(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	invitations, err := h.invSvc.ListPending(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"invitations": invitations}})
}

// Reply handles accepting or rejecting a pending invitation.
func (h *InvitationHandlers) Reply(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	invitationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	var req ReplyInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	inv, err := h.invSvc.Reply(c.Request.Context(), uint(invitationID), account.ID, *req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"invitation_id": inv.ID,
			"status":        inv.Status,
		},
	})
}
