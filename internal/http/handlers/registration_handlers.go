package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
)

// RegistrationHandlers handles account onboarding requests
type RegistrationHandlers struct {
	regSvc domain.RegistrationService
}

// NewRegistrationHandlers creates new registration handlers
func NewRegistrationHandlers(regSvc domain.RegistrationService) *RegistrationHandlers {
	return &RegistrationHandlers{regSvc: regSvc}
}

// RegisterRequest carries the basic identity fields for a new account.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=32"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone_number" binding:"required,e164"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// RegisterTypeRequest selects the role for an account.
type RegisterTypeRequest struct {
	AccountID    uint                `json:"account_id" binding:"required"`
	RegisterType domain.RegisterType `json:"register_type" binding:"required"`
}

// Register handles basic account creation.
func (h *RegistrationHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.regSvc.CreateBasicAccount(c.Request.Context(),
		req.Username, req.Email, req.Phone, req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":    "Account created successfully.",
			"account_id": account.ID,
		},
	})
}

// SetRegisterType handles role selection for an onboarding account.
func (h *RegistrationHandlers) SetRegisterType(c *gin.Context) {
	var req RegisterTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.regSvc.SetRegisterType(c.Request.Context(), req.AccountID, req.RegisterType); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Register type updated."},
	})
}

// CompleteProfile handles the final onboarding step: it creates the role
// profile and returns a session token.
func (h *RegistrationHandlers) CompleteProfile(c *gin.Context) {
	var req RegisterTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.regSvc.CompleteRoleProfile(c.Request.Context(), req.AccountID, req.RegisterType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":       "Registration completed.",
			"session_token": result.SessionToken,
			"expires_at":    result.ExpiresAt,
			"account_id":    result.Account.ID,
			"register_step": result.Account.RegisterStep,
		},
	})
}
