package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/http/middleware"
)

// AuthHandlers handles login, OTP validation, logout and profile requests
type AuthHandlers struct {
	authSvc domain.AuthService
	docSvc  domain.DocumentService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, docSvc domain.DocumentService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, docSvc: docSvc}
}

// LoginRequest carries exactly one of email or phone number.
type LoginRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone_number" binding:"omitempty,e164"`
}

// ValidateOTPRequest carries the contact used to log in plus the code.
type ValidateOTPRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone_number" binding:"omitempty,e164"`
	Code  string `json:"otp" binding:"required,numeric"`
}

// Login handles login: it issues an OTP on the contact channel provided.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	accountID, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":    "Login successful. OTP has been sent to your email or phone.",
			"account_id": accountID,
		},
	})
}

// ValidateOTP handles OTP verification and returns the session token.
func (h *AuthHandlers) ValidateOTP(c *gin.Context) {
	var req ValidateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.authSvc.ValidateOTP(c.Request.Context(), req.Email, req.Phone, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":       "OTP validated successfully. You are now logged in.",
			"session_token": result.SessionToken,
			"expires_at":    result.ExpiresAt,
			"account_id":    result.Account.ID,
		},
	})
}

// Logout handles session revocation (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), account.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Logged out successfully."},
	})
}

// Me handles getting the caller's profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	profile, err := h.authSvc.Profile(c.Request.Context(), account.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	driver, owner, err := h.docSvc.Profiles(c.Request.Context(), profile)
	if err != nil {
		respondError(c, err)
		return
	}

	documents := gin.H{}
	if driver != nil {
		documents["driver"] = documentState(driver)
	}
	if owner != nil {
		documents["owner"] = documentState(owner)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":            profile.ID,
			"username":      profile.Username,
			"email":         profile.Email,
			"phone_number":  profile.Phone,
			"first_name":    profile.FirstName,
			"last_name":     profile.LastName,
			"register_type": profile.RegisterType,
			"register_step": profile.RegisterStep,
			"system_role":   profile.SystemRole,
			"created_at":    profile.CreatedAt,
			"documents":     documents,
		},
	})
}

func documentState(p *domain.RoleProfile) gin.H {
	return gin.H{
		"passport_ref":   p.PassportRef,
		"id_card_ref":    p.IDCardRef,
		"valid_passport": p.ValidPassport,
		"valid_id_card":  p.ValidIDCard,
	}
}
