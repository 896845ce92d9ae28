package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/domain"
)

// AdminHandlers handles privileged role and policy administration
type AdminHandlers struct {
	authzSvc  domain.AuthorizationService
	policySvc domain.PolicyService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(authzSvc domain.AuthorizationService, policySvc domain.PolicyService) *AdminHandlers {
	return &AdminHandlers{authzSvc: authzSvc, policySvc: policySvc}
}

// SetRoleRequest assigns a system role to an account.
type SetRoleRequest struct {
	AccountID uint              `json:"account_id" binding:"required"`
	Role      domain.SystemRole `json:"role" binding:"required"`
}

// PolicyRequest names one authorization rule.
type PolicyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// SetSystemRole handles assigning a system role to an account.
func (h *AdminHandlers) SetSystemRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authzSvc.SetSystemRole(c.Request.Context(), req.AccountID, req.Role); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "System role updated."},
	})
}

// ListPolicies handles listing all authorization rules.
func (h *AdminHandlers) ListPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"policies": h.policySvc.GetPolicies()}})
}

// AddPolicy handles adding an authorization rule.
func (h *AdminHandlers) AddPolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.policySvc.AddPolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add policy"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{"message": "Policy added."},
	})
}

// RemovePolicy handles removing an authorization rule.
func (h *AdminHandlers) RemovePolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.policySvc.RemovePolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove policy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "Policy removed."},
	})
}
