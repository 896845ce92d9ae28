package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/omxqn/api-application/domain"
	"github.com/omxqn/api-application/internal/http/middleware"
)

// UploadHandlers stores identity documents and attaches them to the
// caller's role profile.
type UploadHandlers struct {
	docSvc    domain.DocumentService
	uploadDir string
}

// NewUploadHandlers creates new upload handlers
func NewUploadHandlers(docSvc domain.DocumentService, uploadDir string) *UploadHandlers {
	return &UploadHandlers{docSvc: docSvc, uploadDir: uploadDir}
}

// UploadPassport handles a passport image upload.
func (h *UploadHandlers) UploadPassport(c *gin.Context) {
	h.upload(c, domain.DocumentPassport, "passport")
}

// UploadIDCard handles an ID card image upload.
func (h *UploadHandlers) UploadIDCard(c *gin.Context) {
	h.upload(c, domain.DocumentIDCard, "idcard")
}

func (h *UploadHandlers) upload(c *gin.Context, kind domain.DocumentKind, subdir string) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found in context"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	ref := filepath.Join(subdir, uuid.NewString()+ext)
	dst := filepath.Join(h.uploadDir, ref)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	if err := h.docSvc.Attach(c.Request.Context(), account.ID, kind, ref); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Document uploaded.",
			"ref":     ref,
		},
	})
}
