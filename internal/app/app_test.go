package app

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestApplyGinMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	applyGinMode(gin.ReleaseMode)
	if gin.Mode() != gin.ReleaseMode {
		t.Errorf("expected release mode, got %s", gin.Mode())
	}

	applyGinMode("")
	if gin.Mode() != gin.ReleaseMode {
		t.Error("empty mode must leave the current mode untouched")
	}
}
