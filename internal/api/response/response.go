package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meteo-data/weather-ingest/internal/repository"
)

// Every error body carries at least an "error" key; bodies are flat JSON
// objects, not wrapped in an envelope.

// BadRequest sends a 400 with the given reason.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// BadRequestWith sends a 400 with the reason plus extra detail fields.
func BadRequestWith(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"error": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusBadRequest, body)
}

// Unavailable sends a 503 with best-effort diagnostic detail from the store
// error.
func Unavailable(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = strings.TrimPrefix(err.Error(), repository.ErrUnavailable.Error()+": ")
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":   repository.ErrUnavailable.Error(),
		"details": details,
	})
}
