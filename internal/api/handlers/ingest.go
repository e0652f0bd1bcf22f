package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meteo-data/weather-ingest/internal/api/response"
	"github.com/meteo-data/weather-ingest/internal/ingest"
)

// IngestHandler handles CSV ingestion requests.
type IngestHandler struct {
	ingester *ingest.Ingester
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(ingester *ingest.Ingester) *IngestHandler {
	return &IngestHandler{ingester: ingester}
}

// HandleIngestCSV handles POST /ingest/csv. The CSV arrives either as the
// raw request body or inside a multipart form (field priority: file/csv/
// upload, files before values, then any file, then any value).
func (h *IngestHandler) HandleIngestCSV(c *gin.Context) {
	var payload []byte

	if c.ContentType() == "multipart/form-data" {
		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, ingest.ErrMissingMultipart.Error())
			return
		}
		var found bool
		payload, found = ingest.ExtractPayload(form)
		if !found {
			response.BadRequest(c, ingest.ErrMissingMultipart.Error())
			return
		}
	} else {
		raw, err := c.GetRawData()
		if err != nil {
			response.BadRequest(c, ingest.ErrEmptyPayload.Error())
			return
		}
		payload = raw
	}

	result, err := h.ingester.Ingest(c.Request.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrEmptyPayload),
			errors.Is(err, ingest.ErrNoHeader),
			errors.Is(err, ingest.ErrNoDataRows):
			response.BadRequest(c, err.Error())
		default:
			response.Unavailable(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
