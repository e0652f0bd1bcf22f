package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meteo-data/weather-ingest/internal/api/response"
	"github.com/meteo-data/weather-ingest/internal/ingest"
	"github.com/meteo-data/weather-ingest/internal/models"
	"github.com/meteo-data/weather-ingest/internal/pagination"
)

// RecordStore is the read surface for the city listing and the paginated
// range query. Implemented by repository.ReadingRepository.
type RecordStore interface {
	ListDistinctCities(ctx context.Context) ([]string, error)
	CountInRange(ctx context.Context, city, from, to string) (int, error)
	PageInRange(ctx context.Context, city, from, to string, limit, offset int) ([]models.RecordItem, error)
}

// RecordsHandler handles the read endpoints.
type RecordsHandler struct {
	store RecordStore
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(store RecordStore) *RecordsHandler {
	return &RecordsHandler{store: store}
}

// HandleListCities handles GET /cities.
func (h *RecordsHandler) HandleListCities(c *gin.Context) {
	cities, err := h.store.ListDistinctCities(c.Request.Context())
	if err != nil {
		response.Unavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// HandleGetRecords handles GET /records. city, from and to are required;
// page and limit are optional and silently reset to defaults when invalid.
// The count and the page are two separate round trips.
func (h *RecordsHandler) HandleGetRecords(c *gin.Context) {
	city, cityOK := c.GetQuery("city")
	from, fromOK := c.GetQuery("from")
	to, toOK := c.GetQuery("to")

	if !cityOK || !fromOK || !toOK {
		response.BadRequestWith(c, "missing required query parameters", gin.H{
			"required": []string{"city", "from", "to"},
		})
		return
	}

	fromISO, fromValid := ingest.ToISODate(from)
	toISO, toValid := ingest.ToISODate(to)
	if !fromValid || !toValid {
		response.BadRequestWith(c, "invalid date format", gin.H{
			"hint": "use YYYY-MM-DD",
		})
		return
	}
	if fromISO > toISO {
		response.BadRequest(c, "`from` must be <= `to`")
		return
	}

	page := pagination.DefaultPage
	limit := pagination.DefaultLimit
	if s, ok := c.GetQuery("page"); ok {
		if v, valid := ingest.ToInt(s); valid {
			page = v
		}
	}
	if s, ok := c.GetQuery("limit"); ok {
		if v, valid := ingest.ToInt(s); valid {
			limit = v
		}
	}
	page, limit = pagination.Normalize(page, limit)

	total, err := h.store.CountInRange(c.Request.Context(), city, fromISO, toISO)
	if err != nil {
		response.Unavailable(c, err)
		return
	}

	items, err := h.store.PageInRange(c.Request.Context(), city, fromISO, toISO, limit, pagination.Offset(page, limit))
	if err != nil {
		response.Unavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"city":        city,
		"from":        fromISO,
		"to":          toISO,
		"page":        page,
		"limit":       limit,
		"total":       total,
		"total_pages": pagination.TotalPages(total, limit),
		"items":       items,
	})
}
