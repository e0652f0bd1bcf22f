package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteo-data/weather-ingest/internal/ingest"
	"github.com/meteo-data/weather-ingest/internal/models"
	"github.com/meteo-data/weather-ingest/internal/observability"
	"github.com/meteo-data/weather-ingest/internal/repository"
)

const testCSV = "H\n2025-10-15;Madrid;16.5;8.1;1.4;80\n2025-10-16;Madrid;17,0;7,9;0,0;50\n"

type fakeReadingStore struct {
	seen map[string]bool
	err  error
}

func (s *fakeReadingStore) InsertOrSkip(_ context.Context, r models.WeatherReading) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	key := r.City + "|" + r.Date
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	return true, nil
}

func setupIngestRouter(store ingest.ReadingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ingester := ingest.NewIngesterWithClock(store, observability.NewMetricsForTesting(), clockwork.NewFakeClock())
	r.POST("/ingest/csv", NewIngestHandler(ingester).HandleIngestCSV)
	return r
}

func postCSV(t *testing.T, r *gin.Engine, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/ingest/csv", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func TestHandleIngestCSV_RawBody(t *testing.T) {
	r := setupIngestRouter(&fakeReadingStore{})

	code, body := postCSV(t, r, testCSV)
	require.Equal(t, 200, code)
	assert.Equal(t, float64(2), body["rows_inserted"])
	assert.Equal(t, float64(0), body["rows_rejected"])
	assert.Regexp(t, "^sha256:[0-9a-f]{64}$", body["file_checksum"])
	assert.Contains(t, body, "elapsed_ms")
}

func TestHandleIngestCSV_SecondIngestionRejectsDuplicates(t *testing.T) {
	r := setupIngestRouter(&fakeReadingStore{})

	_, first := postCSV(t, r, testCSV)
	code, second := postCSV(t, r, testCSV)

	require.Equal(t, 200, code)
	assert.Equal(t, float64(0), second["rows_inserted"])
	assert.Equal(t, float64(2), second["rows_rejected"])
	assert.Equal(t, first["file_checksum"], second["file_checksum"])
}

func TestHandleIngestCSV_EmptyBody(t *testing.T) {
	r := setupIngestRouter(&fakeReadingStore{})

	code, body := postCSV(t, r, "")
	assert.Equal(t, 400, code)
	assert.Equal(t, "no csv data provided; send raw body or multipart file", body["error"])
}

func TestHandleIngestCSV_HeaderOnly(t *testing.T) {
	r := setupIngestRouter(&fakeReadingStore{})

	code, body := postCSV(t, r, "Fecha;Ciudad;TempMax;TempMin;Precip;Nubosidad\n")
	assert.Equal(t, 400, code)
	assert.Equal(t, "empty csv (header only or no data rows)", body["error"])
}

func TestHandleIngestCSV_MultipartFile(t *testing.T) {
	r := setupIngestRouter(&fakeReadingStore{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "weather.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(testCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/ingest/csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(2), body["rows_inserted"])
}

func TestHandleIngestCSV_MultipartValueField(t *testing.T) {
	r := setupIngestRouter(&fakeReadingStore{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("csv", testCSV))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/ingest/csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, float64(2), body["rows_inserted"])
}

func TestHandleIngestCSV_MultipartWithoutPayload(t *testing.T) {
	r := setupIngestRouter(&fakeReadingStore{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/ingest/csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "missing csv payload in multipart form", body["error"])
}

func TestHandleIngestCSV_StoreDown(t *testing.T) {
	store := &fakeReadingStore{err: fmt.Errorf("%w: connection refused", repository.ErrUnavailable)}
	r := setupIngestRouter(store)

	code, body := postCSV(t, r, testCSV)
	assert.Equal(t, 503, code)
	assert.Equal(t, "database unavailable", body["error"])
	assert.Equal(t, "connection refused", body["details"])
}
