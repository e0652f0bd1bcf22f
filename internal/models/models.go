package models

// WeatherReading is one persisted daily observation, unique per (city, date).
// DB columns: date, city, temp_max_c, temp_min_c, precip_mm, cloud_pct
type WeatherReading struct {
	Date     string  `json:"date"` // ISO YYYY-MM-DD
	City     string  `json:"city"`
	TempMaxC float64 `json:"temp_max_c"`
	TempMinC float64 `json:"temp_min_c"`
	PrecipMM float64 `json:"precip_mm"`
	CloudPct int     `json:"cloud_pct"`
}

// RecordItem is the per-row shape returned by the range query; the city is
// carried at the top level of the response, not per item.
type RecordItem struct {
	Date     string  `json:"date"`
	TempMaxC float64 `json:"temp_max_c"`
	TempMinC float64 `json:"temp_min_c"`
	PrecipMM float64 `json:"precip_mm"`
	CloudPct int     `json:"cloud_pct"`
}

// IngestionResult aggregates the outcome of one ingest request.
// RowsRejected folds parse failures and (city,date) conflicts together.
type IngestionResult struct {
	RowsInserted int    `json:"rows_inserted"`
	RowsRejected int    `json:"rows_rejected"`
	ElapsedMs    int64  `json:"elapsed_ms"`
	FileChecksum string `json:"file_checksum"`
}
