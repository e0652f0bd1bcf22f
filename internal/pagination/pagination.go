// Package pagination turns (page, limit, total) triples into offsets and
// page counts. Invalid inputs are silently reset to defaults rather than
// rejected.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Normalize resets an out-of-range page to DefaultPage, an out-of-range
// limit to DefaultLimit, and clamps limit to MaxLimit.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset computes the row offset for a page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// TotalPages computes ceil(total/limit), with 0 pages for an empty result.
func TotalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
