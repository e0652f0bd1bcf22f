package ingest

import (
	"math"
	"strconv"
	"strings"
)

// SplitFields splits a raw CSV line on ';'. A trailing separator does not
// produce an extra empty field: "a;b;;" yields exactly three fields, one per
// separator encountered.
func SplitFields(line string) []string {
	if line == "" {
		return nil
	}
	fields := strings.Split(line, ";")
	if strings.HasSuffix(line, ";") {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// ToISODate normalizes and validates a calendar date. Slashes are mapped to
// dashes before positional checks, so only input already in year-month-day
// order is accepted; "15/10/2025" fails. Year must lie in [1900, 2100] and
// month/day are checked against real month lengths, leap years included.
func ToISODate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "/", "-")
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return "", false
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil {
		return "", false
	}
	if !validDate(year, month, day) {
		return "", false
	}
	return s, true
}

// ToDecimal parses a floating-point value accepting either ',' or '.' as the
// fractional separator. The whole trimmed string must be numeric.
func ToDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToInt parses a signed base-10 integer that must fit in 32 bits.
func ToInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func validDate(y, m, d int) bool {
	if y < 1900 || y > 2100 || m < 1 || m > 12 || d < 1 {
		return false
	}
	last := monthDays[m-1]
	if m == 2 && isLeapYear(y) {
		last = 29
	}
	return d <= last
}
