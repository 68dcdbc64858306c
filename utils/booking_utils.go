package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// EnvBool reads a boolean flag from the environment, defaulting when unset.
func EnvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	return v == "true" || v == "1" || v == "yes"
}

// NewReferenceCode generates a short booking reference like "BK-9F4C21AB".
func NewReferenceCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BK-" + id[:8]
}

// ParseStayDate accepts "2006-01-02" or RFC3339 and normalizes to midnight.
// An empty string parses to nil.
func ParseStayDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var t time.Time
	if parsed, err := time.Parse("2006-01-02", s); err == nil {
		t = parsed
	} else if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t = parsed
	} else {
		return nil, errors.New("unrecognized date format")
	}
	day := now.With(t).BeginningOfDay()
	return &day, nil
}

// CalculateNights counts nights between two stay dates; same-day or missing
// dates count as zero.
func CalculateNights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	if checkOut.Before(*checkIn) {
		return 0
	}
	nights := int(checkOut.Sub(*checkIn).Hours() / 24)
	if nights < 0 {
		nights = 0
	}
	return nights
}
