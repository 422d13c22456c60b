package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// turkishDateLayout is the date format used on printed internship forms.
const turkishDateLayout = "02.01.2006"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseTurkishDate parses a DD.MM.YYYY date as found on internship documents.
func ParseTurkishDate(value string) (time.Time, error) {
	t, err := time.Parse(turkishDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD.MM.YYYY: %w", value, err)
	}
	return t, nil
}

// ToISODate formats a time as YYYY-MM-DD, the normalized form used in the API.
func ToISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// NormalizeTurkishDate converts DD.MM.YYYY to YYYY-MM-DD.
func NormalizeTurkishDate(value string) (string, error) {
	t, err := ParseTurkishDate(value)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}
