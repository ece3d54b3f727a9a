package parser

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// parseDate accepts any layout dateparse recognizes; values without a zone are UTC
func parseDate(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid DATE literal %q: %w", value, err)
	}
	return t, nil
}
