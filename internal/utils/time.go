package utils

import (
	"strings"
	"time"
)

const (
	layoutDate   = "2006-01-02"
	layoutDateIN = "02/01/2006"
)

// ParseDate parses YYYY-MM-DD (the HTML date input format) in local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDateIN renders a date the way the en-IN locale does: dd/mm/yyyy.
func FormatDateIN(t time.Time) string {
	return t.In(time.Local).Format(layoutDateIN)
}

// DateStamp is FormatDateIN with slashes replaced by hyphens, for use in
// export file names.
func DateStamp(t time.Time) string {
	return strings.ReplaceAll(FormatDateIN(t), "/", "-")
}
