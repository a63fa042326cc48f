// Package export converts diary entries to the interchange formats the app
// can hand off to other tools: compact JSON and RFC-4180 CSV.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/evanmoss/dailyq/internal/dateutil"
	"github.com/evanmoss/dailyq/internal/models"
)

// CSVHeader is the first row of every CSV export.
const CSVHeader = "date,questionText,value,type"

// ToJSON renders the entries verbatim as a compact JSON array. No pretty
// printing, no field filtering; an empty collection is the literal "[]".
func ToJSON(entries []models.DiaryEntry) (string, error) {
	if len(entries) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to serialize entries: %w", err)
	}
	return string(data), nil
}

// ToCSV flattens the entries to one row per (entry, answer) pair, in
// original entry and answer order, after a date,questionText,value,type
// header. The output always ends with a newline, including the zero-entry
// case where only the header is emitted.
func ToCSV(entries []models.DiaryEntry) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')
	for _, entry := range entries {
		for _, answer := range entry.Answers {
			b.WriteString(escapeField(models.Text(entry.Date)))
			b.WriteByte(',')
			b.WriteString(escapeField(models.Text(answer.QuestionText)))
			b.WriteByte(',')
			b.WriteString(escapeField(answer.Value))
			b.WriteByte(',')
			b.WriteString(escapeField(models.Text(string(answer.Type))))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// escapeField applies RFC 4180 quoting. Numbers are emitted bare. A string
// containing a comma, double quote, or newline is wrapped in double quotes
// with inner quotes doubled; any other string passes through untouched.
func escapeField(v models.Value) string {
	if v.IsNumber() {
		return v.String()
	}
	s := v.String()
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// Filename builds the default export filename, {prefix}_{YYYY-MM-DD},
// without an extension. Collisions are the caller's concern.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s", prefix, dateutil.FormatDate(now))
}
