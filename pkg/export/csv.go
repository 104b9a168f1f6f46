// Package export serializes captured responses into CSV for spreadsheet
// import.
//
// The layout is fixed: a Response ID, Respondent and Submitted At column,
// then one column per form field in descriptor order with the field label as
// header text. Cells containing a comma or double quote are wrapped in
// double quotes with inner quotes doubled; nothing else triggers quoting.
// Every record, the header included, is terminated with CRLF.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goliatone/go-formfill/internal/model"
)

const (
	// SequenceSeparator joins multi-value answers inside a single cell.
	SequenceSeparator = "; "
	// TimestampLayout is the default Submitted At format.
	TimestampLayout = time.RFC3339
)

var baseHeaders = []string{"Response ID", "Respondent", "Submitted At"}

type config struct {
	fieldIDs []string
	layout   string
}

// Option customizes CSV generation.
type Option func(*config)

// WithFields restricts field columns to the given ids, exported in the given
// order. Ids that match no form field are ignored.
func WithFields(ids ...string) Option {
	return func(cfg *config) {
		cfg.fieldIDs = dedupe(ids)
	}
}

// WithTimestampLayout overrides the Submitted At column format.
func WithTimestampLayout(layout string) Option {
	return func(cfg *config) {
		if layout != "" {
			cfg.layout = layout
		}
	}
}

// CSV renders the responses as CSV text. Pure over its inputs; responses
// with no data produce rows of empty field cells.
func CSV(form model.Form, responses []model.Response, opts ...Option) string {
	cfg := newConfig(opts...)
	fields := selectFields(form.Fields, cfg.fieldIDs)

	var sb strings.Builder
	cells := make([]string, 0, len(baseHeaders)+len(fields))

	cells = append(cells, baseHeaders...)
	for _, field := range fields {
		cells = append(cells, field.Label)
	}
	writeRecord(&sb, cells)

	for _, resp := range responses {
		cells = cells[:0]
		cells = append(cells, resp.ID, resp.Respondent, formatTimestamp(resp.SubmittedAt, cfg.layout))
		for _, field := range fields {
			cells = append(cells, resp.Value(field.ID).Format(SequenceSeparator))
		}
		writeRecord(&sb, cells)
	}

	return sb.String()
}

// WriteCSV renders the responses as CSV and writes the result to w.
func WriteCSV(w io.Writer, form model.Form, responses []model.Response, opts ...Option) error {
	if w == nil {
		return fmt.Errorf("export: writer is required")
	}
	if _, err := io.WriteString(w, CSV(form, responses, opts...)); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

func newConfig(opts ...Option) config {
	cfg := config{layout: TimestampLayout}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

func selectFields(fields []model.Field, ids []string) []model.Field {
	if len(ids) == 0 {
		return fields
	}

	byID := make(map[string]model.Field, len(fields))
	for _, field := range fields {
		byID[field.ID] = field
	}

	out := make([]model.Field, 0, len(ids))
	for _, id := range ids {
		if field, ok := byID[id]; ok {
			out = append(out, field)
		}
	}
	return out
}

func writeRecord(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escapeCell(cell))
	}
	sb.WriteString("\r\n")
}

// escapeCell applies the quoting rule: only commas and double quotes force a
// quoted cell, with inner quotes doubled.
func escapeCell(cell string) string {
	if !strings.ContainsAny(cell, `,"`) {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func formatTimestamp(ts time.Time, layout string) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(layout)
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
