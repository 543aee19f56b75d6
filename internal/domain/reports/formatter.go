// Package reports projects stored records into tabular text and into the
// PDF export document. Projections never mutate the store.
package reports

import (
	"iter"
	"strings"
	"time"

	"masar/internal/domain/records"
)

// BasicFields is the column subset of the short report.
var BasicFields = []string{"name", "grade", "job_title", "department", "phone"}

const columnSeparator = " | "

// FormatTable yields the report lazily: a header line of localized labels, a
// separator line, then one line per record. Empty values render as "".
func FormatTable(employees []records.Employee, fields []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		headers := make([]string, len(fields))
		for i, field := range fields {
			headers[i] = records.Labels[field]
		}
		if !yield(strings.Join(headers, columnSeparator)) {
			return
		}
		if !yield(strings.Repeat("-", 120)) {
			return
		}

		for _, emp := range employees {
			cells := make([]string, len(fields))
			for i, field := range fields {
				cells[i] = records.FieldValue(emp, field)
			}
			if !yield(strings.Join(cells, columnSeparator)) {
				return
			}
		}
	}
}

// DefaultExportFilename builds the suggested name for a PDF export,
// timestamped so repeated exports never collide.
func DefaultExportFilename(now time.Time) string {
	return "Employees " + now.Format("2006-01-02 15-04-05") + ".pdf"
}
