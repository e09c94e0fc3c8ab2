package usecase

import (
	"strings"

	"github.com/udaanx/coldflow/internal/entity"
)

// ParseLeads converts raw delimited text into lead records. The first
// non-blank line is a header and is discarded. Rows whose email is
// empty or lacks '@' are dropped, never reported as an error.
//
// Embedded commas and quoted fields are not supported. The import
// files this tool sees are machine-exported two-column CSVs.
func ParseLeads(raw string) ParseResult {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return ParseResult{}
	}

	result := ParseResult{}
	for _, line := range lines[1:] {
		parts := strings.Split(line, ",")

		email := strings.TrimSpace(parts[0])
		if email == "" || !strings.Contains(email, "@") {
			result.Dropped++
			continue
		}

		name := entity.DefaultLeadName
		if len(parts) > 1 {
			if n := strings.TrimSpace(parts[1]); n != "" {
				name = n
			}
		}

		result.Leads = append(result.Leads, entity.Lead{Email: email, Name: name})
	}

	return result
}
