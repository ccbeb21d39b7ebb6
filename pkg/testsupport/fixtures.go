package testsupport

import (
	"encoding/csv"
	"strings"
)

// ParseCSV parses inline CSV content into rows, the same way the import CLI
// reads sheet exports. Ragged rows are allowed; short rows are padded later
// by the caller.
func ParseCSV(content string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}
