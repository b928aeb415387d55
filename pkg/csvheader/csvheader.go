// Package csvheader holds service that checks CSV file header against required header set.
package csvheader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// HeaderValidator is entity that has ability to validate CSV file header row.
// Only the first record of the file is read, data rows are never touched.
type HeaderValidator struct {
	// comma is field delimiter used by CSV reader.
	comma rune
}

// MissingHeaderError is returned when CSV header row lacks one or more required headers.
// It carries the full missing set, not only the first found header.
type MissingHeaderError struct {
	// Missing holds required headers absent from the file header row.
	Missing []string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing required headers: %s", strings.Join(e.Missing, ", "))
}

// NewHeaderValidator returns HeaderValidator reading comma-separated files.
func NewHeaderValidator() HeaderValidator {
	return HeaderValidator{comma: ','}
}

// NewHeaderValidatorWithComma returns HeaderValidator reading files delimited with given rune.
func NewHeaderValidatorWithComma(comma rune) HeaderValidator {
	return HeaderValidator{comma: comma}
}

// Validate opens CSV file under filePath, reads its header row and checks
// whether every required header is present. Comparison is exact, case-sensitive
// and ignores column order. Extra columns are allowed.
//
// Returned error preserves underlying fs error chain for open failures,
// so callers may inspect it with errors.Is(err, fs.ErrNotExist).
// requiredHeaders must not be empty, such call indicates misuse and panics.
func (hv HeaderValidator) Validate(filePath string, requiredHeaders []string) error {
	if len(requiredHeaders) == 0 {
		panic("csvheader: requiredHeaders should not be empty")
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = hv.comma

	// header row only
	headerRow, err := reader.Read()
	if err == io.EOF {
		headerRow = nil
	} else if err != nil {
		return fmt.Errorf("could not read CSV header row: %w", err)
	}

	missing := missingHeaders(requiredHeaders, headerRow)
	if len(missing) > 0 {
		return &MissingHeaderError{Missing: missing}
	}

	return nil
}

// missingHeaders computes set difference required − actual preserving order of required.
func missingHeaders(required, actual []string) []string {
	present := make(map[string]struct{}, len(actual))
	for _, header := range actual {
		present[header] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{}, len(required))
	for _, header := range required {
		if _, ok := seen[header]; ok {
			continue
		}
		seen[header] = struct{}{}

		if _, ok := present[header]; !ok {
			missing = append(missing, header)
		}
	}

	return missing
}
