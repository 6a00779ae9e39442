// Package export writes the contact ledger as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	v1 "github.com/aevon-lab/contact-ledger/internal/api/v1"
)

// WriteCSV writes a header row followed by one row per contact, in the given order.
// encoding/csv quotes any cell holding a comma, quote or newline.
func WriteCSV(w io.Writer, contacts []v1.Contact) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(v1.ContactColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range contacts {
		record, err := c.Record()
		if err != nil {
			return fmt.Errorf("failed to encode contact %s: %w", c.Email, err)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write contact %s: %w", c.Email, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes the ledger to it.
func WriteFile(path string, contacts []v1.Contact) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()

	return WriteCSV(f, contacts)
}
