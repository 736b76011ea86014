package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"vidyasathi_backend/internal/model"
)

var csvHeader = []string{
	"ID", "Name", "Parent Name", "Phone", "Email", "Address",
	"Area", "City", "Pincode", "Grade", "Status", "Source", "Notes", "Date",
}

// LeadsCSV encodes the given (already filtered and sorted) view as CSV.
func LeadsCSV(leads []model.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, l := range leads {
		record := []string{
			l.ID, l.Name, l.ParentName, l.Phone, l.Email, l.Address,
			l.Area, l.City, l.Pincode, l.Grade, string(l.Status), string(l.Source), l.Notes, l.Date,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("could not write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("could not flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename suggests a URL-safe download name like "student-leads-2026-08-31.csv".
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", slug.Make(prefix), now.Format("2006-01-02"))
}
