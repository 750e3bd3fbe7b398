// Package export writes board records in spreadsheet-friendly formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/amishk599/careerconnect/internal/model"
)

var applicationHeaders = []string{
	"ID",
	"Job ID",
	"Job Title",
	"Company",
	"Status",
	"Applied Date",
	"Applicant Email",
}

// WriteApplicationsCSV writes a header row followed by one row per application.
func WriteApplicationsCSV(w io.Writer, apps []model.Application) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(applicationHeaders); err != nil {
		return fmt.Errorf("write CSV headers: %w", err)
	}
	for _, a := range apps {
		record := []string{
			a.ID,
			a.JobID,
			a.JobTitle,
			a.CompanyName,
			string(a.Status),
			a.AppliedDate,
			a.ApplicantEmail,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

// ApplicationsCSVFile writes apps to a new file at path.
func ApplicationsCSVFile(path string, apps []model.Application) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	if err := WriteApplicationsCSV(file, apps); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
