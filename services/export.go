// services/export.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/xuri/excelize/v2"
)

var customersCSVHeader = []string{
	"name", "contact_name", "contact_email", "contact_phone",
	"street", "city", "state", "zip",
}

var serviceEntriesCSVHeader = []string{
	"date", "customer", "location", "residents",
	"hours_worked", "total_hours", "notes",
}

// csvQuote double-quotes a value, escaping embedded quotes. encoding/csv
// only quotes when it must; the export format always quotes.
func csvQuote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func writeCSVRow(b *strings.Builder, fields []string) {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = csvQuote(f)
	}
	b.WriteString(strings.Join(quoted, ","))
	b.WriteString("\r\n")
}

// CustomersCSV renders the customer export: plain header, quoted values,
// CRLF line endings.
func CustomersCSV(customers []models.Customer) string {
	var b strings.Builder
	b.WriteString(strings.Join(customersCSVHeader, ","))
	b.WriteString("\r\n")
	for _, c := range customers {
		writeCSVRow(&b, []string{
			c.Name, c.ContactName, c.ContactEmail, c.ContactPhone,
			c.Street, c.City, c.State, c.Zip,
		})
	}
	return b.String()
}

func CustomersCSVFilename(now time.Time) string {
	return "customers_" + now.Format("2006-01-02") + ".csv"
}

// ServiceEntriesCSV renders the service-entry report export.
func ServiceEntriesCSV(entries []models.ServiceEntry) string {
	var b strings.Builder
	b.WriteString(strings.Join(serviceEntriesCSVHeader, ","))
	b.WriteString("\r\n")
	for _, e := range entries {
		writeCSVRow(&b, []string{
			e.Date.Format("2006-01-02"),
			e.CustomerName,
			e.Location,
			strconv.Itoa(e.NumberOfResidents),
			strconv.FormatFloat(e.HoursWorked, 'f', -1, 64),
			strconv.FormatFloat(e.TotalHours, 'f', -1, 64),
			e.Notes,
		})
	}
	return b.String()
}

// ServiceEntriesCSVFilename incorporates the active filter values.
func ServiceEntriesCSVFilename(locationFilter, rangeFilter string, now time.Time) string {
	parts := []string{"service_entries"}
	if locationFilter != "" {
		parts = append(parts, filenameSlug(locationFilter))
	}
	if rangeFilter != "" {
		parts = append(parts, filenameSlug(rangeFilter))
	}
	parts = append(parts, now.Format("2006-01-02"))
	return strings.Join(parts, "_") + ".csv"
}

func filenameSlug(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}

// ServiceEntriesXLSX renders the same report as a spreadsheet.
func ServiceEntriesXLSX(entries []models.ServiceEntry) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "Service Entries"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range serviceEntriesCSVHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, e := range entries {
		row := i + 2
		values := []interface{}{
			e.Date.Format("2006-01-02"),
			e.CustomerName,
			e.Location,
			e.NumberOfResidents,
			e.HoursWorked,
			e.TotalHours,
			e.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
