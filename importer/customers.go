package importer

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVCustomer is one accepted row from a customer import file. The column
// order mirrors the customer export header.
type CSVCustomer struct {
	Name         string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Street       string
	City         string
	State        string
	Zip          string
}

// ParseCustomersCSV parses a customer import file. Only the name column is
// required; all other columns are optional and may be absent entirely.
func ParseCustomersCSV(text string) ([]CSVCustomer, []string) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, []string{fmt.Sprintf("Failed to read CSV: %v", err)}
	}

	if len(records) < 2 {
		return nil, []string{"CSV file contains no data rows"}
	}

	var rows []CSVCustomer
	var errs []string

	for i, record := range records[1:] {
		rowNum := i + 2

		name := ""
		if len(record) > 0 {
			name = strings.TrimSpace(record[0])
		}
		if name == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Customer name is required", rowNum))
			continue
		}

		row := CSVCustomer{Name: name}
		fields := []*string{
			&row.ContactName, &row.ContactEmail, &row.ContactPhone,
			&row.Street, &row.City, &row.State, &row.Zip,
		}
		for j, field := range fields {
			if len(record) > j+1 {
				*field = strings.TrimSpace(record[j+1])
			}
		}

		rows = append(rows, row)
	}

	return rows, errs
}
