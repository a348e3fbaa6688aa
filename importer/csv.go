// Package importer implements the service-entry and customer CSV bulk
// import pipelines: tokenizing, per-row validation, and fail-fast batch
// conversion against reference data.
package importer

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
)

// CSVServiceEntry is one accepted row from a service-entry import file.
type CSVServiceEntry struct {
	Date              time.Time
	CustomerName      string
	Location          string // canonical casing from the fixed location set
	NumberOfResidents int
	HoursWorked       float64
	Notes             string
}

const serviceEntryDateLayout = "01/02/2006" // MM/DD/YYYY

// ValidateAndParseCSV tokenizes text and validates each data row. The first
// row is always treated as a header and discarded. A row that fails any
// check contributes exactly one error string and is excluded from the
// accepted rows; error messages reference the original file line number
// (data index + 2, counting the header).
func ValidateAndParseCSV(text string) ([]CSVServiceEntry, []string) {
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

	var rows []CSVServiceEntry
	var errs []string

	for i, record := range records[1:] {
		rowNum := i + 2

		if len(record) < 5 {
			errs = append(errs, fmt.Sprintf("Row %d: Not enough columns", rowNum))
			continue
		}

		date, err := time.Parse(serviceEntryDateLayout, strings.TrimSpace(record[0]))
		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid date %q, expected MM/DD/YYYY", rowNum, strings.TrimSpace(record[0])))
			continue
		}

		customerName := strings.TrimSpace(record[1])
		if customerName == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Customer name is required", rowNum))
			continue
		}

		location, ok := models.CanonicalLocationName(record[2])
		if !ok {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid facility location %q, valid locations are: %s",
				rowNum, strings.TrimSpace(record[2]), strings.Join(models.FacilityLocationNames, ", ")))
			continue
		}

		residents, ok := utils.ParsePositiveInt(record[3])
		if !ok {
			errs = append(errs, fmt.Sprintf("Row %d: Number of residents must be a positive integer, got %q", rowNum, strings.TrimSpace(record[3])))
			continue
		}

		hours, ok := utils.ParsePositiveFloat(record[4])
		if !ok {
			errs = append(errs, fmt.Sprintf("Row %d: Hours must be a positive number, got %q", rowNum, strings.TrimSpace(record[4])))
			continue
		}

		notes := ""
		if len(record) > 5 {
			notes = strings.TrimSpace(record[5])
		}

		rows = append(rows, CSVServiceEntry{
			Date:              date,
			CustomerName:      customerName,
			Location:          location,
			NumberOfResidents: residents,
			HoursWorked:       hours,
			Notes:             notes,
		})
	}

	return rows, errs
}

// CreateServiceEntriesFromCSV resolves parsed rows against existing
// customers and locations. It is fail-fast: any unresolvable row aborts the
// whole batch with no partial result. TotalHours on the returned entries is
// the raw product; rounding happens once at persistence.
func CreateServiceEntriesFromCSV(rows []CSVServiceEntry, customers []models.Customer, locations []models.FacilityLocation) ([]models.ServiceEntry, error) {
	locationIDs := make(map[string]models.FacilityLocation, len(locations))
	for _, loc := range locations {
		locationIDs[loc.Name] = loc
	}

	entries := make([]models.ServiceEntry, 0, len(rows))
	for _, row := range rows {
		customer, ok := resolveCustomer(row.CustomerName, customers)
		if !ok {
			return nil, fmt.Errorf("customer %q not found", row.CustomerName)
		}

		location, ok := locationIDs[row.Location]
		if !ok {
			return nil, fmt.Errorf("facility location %q not found", row.Location)
		}

		entries = append(entries, models.ServiceEntry{
			Date:               row.Date,
			CustomerID:         customer.ID,
			CustomerName:       customer.Name,
			FacilityLocationID: location.ID,
			Location:           location.Name,
			NumberOfResidents:  row.NumberOfResidents,
			HoursWorked:        row.HoursWorked,
			TotalHours:         row.HoursWorked * float64(row.NumberOfResidents),
			Notes:              row.Notes,
		})
	}

	return entries, nil
}

// resolveCustomer matches by name, case-insensitive and whitespace-trimmed.
func resolveCustomer(name string, customers []models.Customer) (models.Customer, bool) {
	needle := strings.TrimSpace(strings.ToLower(name))
	for _, c := range customers {
		if strings.TrimSpace(strings.ToLower(c.Name)) == needle {
			return c, true
		}
	}
	return models.Customer{}, false
}
