package services

import (
	"strings"
	"testing"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/importer"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomersCSV_Format(t *testing.T) {
	customers := []models.Customer{
		{Name: "Acme", ContactName: "Jo Smith", ContactEmail: "jo@acme.test",
			ContactPhone: "+13045550123", Street: "1 Main St", City: "Bluefield",
			State: "WV", Zip: "24701"},
	}

	out := CustomersCSV(customers)
	lines := strings.Split(out, "\r\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "name,contact_name,contact_email,contact_phone,street,city,state,zip", lines[0])
	assert.Equal(t, `"Acme","Jo Smith","jo@acme.test","+13045550123","1 Main St","Bluefield","WV","24701"`, lines[1])
}

func TestCustomersCSV_EscapesQuotes(t *testing.T) {
	out := CustomersCSV([]models.Customer{{Name: `The "Best" Co`}})
	assert.Contains(t, out, `"The ""Best"" Co"`)
}

func TestCustomersCSV_RoundTripPreservesNames(t *testing.T) {
	customers := []models.Customer{
		{Name: "Acme, Inc."},
		{Name: "Widget Co"},
		{Name: `Quote "Heavy" LLC`},
	}

	rows, errs := importer.ParseCustomersCSV(CustomersCSV(customers))
	require.Empty(t, errs)
	require.Len(t, rows, len(customers))
	for i, c := range customers {
		assert.Equal(t, strings.ToLower(c.Name), strings.ToLower(strings.TrimSpace(rows[i].Name)))
	}
}

func TestCustomersCSVFilename(t *testing.T) {
	now := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "customers_2023-05-01.csv", CustomersCSVFilename(now))
}

func TestServiceEntriesCSV_Format(t *testing.T) {
	entries := []models.ServiceEntry{
		{
			Date:              time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			CustomerName:      "Acme",
			Location:          "Bluefield",
			NumberOfResidents: 5,
			HoursWorked:       3.5,
			TotalHours:        18,
			Notes:             "cleanup",
		},
	}

	out := ServiceEntriesCSV(entries)
	lines := strings.Split(out, "\r\n")
	assert.Equal(t, "date,customer,location,residents,hours_worked,total_hours,notes", lines[0])
	assert.Equal(t, `"2023-05-01","Acme","Bluefield","5","3.5","18","cleanup"`, lines[1])
}

func TestServiceEntriesCSVFilename_IncludesFilters(t *testing.T) {
	now := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "service_entries_bluefield_month_2023-05-01.csv",
		ServiceEntriesCSVFilename("Bluefield", "month", now))
	assert.Equal(t, "service_entries_2023-05-01.csv",
		ServiceEntriesCSVFilename("", "", now))
}

func TestServiceEntriesXLSX(t *testing.T) {
	entries := []models.ServiceEntry{
		{
			Date:              time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			CustomerName:      "Acme",
			Location:          "Bluefield",
			NumberOfResidents: 5,
			HoursWorked:       3.5,
			TotalHours:        18,
		},
	}

	data, err := ServiceEntriesXLSX(entries)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
