package importer

import (
	"testing"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndParseCSV_SingleValidRow(t *testing.T) {
	text := "Date,Customer,FacilityLocation,NumberOfResidents,Hours,Description\n" +
		"05/01/2023,Acme,Bluefield,5,3.5,cleanup"

	rows, errs := ValidateAndParseCSV(text)
	require.Empty(t, errs)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, "Acme", row.CustomerName)
	assert.Equal(t, "Bluefield", row.Location)
	assert.Equal(t, 5, row.NumberOfResidents)
	assert.Equal(t, 3.5, row.HoursWorked)
	assert.Equal(t, "cleanup", row.Notes)
}

func TestValidateAndParseCSV_InvalidLocation(t *testing.T) {
	text := "Date,Customer,FacilityLocation,NumberOfResidents,Hours,Description\n" +
		"05/01/2023,Acme,Nowhere,5,3.5,cleanup"

	rows, errs := ValidateAndParseCSV(text)
	assert.Empty(t, rows)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Invalid facility location")
	assert.Contains(t, errs[0], "Bluefield")
}

func TestValidateAndParseCSV_NotEnoughColumns(t *testing.T) {
	text := "Date,Customer,FacilityLocation,NumberOfResidents,Hours\n" +
		"05/01/2023,Acme,Bluefield"

	rows, errs := ValidateAndParseCSV(text)
	assert.Empty(t, rows)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: Not enough columns", errs[0])
}

func TestValidateAndParseCSV_LocationMatchIsCaseInsensitive(t *testing.T) {
	text := "header\n05/01/2023,Acme,bLUEFIELD,5,3.5"

	rows, errs := ValidateAndParseCSV(text)
	require.Empty(t, errs)
	require.Len(t, rows, 1)
	// Canonical casing is stored, not the raw input
	assert.Equal(t, "Bluefield", rows[0].Location)
}

func TestValidateAndParseCSV_QuotedCommasDoNotSplit(t *testing.T) {
	text := "Date,Customer,FacilityLocation,NumberOfResidents,Hours,Description\n" +
		`05/01/2023,"Acme, Inc.",Charleston,3,2.0,"yard work, painting"`

	rows, errs := ValidateAndParseCSV(text)
	require.Empty(t, errs)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme, Inc.", rows[0].CustomerName)
	assert.Equal(t, "yard work, painting", rows[0].Notes)
}

func TestValidateAndParseCSV_RowCountsBalance(t *testing.T) {
	text := "Date,Customer,FacilityLocation,NumberOfResidents,Hours,Description\n" +
		"05/01/2023,Acme,Bluefield,5,3.5,ok\n" + // valid
		"13/45/2023,Acme,Bluefield,5,3.5,bad date\n" + // invalid date
		"05/02/2023,,Bluefield,5,3.5,no customer\n" + // missing customer
		"05/03/2023,Acme,Huntington,2,1.25,ok\n" + // valid
		"05/04/2023,Acme,Bluefield,0,3.5,zero residents\n" + // invalid residents
		"05/05/2023,Acme,Bluefield,5,-1,negative hours" // invalid hours

	rows, errs := ValidateAndParseCSV(text)
	assert.Len(t, rows, 2)
	assert.Len(t, errs, 4)
	// A bad row never appears in both outputs
	for _, row := range rows {
		assert.NotZero(t, row.NumberOfResidents)
		assert.Greater(t, row.HoursWorked, 0.0)
	}
}

func TestValidateAndParseCSV_ErrorRowNumbersIncludeHeaderOffset(t *testing.T) {
	text := "header\n" +
		"05/01/2023,Acme,Bluefield,5,3.5\n" +
		"notadate,Acme,Bluefield,5,3.5"

	_, errs := ValidateAndParseCSV(text)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Row 3:")
}

func TestValidateAndParseCSV_HeaderOnly(t *testing.T) {
	rows, errs := ValidateAndParseCSV("Date,Customer,FacilityLocation,NumberOfResidents,Hours\n")
	assert.Empty(t, rows)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "no data rows")
}

func TestCreateServiceEntriesFromCSV(t *testing.T) {
	customers := []models.Customer{
		{ID: uuid.New(), Name: "Acme"},
	}
	locations := []models.FacilityLocation{
		{ID: uuid.New(), Name: "Bluefield"},
	}

	rows, errs := ValidateAndParseCSV(
		"Date,Customer,FacilityLocation,NumberOfResidents,Hours,Description\n" +
			"05/01/2023,Acme,Bluefield,5,3.5,cleanup")
	require.Empty(t, errs)

	entries, err := CreateServiceEntriesFromCSV(rows, customers, locations)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, customers[0].ID, entry.CustomerID)
	assert.Equal(t, "Acme", entry.CustomerName)
	assert.Equal(t, locations[0].ID, entry.FacilityLocationID)
	assert.Equal(t, "Bluefield", entry.Location)
	// Pre-rounding product; rounding to 18 happens at persistence
	assert.Equal(t, 17.5, entry.TotalHours)
}

func TestCreateServiceEntriesFromCSV_CustomerMatchTrimsAndFoldsCase(t *testing.T) {
	customers := []models.Customer{{ID: uuid.New(), Name: "  Acme Widgets "}}
	locations := []models.FacilityLocation{{ID: uuid.New(), Name: "Charleston"}}

	rows := []CSVServiceEntry{{
		CustomerName:      "acme widgets",
		Location:          "Charleston",
		NumberOfResidents: 2,
		HoursWorked:       1,
	}}

	entries, err := CreateServiceEntriesFromCSV(rows, customers, locations)
	require.NoError(t, err)
	assert.Equal(t, customers[0].ID, entries[0].CustomerID)
}

func TestCreateServiceEntriesFromCSV_UnknownCustomerFailsWholeBatch(t *testing.T) {
	customers := []models.Customer{{ID: uuid.New(), Name: "Acme"}}
	locations := []models.FacilityLocation{{ID: uuid.New(), Name: "Bluefield"}}

	rows := []CSVServiceEntry{
		{CustomerName: "Acme", Location: "Bluefield", NumberOfResidents: 1, HoursWorked: 1},
		{CustomerName: "Ghost", Location: "Bluefield", NumberOfResidents: 1, HoursWorked: 1},
	}

	entries, err := CreateServiceEntriesFromCSV(rows, customers, locations)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
	assert.Nil(t, entries)
}

func TestParseCustomersCSV(t *testing.T) {
	text := "name,contact_name,contact_email,contact_phone,street,city,state,zip\r\n" +
		"\"Acme\",\"Jo Smith\",\"jo@acme.test\",\"+13045550123\",\"1 Main St\",\"Bluefield\",\"WV\",\"24701\"\r\n" +
		"\"Widget Co\",\"\",\"\",\"\",\"\",\"\",\"\",\"\""

	rows, errs := ParseCustomersCSV(text)
	require.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[0].Name)
	assert.Equal(t, "Jo Smith", rows[0].ContactName)
	assert.Equal(t, "24701", rows[0].Zip)
	assert.Equal(t, "Widget Co", rows[1].Name)
}

func TestParseCustomersCSV_MissingName(t *testing.T) {
	text := "name,contact_name\n,Jo"

	rows, errs := ParseCustomersCSV(text)
	assert.Empty(t, rows)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Row 2")
}
