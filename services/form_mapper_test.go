package services

import (
	"testing"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/wizard"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSurveyForm() wizard.Form {
	return wizard.Form{
		"programName":  "Hope House",
		"reportDate":   "2023-05-01",
		"reporterName": "Pat Doe",
	}
}

func TestMapSurvey_RequiredFields(t *testing.T) {
	form := baseSurveyForm()
	survey, err := MapSurvey(form, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Hope House", survey.ProgramName)
	assert.Equal(t, "Pat Doe", survey.ReporterName)
	assert.Equal(t, 2023, survey.ReportDate.Year())
	assert.Equal(t, models.ReportStatusDraft, survey.Status)
}

func TestMapSurvey_MissingRequiredField(t *testing.T) {
	form := baseSurveyForm()
	delete(form, "programName")
	_, err := MapSurvey(form, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "programName")
}

func TestMapSurvey_EmptyStringBecomesNull(t *testing.T) {
	form := baseSurveyForm()
	form["facilityIssues"] = ""
	form["staffingNeeds"] = "short two night staff"

	survey, err := MapSurvey(form, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, survey.FacilityIssues)
	require.NotNil(t, survey.StaffingNeeds)
	assert.Equal(t, "short two night staff", *survey.StaffingNeeds)
}

func TestMapSurvey_ZeroIsAnAnswerNotNull(t *testing.T) {
	form := baseSurveyForm()
	form["discharges"] = "0"
	// unanswered count stays absent

	survey, err := MapSurvey(form, uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, survey.Discharges)
	assert.Equal(t, 0, *survey.Discharges)
	assert.Nil(t, survey.NewIntakes)
}

func TestMapSurvey_EmptyNumericStringBecomesNull(t *testing.T) {
	form := baseSurveyForm()
	form["relapses"] = ""

	survey, err := MapSurvey(form, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, survey.Relapses)
}

func TestMapSurvey_MeetingsFlattenedAndStructured(t *testing.T) {
	form := baseSurveyForm()
	form["meetings"] = []map[string]interface{}{
		{"date": "2023-05-01", "time": "18:00", "name": "AA"},
		{"date": "2023-05-03", "time": "19:30", "name": "NA"},
	}

	survey, err := MapSurvey(form, uuid.New(), uuid.New())
	require.NoError(t, err)
	require.Len(t, survey.Meetings, 2)
	assert.Equal(t, "AA", survey.Meetings[0].Name)
	assert.Equal(t, "2023-05-01 18:00 - AA; 2023-05-03 19:30 - NA", survey.MeetingDates)
}

func TestFlattenMeetings_Empty(t *testing.T) {
	assert.Equal(t, "", FlattenMeetings(nil))
}

func TestSanitizeForm_DropsNonJSONValues(t *testing.T) {
	form := wizard.Form{
		"ok":  "value",
		"num": 3.0,
		"fn":  func() {},
		"ch":  make(chan int),
	}
	clean := SanitizeForm(form)
	assert.Equal(t, "value", clean["ok"])
	assert.Equal(t, 3.0, clean["num"])
	_, hasFn := clean["fn"]
	_, hasCh := clean["ch"]
	assert.False(t, hasFn)
	assert.False(t, hasCh)
}

func baseIncidentForm() wizard.Form {
	return wizard.Form{
		"incidentDate":  "2023-06-15",
		"incidentTime":  "22:40",
		"location":      "Charleston",
		"incidentType":  "altercation",
		"severityLevel": "moderate",
		"description":   "Verbal altercation between two residents.",
	}
}

func TestMapIncidentReport_RequiredFields(t *testing.T) {
	report, err := MapIncidentReport(baseIncidentForm(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Charleston", report.Location)
	assert.Equal(t, "moderate", report.SeverityLevel)
	assert.Equal(t, models.ReportStatusDraft, report.Status)
}

func TestMapIncidentReport_MissingDescription(t *testing.T) {
	form := baseIncidentForm()
	delete(form, "description")
	_, err := MapIncidentReport(form, uuid.New(), uuid.New())
	require.Error(t, err)
}

func TestMapIncidentReport_PersonLists(t *testing.T) {
	form := baseIncidentForm()
	form["residents"] = []map[string]interface{}{
		{"id": "1", "name": "R. One", "role": "resident", "statement": "saw it"},
	}
	form["witnesses"] = []map[string]interface{}{
		{"id": "2", "name": "W. Two"},
	}

	report, err := MapIncidentReport(form, uuid.New(), uuid.New())
	require.NoError(t, err)
	require.Len(t, report.Residents, 1)
	assert.Equal(t, "R. One", report.Residents[0].Name)
	require.Len(t, report.Witnesses, 1)
	assert.Empty(t, report.Staff)
	assert.Empty(t, report.Visitors)
}

func TestMapIncidentReport_ConditionalDetails(t *testing.T) {
	form := baseIncidentForm()
	form["medicalResponseRequired"] = true
	form["medicalResponseDetails"] = "EMS evaluated on site"
	form["familyNotified"] = false
	form["familyNotifiedDetails"] = ""

	report, err := MapIncidentReport(form, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, report.MedicalResponseRequired)
	require.NotNil(t, report.MedicalResponseDetails)
	assert.Equal(t, "EMS evaluated on site", *report.MedicalResponseDetails)
	assert.False(t, report.FamilyNotified)
	assert.Nil(t, report.FamilyNotifiedDetails)
}
