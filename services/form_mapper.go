// services/form_mapper.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/wizard"
	"github.com/google/uuid"
)

const formDateLayout = "2006-01-02"

// SanitizeForm pushes every field through a JSON round trip. Values that
// cannot be represented as JSON are dropped silently; this is the sanitizing
// boundary between raw wizard state and anything persisted.
func SanitizeForm(form wizard.Form) wizard.Form {
	out := make(wizard.Form, len(form))
	for key, value := range form {
		b, err := json.Marshal(value)
		if err != nil {
			continue
		}
		var clean interface{}
		if err := json.Unmarshal(b, &clean); err != nil {
			continue
		}
		out[key] = clean
	}
	return out
}

// optionalText maps an empty or absent string field to nil, never "".
func optionalText(form wizard.Form, key string) *string {
	s, ok := form[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// optionalInt maps an absent or empty field to nil. A parsed zero stays 0;
// "unanswered" and "answered zero" are distinct.
func optionalInt(form wizard.Form, key string) *int {
	switch v := form[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		return &v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

func requiredText(form wizard.Form, key string) (string, error) {
	s := wizard.TextField(form, key)
	if s == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return s, nil
}

// FlattenMeetings builds the legacy single-string meeting field:
// "{date} {time} - {name}" entries joined by "; ".
func FlattenMeetings(meetings []models.MeetingEntry) string {
	parts := make([]string, 0, len(meetings))
	for _, m := range meetings {
		parts = append(parts, fmt.Sprintf("%s %s - %s", m.Date, m.Time, m.Name))
	}
	return strings.Join(parts, "; ")
}

func decodeMeetings(form wizard.Form, key string) models.MeetingList {
	meetings := models.MeetingList{}
	raw, ok := form[key]
	if !ok {
		return meetings
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return meetings
	}
	if err := json.Unmarshal(b, &meetings); err != nil {
		return models.MeetingList{}
	}
	return meetings
}

func decodePersons(form wizard.Form, key string) models.PersonList {
	persons := models.PersonList{}
	raw, ok := form[key]
	if !ok {
		return persons
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return persons
	}
	if err := json.Unmarshal(b, &persons); err != nil {
		return models.PersonList{}
	}
	return persons
}

// MapSurvey converts wizard form state into a RecoverySurvey record.
func MapSurvey(form wizard.Form, orgID, reporterUserID uuid.UUID) (models.RecoverySurvey, error) {
	form = SanitizeForm(form)

	var survey models.RecoverySurvey

	programName, err := requiredText(form, "programName")
	if err != nil {
		return survey, err
	}
	reporterName, err := requiredText(form, "reporterName")
	if err != nil {
		return survey, err
	}
	dateStr, err := requiredText(form, "reportDate")
	if err != nil {
		return survey, err
	}
	reportDate, err := time.Parse(formDateLayout, dateStr)
	if err != nil {
		return survey, errors.New("reportDate must be YYYY-MM-DD")
	}

	meetings := decodeMeetings(form, "meetings")

	survey = models.RecoverySurvey{
		OrganizationID: orgID,
		ReporterUserID: reporterUserID,
		ProgramName:    programName,
		ReportDate:     reportDate,
		ReporterName:   reporterName,

		Phase1Count:    optionalInt(form, "phase1Count"),
		Phase2Count:    optionalInt(form, "phase2Count"),
		Phase3Count:    optionalInt(form, "phase3Count"),
		Phase4Count:    optionalInt(form, "phase4Count"),
		TotalResidents: optionalInt(form, "totalResidents"),

		NewIntakes:    optionalInt(form, "newIntakes"),
		IntakeDenials: optionalInt(form, "intakeDenials"),
		Waitlist:      optionalInt(form, "waitlist"),

		Discharges:            optionalInt(form, "discharges"),
		VoluntaryDischarges:   optionalInt(form, "voluntaryDischarges"),
		InvoluntaryDischarges: optionalInt(form, "involuntaryDischarges"),
		ProgramCompletions:    optionalInt(form, "programCompletions"),
		DischargeNotes:        optionalText(form, "dischargeNotes"),

		Relapses:              optionalInt(form, "relapses"),
		Overdoses:             optionalInt(form, "overdoses"),
		Hospitalizations:      optionalInt(form, "hospitalizations"),
		DrugScreens:           optionalInt(form, "drugScreens"),
		PositiveDrugScreens:   optionalInt(form, "positiveDrugScreens"),
		EmployedResidents:     optionalInt(form, "employedResidents"),
		JobSearchResidents:    optionalInt(form, "jobSearchResidents"),
		GEDEnrollments:        optionalInt(form, "gedEnrollments"),
		ClassAttendance:       optionalInt(form, "classAttendance"),
		VolunteerServiceHours: optionalInt(form, "volunteerServiceHours"),
		PeerSupportSessions:   optionalInt(form, "peerSupportSessions"),

		FacilityIssues:     optionalText(form, "facilityIssues"),
		StaffingNeeds:      optionalText(form, "staffingNeeds"),
		ResidentConcerns:   optionalText(form, "residentConcerns"),
		SuccessStories:     optionalText(form, "successStories"),
		UpcomingEvents:     optionalText(form, "upcomingEvents"),
		AdditionalComments: optionalText(form, "additionalComments"),

		Meetings:     meetings,
		MeetingDates: FlattenMeetings(meetings),

		Status: models.ReportStatusDraft,
	}

	return survey, nil
}

// MapIncidentReport converts wizard form state into an IncidentReport
// record. The sanitized form is retained as FormState while the report is a
// draft.
func MapIncidentReport(form wizard.Form, orgID, reporterUserID uuid.UUID) (models.IncidentReport, error) {
	form = SanitizeForm(form)

	var report models.IncidentReport

	dateStr, err := requiredText(form, "incidentDate")
	if err != nil {
		return report, err
	}
	incidentDate, err := time.Parse(formDateLayout, dateStr)
	if err != nil {
		return report, errors.New("incidentDate must be YYYY-MM-DD")
	}

	incidentTime, err := requiredText(form, "incidentTime")
	if err != nil {
		return report, err
	}
	location, err := requiredText(form, "location")
	if err != nil {
		return report, err
	}
	incidentType, err := requiredText(form, "incidentType")
	if err != nil {
		return report, err
	}
	severityLevel, err := requiredText(form, "severityLevel")
	if err != nil {
		return report, err
	}
	description, err := requiredText(form, "description")
	if err != nil {
		return report, err
	}

	report = models.IncidentReport{
		OrganizationID: orgID,
		ReporterUserID: reporterUserID,
		ReporterName:   wizard.TextField(form, "reporterName"),

		IncidentDate:  incidentDate,
		IncidentTime:  incidentTime,
		Location:      location,
		IncidentType:  incidentType,
		SeverityLevel: severityLevel,
		Description:   description,

		Residents: decodePersons(form, "residents"),
		Staff:     decodePersons(form, "staff"),
		Visitors:  decodePersons(form, "visitors"),
		Witnesses: decodePersons(form, "witnesses"),

		MedicalResponseRequired:    wizard.BoolField(form, "medicalResponseRequired"),
		MedicalResponseDetails:     optionalText(form, "medicalResponseDetails"),
		EmergencyServicesContacted: wizard.BoolField(form, "emergencyServicesContacted"),
		EmergencyServicesDetails:   optionalText(form, "emergencyServicesDetails"),

		FamilyNotified:            wizard.BoolField(form, "familyNotified"),
		FamilyNotifiedDetails:     optionalText(form, "familyNotifiedDetails"),
		ManagementNotified:        wizard.BoolField(form, "managementNotified"),
		ManagementNotifiedDetails: optionalText(form, "managementNotifiedDetails"),

		RegulatoryReportRequired: wizard.BoolField(form, "regulatoryReportRequired"),
		RegulatoryAgency:         optionalText(form, "regulatoryAgency"),
		DocumentationComplete:    wizard.BoolField(form, "documentationComplete"),
		AttachmentNotes:          optionalText(form, "attachmentNotes"),

		Status:    models.ReportStatusDraft,
		FormState: models.JSONB(form),
	}

	return report, nil
}
