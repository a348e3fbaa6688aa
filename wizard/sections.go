package wizard

// SurveySections defines the director weekly report flow.
func SurveySections() []Section {
	return []Section{
		{
			Title: "Program Information",
			Tag:   "clipboard",
			Questions: []Question{
				{Key: "programName", Type: "text", Label: "Program name"},
				{Key: "reportDate", Type: "text", Label: "Report date"},
				{Key: "reporterName", Type: "text", Label: "Reported by"},
			},
		},
		{
			Title: "Resident Census",
			Tag:   "users",
			Questions: []Question{
				{Key: "phase1Count", Type: "number", Label: "Residents in Phase 1"},
				{Key: "phase2Count", Type: "number", Label: "Residents in Phase 2"},
				{Key: "phase3Count", Type: "number", Label: "Residents in Phase 3"},
				{Key: "phase4Count", Type: "number", Label: "Residents in Phase 4"},
				{Key: "totalResidents", Type: "number", Label: "Total residents"},
			},
		},
		{
			Title: "Intakes",
			Tag:   "user-plus",
			Questions: []Question{
				{Key: "newIntakes", Type: "number", Label: "New intakes this week"},
				{Key: "intakeDenials", Type: "number", Label: "Intake denials"},
				{Key: "waitlist", Type: "number", Label: "Waitlist count"},
			},
		},
		{
			Title: "Discharges",
			Tag:   "user-minus",
			Questions: []Question{
				{Key: "discharges", Type: "number", Label: "Discharges this week"},
				{
					Key: "voluntaryDischarges", Type: "number", Label: "Voluntary discharges",
					ShowIf: func(f Form) bool { return NumberField(f, "discharges") > 0 },
				},
				{
					Key: "involuntaryDischarges", Type: "number", Label: "Involuntary discharges",
					ShowIf: func(f Form) bool { return NumberField(f, "discharges") > 0 },
				},
				{
					Key: "programCompletions", Type: "number", Label: "Program completions",
					ShowIf: func(f Form) bool { return NumberField(f, "discharges") > 0 },
				},
				{
					Key: "dischargeNotes", Type: "text", Label: "Discharge notes",
					ShowIf: func(f Form) bool { return NumberField(f, "discharges") > 0 },
				},
			},
		},
		{
			Title: "Program Health",
			Tag:   "activity",
			Questions: []Question{
				{Key: "relapses", Type: "number", Label: "Relapses"},
				{Key: "overdoses", Type: "number", Label: "Overdoses"},
				{Key: "hospitalizations", Type: "number", Label: "Hospitalizations"},
				{Key: "drugScreens", Type: "number", Label: "Drug screens administered"},
				{
					Key: "positiveDrugScreens", Type: "number", Label: "Positive drug screens",
					ShowIf: func(f Form) bool { return NumberField(f, "drugScreens") > 0 },
				},
				{Key: "employedResidents", Type: "number", Label: "Residents employed"},
				{Key: "jobSearchResidents", Type: "number", Label: "Residents in job search"},
				{Key: "gedEnrollments", Type: "number", Label: "GED enrollments"},
				{Key: "classAttendance", Type: "number", Label: "Class attendance"},
				{Key: "volunteerServiceHours", Type: "number", Label: "Volunteer service hours"},
				{Key: "peerSupportSessions", Type: "number", Label: "Peer support sessions"},
			},
		},
		{
			Title: "Meetings",
			Tag:   "calendar",
			Questions: []Question{
				{Key: "meetings", Type: "group", Label: "House meetings held"},
			},
		},
		{
			Title: "Narrative",
			Tag:   "file-text",
			Questions: []Question{
				{Key: "facilityIssues", Type: "richtext", Label: "Facility issues"},
				{Key: "staffingNeeds", Type: "richtext", Label: "Staffing needs"},
				{Key: "residentConcerns", Type: "richtext", Label: "Resident concerns"},
				{Key: "successStories", Type: "richtext", Label: "Success stories"},
				{Key: "upcomingEvents", Type: "richtext", Label: "Upcoming events"},
				{Key: "additionalComments", Type: "richtext", Label: "Additional comments"},
			},
		},
	}
}

// IncidentSections defines the incident report flow.
func IncidentSections() []Section {
	return []Section{
		{
			Title: "Incident Details",
			Tag:   "alert-triangle",
			Questions: []Question{
				{Key: "incidentDate", Type: "text", Label: "Date of incident"},
				{Key: "incidentTime", Type: "text", Label: "Time of incident"},
				{Key: "location", Type: "radio", Label: "Location"},
				{Key: "incidentType", Type: "radio", Label: "Incident type"},
				{Key: "severityLevel", Type: "radio", Label: "Severity level"},
				{Key: "description", Type: "richtext", Label: "Description of incident"},
			},
		},
		{
			Title: "People Involved",
			Tag:   "users",
			Questions: []Question{
				{Key: "residents", Type: "group", Label: "Residents involved"},
				{Key: "staff", Type: "group", Label: "Staff involved"},
				{Key: "visitors", Type: "group", Label: "Visitors involved"},
				{Key: "witnesses", Type: "group", Label: "Witnesses"},
			},
		},
		{
			Title: "Medical Response",
			Tag:   "heart-pulse",
			Questions: []Question{
				{Key: "medicalResponseRequired", Type: "radio", Label: "Was a medical response required?"},
				{
					Key: "medicalResponseDetails", Type: "richtext", Label: "Medical response details",
					ShowIf: func(f Form) bool { return BoolField(f, "medicalResponseRequired") },
				},
				{Key: "emergencyServicesContacted", Type: "radio", Label: "Were emergency services contacted?"},
				{
					Key: "emergencyServicesDetails", Type: "richtext", Label: "Emergency services details",
					ShowIf: func(f Form) bool { return BoolField(f, "emergencyServicesContacted") },
				},
			},
		},
		{
			Title: "Notifications",
			Tag:   "bell",
			Questions: []Question{
				{Key: "familyNotified", Type: "radio", Label: "Was family notified?"},
				{
					Key: "familyNotifiedDetails", Type: "text", Label: "Family notification details",
					ShowIf: func(f Form) bool { return BoolField(f, "familyNotified") },
				},
				{Key: "managementNotified", Type: "radio", Label: "Was management notified?"},
				{
					Key: "managementNotifiedDetails", Type: "text", Label: "Management notification details",
					ShowIf: func(f Form) bool { return BoolField(f, "managementNotified") },
				},
			},
		},
		{
			Title: "Regulatory & Documentation",
			Tag:   "shield",
			Questions: []Question{
				{Key: "regulatoryReportRequired", Type: "radio", Label: "Is a regulatory report required?"},
				{
					Key: "regulatoryAgency", Type: "text", Label: "Regulatory agency",
					ShowIf: func(f Form) bool { return BoolField(f, "regulatoryReportRequired") },
				},
				{Key: "documentationComplete", Type: "radio", Label: "Is documentation complete?"},
				{Key: "attachmentNotes", Type: "text", Label: "Attachment notes"},
			},
		},
	}
}
