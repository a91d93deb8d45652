package assessment

// Patient is one record as the API returns it. The source guarantees
// nothing: every field may be absent, null, wrongly typed or malformed, so
// the vital fields stay loosely typed until normalization.
type Patient struct {
	PatientID     any    `json:"patient_id"`
	Name          string `json:"name"`
	Age           any    `json:"age"`
	Temperature   any    `json:"temperature"`
	BloodPressure any    `json:"blood_pressure"`
}

// patientsPage is one page of the GET /patients response.
type patientsPage struct {
	Data       []Patient `json:"data"`
	Pagination struct {
		Page       int  `json:"page"`
		TotalPages int  `json:"totalPages"`
		HasNext    bool `json:"hasNext"`
	} `json:"pagination"`
}

// Submission is the POST /submit-assessment payload. The lists are always
// present, never null, and sorted lexicographically.
type Submission struct {
	HighRiskPatients  []string `json:"high_risk_patients"`
	FeverPatients     []string `json:"fever_patients"`
	DataQualityIssues []string `json:"data_quality_issues"`
}
