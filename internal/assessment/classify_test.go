package assessment

import (
	"reflect"
	"testing"
)

func TestClassifyHighRiskFeverPatient(t *testing.T) {
	patients := []Patient{
		{PatientID: "P1", BloodPressure: "150/95", Temperature: 101.5, Age: 70.0},
	}

	result := Classify(patients)

	// 4 (BP) + 2 (temp) + 2 (age) = 8 >= 4
	if !reflect.DeepEqual(result.HighRisk, []string{"P1"}) {
		t.Errorf("Expected P1 high-risk, got %v", result.HighRisk)
	}
	if !reflect.DeepEqual(result.Fever, []string{"P1"}) {
		t.Errorf("Expected P1 fever, got %v", result.Fever)
	}
	if len(result.DataQuality) != 0 {
		t.Errorf("Expected no data-quality issues, got %v", result.DataQuality)
	}
}

func TestClassifyMalformedBloodPressure(t *testing.T) {
	patients := []Patient{
		{PatientID: "P2", BloodPressure: "bad", Temperature: 98.0, Age: 30.0},
	}

	result := Classify(patients)

	if !reflect.DeepEqual(result.DataQuality, []string{"P2"}) {
		t.Errorf("Expected P2 data-quality issue, got %v", result.DataQuality)
	}
	// 0 (BP invalid) + 0 (temp) + 1 (age) = 1 < 4
	if len(result.HighRisk) != 0 {
		t.Errorf("Expected no high-risk patients, got %v", result.HighRisk)
	}
	if len(result.Fever) != 0 {
		t.Errorf("Expected no fever patients, got %v", result.Fever)
	}
}

func TestClassifyInvalidTemperatureIsNotFever(t *testing.T) {
	patients := []Patient{
		{PatientID: "P3", BloodPressure: "150/95", Temperature: "TEMP_ERROR", Age: 70.0},
	}

	result := Classify(patients)

	if len(result.Fever) != 0 {
		t.Errorf("Invalid temperature must not report fever, got %v", result.Fever)
	}
	if !reflect.DeepEqual(result.DataQuality, []string{"P3"}) {
		t.Errorf("Expected P3 data-quality issue, got %v", result.DataQuality)
	}
	// 4 (BP) + 0 + 2 (age) = 6 >= 4
	if !reflect.DeepEqual(result.HighRisk, []string{"P3"}) {
		t.Errorf("Expected P3 high-risk, got %v", result.HighRisk)
	}
}

func TestClassifySkipsRecordsWithoutUsableID(t *testing.T) {
	patients := []Patient{
		{PatientID: nil, BloodPressure: "bad", Temperature: "bad", Age: "bad"},
		{PatientID: "", BloodPressure: "bad", Temperature: 102.0, Age: 70.0},
		{PatientID: 42.0, BloodPressure: "150/95", Temperature: 102.0, Age: 70.0},
	}

	result := Classify(patients)

	if len(result.HighRisk) != 0 || len(result.Fever) != 0 || len(result.DataQuality) != 0 {
		t.Errorf("Records without usable ids must produce no classification, got %+v", result)
	}
}

func TestClassifyDeduplicatesAndSorts(t *testing.T) {
	feverish := func(id string) Patient {
		return Patient{PatientID: id, BloodPressure: "150/95", Temperature: 101.5, Age: 70.0}
	}
	patients := []Patient{
		feverish("P10"),
		feverish("P2"),
		feverish("P10"),
		feverish("P1"),
	}

	result := Classify(patients)

	// Lexicographic, not numeric: "P10" sorts before "P2".
	expected := []string{"P1", "P10", "P2"}
	if !reflect.DeepEqual(result.HighRisk, expected) {
		t.Errorf("Expected %v, got %v", expected, result.HighRisk)
	}
	if !reflect.DeepEqual(result.Fever, expected) {
		t.Errorf("Expected %v, got %v", expected, result.Fever)
	}
}

func TestClassifyEmptyInputYieldsEmptyLists(t *testing.T) {
	result := Classify(nil)

	if result.HighRisk == nil || result.Fever == nil || result.DataQuality == nil {
		t.Fatal("Alert lists must be non-nil so they marshal as [] rather than null")
	}
	if len(result.HighRisk) != 0 || len(result.Fever) != 0 || len(result.DataQuality) != 0 {
		t.Errorf("Expected empty lists, got %+v", result)
	}
}

func TestClassifyBorderlineTotals(t *testing.T) {
	patients := []Patient{
		// 3 (BP Stage 1) + 0 (temp) + 1 (age) = 4: exactly at the threshold.
		{PatientID: "AT", BloodPressure: "135/85", Temperature: 98.0, Age: 50.0},
		// 2 (BP elevated) + 0 (temp) + 1 (age) = 3: just below.
		{PatientID: "BELOW", BloodPressure: "125/70", Temperature: 98.0, Age: 50.0},
	}

	result := Classify(patients)

	if !reflect.DeepEqual(result.HighRisk, []string{"AT"}) {
		t.Errorf("Expected only the total-4 patient to be high-risk, got %v", result.HighRisk)
	}
}
