package assessment

import (
	"sort"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/riskassess/internal/metrics"
	"stealthcompany.com/riskassess/internal/vitals"
)

// highRiskThreshold is the total risk at which a patient lands on the
// high-risk list.
const highRiskThreshold = 4

// Classification holds the three alert lists, each deduplicated and sorted
// lexicographically ascending.
type Classification struct {
	HighRisk    []string
	Fever       []string
	DataQuality []string
}

// Classify scores every record and builds the three alert lists. Records
// without a non-empty string patient_id are skipped entirely; they produce
// no classification and no data-quality entry.
func Classify(patients []Patient) Classification {
	highRisk := make(map[string]struct{})
	fever := make(map[string]struct{})
	dataQuality := make(map[string]struct{})

	for _, p := range patients {
		id, ok := p.PatientID.(string)
		if !ok || id == "" {
			log.Warn().
				Interface("patient_id", p.PatientID).
				Msg("Skipping record without usable patient id")
			metrics.RecordPatientProcessed("skipped")
			continue
		}

		bp := vitals.ScoreBloodPressure(vitals.ParseBloodPressure(p.BloodPressure))
		temp := vitals.ScoreTemperature(vitals.ParseNumber(p.Temperature))
		age := vitals.ScoreAge(vitals.ParseNumber(p.Age))

		// Validity alone decides data-quality membership; invalid
		// sub-scores already contribute 0 to the total.
		if !bp.Valid || !temp.Valid || !age.Valid {
			dataQuality[id] = struct{}{}
		}
		if bp.Score+temp.Score+age.Score >= highRiskThreshold {
			highRisk[id] = struct{}{}
		}
		if temp.Valid && temp.Fever {
			fever[id] = struct{}{}
		}
		metrics.RecordPatientProcessed("classified")
	}

	return Classification{
		HighRisk:    sortedIDs(highRisk),
		Fever:       sortedIDs(fever),
		DataQuality: sortedIDs(dataQuality),
	}
}

// sortedIDs finalizes a set into a sorted, never-nil slice so the lists
// marshal as [] rather than null.
func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
