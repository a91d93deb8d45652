package vitals

// SubScore is a per-vital risk contribution. Invalid inputs always score 0
// and are flagged as data-quality issues by the caller.
type SubScore struct {
	Score int
	Valid bool
}

// TemperatureScore extends SubScore with the fever flag, which is only
// meaningful when the reading is valid.
type TemperatureScore struct {
	Score int
	Valid bool
	Fever bool
}

// ScoreBloodPressure maps a parsed reading to a risk sub-score. Categories
// are checked highest first; a numeric reading that matches no category
// (e.g. systolic < 120 with diastolic in no band) scores 0 but stays valid,
// since the numbers themselves parsed fine.
func ScoreBloodPressure(bp BloodPressure) SubScore {
	if !bp.Valid {
		return SubScore{}
	}

	sys, dia := bp.Systolic, bp.Diastolic
	switch {
	case sys >= 140 || dia >= 90:
		return SubScore{Score: 4, Valid: true} // Stage 2
	case (sys >= 130 && sys <= 139) || (dia >= 80 && dia <= 89):
		return SubScore{Score: 3, Valid: true} // Stage 1
	case sys >= 120 && sys <= 129 && dia < 80:
		return SubScore{Score: 2, Valid: true} // Elevated
	case sys < 120 && dia < 80:
		return SubScore{Score: 1, Valid: true} // Normal
	default:
		return SubScore{Score: 0, Valid: true}
	}
}

// ScoreTemperature maps a normalized temperature in °F to a sub-score.
// Fever is computed independently as t >= 99.6.
func ScoreTemperature(t Number) TemperatureScore {
	if !t.Valid {
		return TemperatureScore{}
	}

	result := TemperatureScore{Valid: true, Fever: t.Value >= 99.6}
	switch {
	case t.Value <= 99.5:
		result.Score = 0
	case t.Value <= 100.9:
		result.Score = 1
	default:
		result.Score = 2
	}
	return result
}

// ScoreAge maps a normalized age to a sub-score. There is deliberately no
// plausibility bound: zero and negative ages score like any age <= 65.
func ScoreAge(a Number) SubScore {
	if !a.Valid {
		return SubScore{}
	}
	if a.Value > 65 {
		return SubScore{Score: 2, Valid: true}
	}
	return SubScore{Score: 1, Valid: true}
}
