package domain

import "strings"

// QuizAnswers is the last questionnaire a user submitted. It is always
// replaced as a whole. The JSON form is what the SQL drivers persist.
type QuizAnswers struct {
	Transportation   string `json:"transportation"`
	MeatConsumption  string `json:"meatConsumption"`
	Recycling        string `json:"recycling"`
	EnergyEfficiency string `json:"energyEfficiency"`
	ElectricityUsage string `json:"electricityUsage"`
}

// Complete reports whether every answer has non-blank text.
func (q QuizAnswers) Complete() bool {
	for _, a := range []string{q.Transportation, q.MeatConsumption, q.Recycling, q.EnergyEfficiency, q.ElectricityUsage} {
		if strings.TrimSpace(a) == "" {
			return false
		}
	}
	return true
}
