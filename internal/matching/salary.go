package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var salaryNumbers = regexp.MustCompile(`\d+`)

// negotiableMarkers flag salary text that names no numbers on purpose.
var negotiableMarkers = []string{"competitive", "negotiable", "pazarlık", "rekabetçi"}

// scoreSalary rates the candidate's expectation against a free-text
// salary range. The text arrives in loose formats ("30000-50000",
// "30k-45k", "competitive") and frequently fails to parse; every parse
// failure is a neutral score, never an error.
func (e *Engine) scoreSalary(expectation int, salaryRange string) (float64, string) {
	salaryRange = strings.TrimSpace(salaryRange)
	if salaryRange == "" || expectation <= 0 {
		return 0.6, "Salary information not specified"
	}

	lower := strings.ToLower(salaryRange)
	for _, marker := range negotiableMarkers {
		if strings.Contains(lower, marker) {
			return 0.7, "Competitive salary - open to negotiation"
		}
	}

	// Thousands separators would split one number into several.
	stripped := strings.NewReplacer(".", "", ",", "").Replace(salaryRange)
	numbers := salaryNumbers.FindAllString(stripped, -1)
	if len(numbers) < 2 {
		return 0.5, "Salary range unclear"
	}

	minSalary, errMin := strconv.Atoi(numbers[0])
	maxSalary, errMax := strconv.Atoi(numbers[1])
	if errMin != nil || errMax != nil || minSalary <= 0 || maxSalary <= 0 {
		return 0.5, "Could not parse salary range"
	}

	if strings.Contains(lower, "k") || strings.Contains(lower, "bin") {
		minSalary *= 1000
		maxSalary *= 1000
	}

	switch {
	case expectation >= minSalary && expectation <= maxSalary:
		return 1.0, fmt.Sprintf("Expectation within range (%d-%d)", minSalary, maxSalary)
	case expectation < minSalary:
		gap := float64(minSalary-expectation) / float64(minSalary)
		if gap < 0.15 {
			return 0.85, "Expectation slightly below the range - growth opportunity"
		}
		return 0.5, "Expectation below the range"
	default:
		overage := float64(expectation-maxSalary) / float64(maxSalary)
		if overage < 0.25 {
			return 0.7, "Expectation slightly above the range - negotiable"
		}
		return 0.3, "Expectation well above the range"
	}
}
