package matching

import "testing"

func TestScoreSalaryBands(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name        string
		expectation int
		salaryRange string
		want        float64
	}{
		{name: "within range", expectation: 30000, salaryRange: "25000-40000", want: 1.0},
		{name: "at range floor", expectation: 25000, salaryRange: "25000-40000", want: 1.0},
		{name: "at range ceiling", expectation: 40000, salaryRange: "25000-40000", want: 1.0},
		{name: "slightly below floor", expectation: 29000, salaryRange: "30000-45000", want: 0.85},
		{name: "well below floor", expectation: 20000, salaryRange: "30000-45000", want: 0.5},
		{name: "slightly above ceiling", expectation: 48000, salaryRange: "30000-40000", want: 0.7},
		{name: "well above ceiling", expectation: 80000, salaryRange: "30000-40000", want: 0.3},
		{name: "k suffix multiplies", expectation: 35000, salaryRange: "30k-45k", want: 1.0},
		{name: "bin suffix multiplies", expectation: 35000, salaryRange: "30-45 bin", want: 1.0},
		{name: "thousands separators", expectation: 35000, salaryRange: "30.000-45.000", want: 1.0},
		{name: "competitive keyword", expectation: 90000, salaryRange: "competitive", want: 0.7},
		{name: "negotiable keyword", expectation: 10000, salaryRange: "Negotiable salary", want: 0.7},
		{name: "no numbers no keyword", expectation: 30000, salaryRange: "görüşülür", want: 0.5},
		{name: "single number only", expectation: 30000, salaryRange: "from 30000", want: 0.5},
		{name: "empty range", expectation: 30000, salaryRange: "", want: 0.6},
		{name: "unspecified expectation", expectation: 0, salaryRange: "25000-40000", want: 0.6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, explanation := engine.scoreSalary(tc.expectation, tc.salaryRange)
			if score != tc.want {
				t.Fatalf("expected %v, got %v (%q)", tc.want, score, explanation)
			}
			if explanation == "" {
				t.Fatalf("expected explanation to be populated")
			}
		})
	}
}
