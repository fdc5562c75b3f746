package matching

import (
	"fmt"
	"strings"
)

// foldLocation lowers a location string for comparison. The Turkish
// dotted capital İ does not round-trip through strings.ToLower cleanly,
// so both capital I forms are folded to a plain i first.
var locationFolder = strings.NewReplacer("İ", "i", "I", "i", "ı", "i")

func foldLocation(s string) string {
	return strings.ToLower(locationFolder.Replace(strings.TrimSpace(s)))
}

// scoreLocation rates how workable the commute story is. Remote-friendly
// jobs short-circuit to a perfect score no matter what either side says.
func (e *Engine) scoreLocation(userLocation, jobLocation string, remoteFriendly bool) (float64, string) {
	if remoteFriendly {
		return 1.0, "Remote position"
	}

	if strings.TrimSpace(userLocation) == "" || strings.TrimSpace(jobLocation) == "" {
		return 0.5, "Location information is missing"
	}

	userLoc := foldLocation(userLocation)
	jobLoc := foldLocation(jobLocation)

	if userLoc == jobLoc {
		return 1.0, fmt.Sprintf("Same city: %s", jobLocation)
	}

	userGroup := e.cityGroupFor(userLoc)
	jobGroup := e.cityGroupFor(jobLoc)

	if userGroup != nil && jobGroup != nil {
		switch {
		case userGroup.Name == jobGroup.Name:
			return 1.0, fmt.Sprintf("Same metro area: %s", titleCase(userGroup.Name))
		case userGroup.Major && jobGroup.Major:
			return 0.6, "Different major cities - relocation may be needed"
		default:
			return 0.3, "Different regions"
		}
	}

	return 0.4, "Location mismatch"
}

// cityGroupFor finds the metro group whose city list mentions the folded
// location, or nil when the location is off the map.
func (e *Engine) cityGroupFor(folded string) *CityGroup {
	for i := range e.cfg.CityGroups {
		group := &e.cfg.CityGroups[i]
		for _, city := range group.Cities {
			if strings.Contains(folded, city) {
				return group
			}
		}
	}
	return nil
}
