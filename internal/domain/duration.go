package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var durationPart = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*([A-Za-z]+)`)

var (
	hourUnits   = map[string]bool{"h": true, "hr": true, "hrs": true, "hour": true, "hours": true}
	minuteUnits = map[string]bool{"m": true, "min": true, "mins": true, "minute": true, "minutes": true}
)

// ParseDurationHours reads strings such as "1h 30min", "45 min", "30m 2h" or
// "1.5 hours" and returns the total in hours. Hour and minute parts may
// appear in any order. Unrecognised input yields 0.
func ParseDurationHours(s string) float64 {
	var total float64
	for _, m := range durationPart.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		unit := strings.ToLower(m[2])
		switch {
		case hourUnits[unit]:
			total += n
		case minuteUnits[unit]:
			total += n / 60
		}
	}
	return total
}
