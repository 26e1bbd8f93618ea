package gnss

import (
	"fmt"
	"strconv"
	"strings"
)

// VTG decodes the Track Made Good and Ground Speed sentence.
var VTG vtgHandler

type vtgHandler struct{}

// Handle parses a VTG body into a GnssCourse, independently of any
// course/speed RMC may also report for the same fix. store is accepted
// for contract symmetry with GSV/GLL (a future revision could
// reconcile VTG's speed against a pending GSV-derived fix quality) but
// isn't consulted today.
func (vtgHandler) Handle(body string, sys NavigationSystem, store *NmeaStore) (GnssCourse, error) {
	_ = store
	fields := strings.Split(body, ",")
	if len(fields) < 9 {
		return GnssCourse{}, fmt.Errorf("malformed VTG sentence: %s", body)
	}

	course := GnssCourse{System: sys}
	if fields[2] == "T" && fields[1] != "" {
		if t, err := strconv.ParseFloat(fields[1], 64); err == nil {
			course.TrueTrack = &t
		}
	}
	if fields[4] == "M" && fields[3] != "" {
		if m, err := strconv.ParseFloat(fields[3], 64); err == nil {
			course.MagneticTrack = &m
		}
	}
	if fields[6] == "N" && fields[5] != "" {
		if n, err := strconv.ParseFloat(fields[5], 64); err == nil {
			course.SpeedKnots = &n
		}
	}
	if fields[8] == "K" && fields[7] != "" {
		if k, err := strconv.ParseFloat(fields[7], 64); err == nil {
			course.SpeedKmh = &k
		}
	}

	return course, nil
}
