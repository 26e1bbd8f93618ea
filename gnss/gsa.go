package gnss

import (
	"fmt"
	"strconv"
	"strings"
)

// GSA decodes the GPS DOP and Active Satellites sentence.
var GSA gsaHandler

type gsaHandler struct{}

// Handle parses a GSA body into a GnssDOP, collecting in-use satellite
// IDs into a plain slice on the returned value.
func (gsaHandler) Handle(body string, sys NavigationSystem) (GnssDOP, error) {
	fields := strings.Split(body, ",")
	if len(fields) < 18 {
		return GnssDOP{}, fmt.Errorf("malformed GSA sentence: %s", body)
	}

	dop := GnssDOP{System: sys}
	if m, err := strconv.ParseUint(fields[2], 10, 8); err == nil {
		dop.FixType = uint8(m)
	}

	for i := 3; i < 3+12; i++ {
		id, err := strconv.Atoi(fields[i])
		if err != nil || id == 0 {
			continue
		}
		dop.SatellitesUsed = append(dop.SatellitesUsed, id)
	}

	if p, err := strconv.ParseFloat(fields[15], 64); err == nil {
		dop.PDOP = &p
	}
	if h, err := strconv.ParseFloat(fields[16], 64); err == nil {
		dop.HDOP = &h
	}
	if v, err := strconv.ParseFloat(fields[17], 64); err == nil {
		dop.VDOP = &v
	}

	return dop, nil
}
