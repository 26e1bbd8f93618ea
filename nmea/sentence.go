// Package nmea dispatches validated NMEA 0183 sentences to the AIS and
// GNSS decoders and reassembles two-fragment AIS transmissions.
package nmea

import (
	"github.com/haugland/nmeadecode/ais"
	"github.com/haugland/nmeadecode/gnss"
)

// ParsedSentence is the tagged-union result of DecodeSentence. Exactly
// one field is non-nil/true on success: VesselDynamicData,
// VesselStaticData, GnssFix, GnssSatellitesInView, etc., or
// Incomplete.
type ParsedSentence struct {
	VesselDynamicData    *ais.VesselDynamicData
	VesselStaticData     *ais.VesselStaticData
	GnssFix              *gnss.GnssFix
	GnssDOP              *gnss.GnssDOP
	GnssSatellitesInView *gnss.GnssSatellitesInView
	GnssCourse           *gnss.GnssCourse
	GnssPosition         *gnss.GnssPosition
	Incomplete           bool
}

// aisStationByTalker maps a two-letter AIS talker ID to its station
// classification.
func aisStationByTalker(talker string) ais.Station {
	switch talker {
	case "AB":
		return ais.BaseAisStation
	case "AD":
		return ais.DependentAisBaseStation
	case "AI":
		return ais.MobileAisStation
	case "AN":
		return ais.AidToNavigationAisStation
	case "AR":
		return ais.AisReceivingStation
	case "AS":
		return ais.LimitedBaseStation
	case "AT":
		return ais.AisTransmittingStation
	case "AX":
		return ais.RepeaterAisStation
	default:
		return ais.StationOther
	}
}
