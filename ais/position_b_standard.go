package ais

import "github.com/haugland/nmeadecode/bitvec"

// HandlePositionReportB decodes AIS message type 18: the standard
// Class B position report. Same field layout as types 1/2/3 through the
// fields they share, but with no rate-of-turn or navigation status (a
// Class B transponder doesn't track either) and a capability bitfield
// at [141,148) in their place.
func HandlePositionReportB(bv bitvec.BitVector, station Station, ownVessel bool) VesselDynamicData {
	rec := VesselDynamicData{
		OwnVessel:            ownVessel,
		Station:              station,
		AisType:              ClassB,
		MMSI:                 uint32(bv.PickUnsigned(8, 30)),
		NavStatus:            NotDefined,
		HighPositionAccuracy: bv.PickUnsigned(60, 1) != 0,
		TimestampSeconds:     uint8(bv.PickUnsigned(137, 6)),
		RaimFlag:             bv.PickUnsigned(148, 1) != 0,
	}

	if raw := bv.PickUnsigned(50, 10); raw != sentinelSog {
		sog := float64(raw) * 0.1
		rec.SogKnots = &sog
	}
	if raw := bv.PickSigned(61, 28); raw != sentinelLongitude {
		lon := float64(raw) / 600000.0
		rec.Longitude = &lon
	}
	if raw := bv.PickSigned(89, 27); raw != sentinelLatitude {
		lat := float64(raw) / 600000.0
		rec.Latitude = &lat
	}
	if raw := bv.PickUnsigned(116, 12); raw != sentinelCog {
		cog := float64(raw) * 0.1
		rec.Cog = &cog
	}
	if raw := bv.PickUnsigned(128, 9); raw != sentinelHeading {
		heading := float64(raw)
		rec.HeadingTrue = &heading
	}

	unit := bv.PickUnsigned(141, 1) != 0
	display := bv.PickUnsigned(142, 1) != 0
	dsc := bv.PickUnsigned(143, 1) != 0
	band := bv.PickUnsigned(144, 1) != 0
	msg22 := bv.PickUnsigned(145, 1) != 0
	mode := bv.PickUnsigned(146, 1) != 0
	cs := bv.PickUnsigned(147, 1) != 0
	rec.ClassBUnitFlag = &unit
	rec.ClassBDisplay = &display
	rec.ClassBDsc = &dsc
	rec.ClassBBandFlag = &band
	rec.ClassBMsg22Flag = &msg22
	rec.ClassBModeFlag = &mode
	rec.ClassBCsFlag = &cs

	return rec
}
