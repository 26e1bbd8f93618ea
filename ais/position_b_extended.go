package ais

import "github.com/haugland/nmeadecode/bitvec"

// HandlePositionReportBExtended decodes AIS message type 19: the
// extended Class B position report. The sentinel (0xE10) is the only
// value that marks course over ground absent, so a scaled value above
// 360 degrees is returned unclamped rather than treated as invalid.
func HandlePositionReportBExtended(bv bitvec.BitVector, station Station, ownVessel bool) VesselDynamicData {
	rec := VesselDynamicData{
		OwnVessel:            ownVessel,
		Station:              station,
		AisType:              ClassB,
		MMSI:                 uint32(bv.PickUnsigned(8, 30)),
		NavStatus:            NotDefined,
		HighPositionAccuracy: bv.PickUnsigned(56, 1) != 0,
		TimestampSeconds:     uint8(bv.PickUnsigned(133, 6)),
		RaimFlag:             bv.PickUnsigned(305, 1) != 0,
	}

	if raw := bv.PickUnsigned(46, 10); raw != sentinelSog {
		sog := float64(raw) * 0.1
		rec.SogKnots = &sog
	}
	if raw := bv.PickSigned(57, 28); raw != sentinelLongitude {
		lon := float64(raw) / 600000.0
		rec.Longitude = &lon
	}
	if raw := bv.PickSigned(85, 27); raw != sentinelLatitude {
		lat := float64(raw) / 600000.0
		rec.Latitude = &lat
	}
	if raw := bv.PickUnsigned(112, 12); raw != sentinelCog {
		cog := float64(raw) * 0.1
		rec.Cog = &cog
	}
	if raw := bv.PickUnsigned(124, 9); raw != sentinelHeading {
		heading := float64(raw)
		rec.HeadingTrue = &heading
	}

	return rec
}
