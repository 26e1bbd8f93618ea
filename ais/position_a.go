package ais

import "github.com/haugland/nmeadecode/bitvec"

// Sentinel constants for the position report fields shared by Class A
// (types 1/2/3) and Class B (types 18/19) reports. Values match
// ITU-R M.1371's reserved "not available" codes.
const (
	sentinelRot       = -128
	sentinelSog       = 1023
	sentinelLongitude = 0x6791AC0
	sentinelLatitude  = 0x3412140
	sentinelCog       = 0xE10
	sentinelHeading   = 511
)

// HandlePositionReportA decodes AIS message types 1, 2, 3: the Class A
// scheduled position report.
func HandlePositionReportA(bv bitvec.BitVector, station Station, ownVessel bool) VesselDynamicData {
	rec := VesselDynamicData{
		OwnVessel:            ownVessel,
		Station:              station,
		AisType:              ClassA,
		MMSI:                 uint32(bv.PickUnsigned(8, 30)),
		NavStatus:            NavigationStatus(bv.PickUnsigned(38, 4)),
		HighPositionAccuracy: bv.PickUnsigned(60, 1) != 0,
		TimestampSeconds:     uint8(bv.PickUnsigned(137, 6)),
		RaimFlag:             bv.PickUnsigned(148, 1) != 0,
	}

	if raw := bv.PickSigned(42, 8); raw != sentinelRot {
		rot := rotMagnitude(raw)
		rec.Rot = &rot
		dir := rotDirectionOf(raw)
		rec.RotDirection = &dir
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
	manoeuvre := uint8(bv.PickUnsigned(143, 2))
	rec.SpecialManoeuvre = &manoeuvre

	return rec
}

// rotMagnitude reverses AIS's ROT encoding: the transmitted value is
// sign(rot) * sqrt(|rot degrees/min|) * 4.733, rounded to the nearest
// integer. Recovering degrees/minute squares the magnitude back out.
func rotMagnitude(raw int64) float64 {
	magnitude := raw
	if magnitude < 0 {
		magnitude = -magnitude
	}
	v := float64(magnitude) / 4.733
	v = v * v
	if raw < 0 {
		return -v
	}
	return v
}

func rotDirectionOf(raw int64) RotDirection {
	switch {
	case raw == 0:
		return RotNoTurnInformation
	case raw > 0:
		return RotRight
	default:
		return RotLeft
	}
}
