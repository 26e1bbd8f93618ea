package ais

import "github.com/haugland/nmeadecode/bitvec"

// auxiliaryCraftMMSILow/High bound the MMSI range ITU-R M.1371 reserves
// for auxiliary craft (e.g. life rafts, lifeboats) associated with a
// mothership. A type 24 Part B from an MMSI in this range reports its
// mothership's MMSI in the same bits that would otherwise hold hull
// dimensions.
const (
	auxiliaryCraftMMSILow  = 980000000
	auxiliaryCraftMMSIHigh = 989999999
)

// HandleStaticDataReportB decodes one sub-message of AIS message type
// 24: the Class B static data report, split across a Part A (vessel
// name) and Part B (everything else) distinguished by the part number
// at [38,40). The caller is responsible for merging same-MMSI Part A
// and Part B records via VesselStaticData.Merge — this handler emits
// only the fields present in the part it was given.
func HandleStaticDataReportB(bv bitvec.BitVector, station Station, ownVessel bool) VesselStaticData {
	mmsi := uint32(bv.PickUnsigned(8, 30))
	part := bv.PickUnsigned(38, 2)

	rec := VesselStaticData{
		OwnVessel: ownVessel,
		Station:   station,
		AisType:   ClassB,
		MMSI:      mmsi,
	}

	if part == 0 {
		name := decodeText(bv, 40, 120)
		rec.Name = &name
		return rec
	}

	shipType := uint8(bv.PickUnsigned(40, 8))
	vendorID := decodeText(bv, 48, 42)
	callSign := decodeText(bv, 90, 42)
	rec.ShipType = &shipType
	rec.VendorID = &vendorID
	rec.CallSign = &callSign

	if mmsi >= auxiliaryCraftMMSILow && mmsi <= auxiliaryCraftMMSIHigh {
		mothership := uint32(bv.PickUnsigned(132, 30))
		rec.MothershipMMSI = &mothership
		return rec
	}

	dimBow := uint16(bv.PickUnsigned(132, 9))
	dimStern := uint16(bv.PickUnsigned(141, 9))
	dimPort := uint16(bv.PickUnsigned(150, 6))
	dimStarboard := uint16(bv.PickUnsigned(156, 6))
	rec.DimBow = &dimBow
	rec.DimStern = &dimStern
	rec.DimPort = &dimPort
	rec.DimStarboard = &dimStarboard

	return rec
}
