package ais

import "github.com/haugland/nmeadecode/bitvec"

// HandleStaticVoyageData decodes AIS message type 5: the Class A
// static and voyage-related data report. A single logical message,
// always carried across two NMEA fragments (424 bits won't fit in one
// sentence's payload budget), reassembled upstream by the dispatcher
// before this handler ever sees it.
func HandleStaticVoyageData(bv bitvec.BitVector, station Station, ownVessel bool) VesselStaticData {
	version := uint8(bv.PickUnsigned(38, 2))
	imo := uint32(bv.PickUnsigned(40, 30))
	callSign := decodeText(bv, 70, 42)
	name := decodeText(bv, 112, 120)
	shipType := uint8(bv.PickUnsigned(232, 8))
	dimBow := uint16(bv.PickUnsigned(240, 9))
	dimStern := uint16(bv.PickUnsigned(249, 9))
	dimPort := uint16(bv.PickUnsigned(258, 6))
	dimStarboard := uint16(bv.PickUnsigned(264, 6))
	epfd := uint8(bv.PickUnsigned(270, 4))
	etaMonth := uint8(bv.PickUnsigned(274, 4))
	etaDay := uint8(bv.PickUnsigned(278, 5))
	etaHour := uint8(bv.PickUnsigned(283, 5))
	etaMinute := uint8(bv.PickUnsigned(288, 6))
	draught := float64(bv.PickUnsigned(294, 8)) * 0.1
	destination := decodeText(bv, 302, 120)
	dte := bv.PickUnsigned(422, 1) != 0

	return VesselStaticData{
		OwnVessel:     ownVessel,
		Station:       station,
		AisType:       ClassA,
		MMSI:          uint32(bv.PickUnsigned(8, 30)),
		AisVersion:    &version,
		ImoNumber:     &imo,
		CallSign:      &callSign,
		Name:          &name,
		ShipType:      &shipType,
		DimBow:        &dimBow,
		DimStern:      &dimStern,
		DimPort:       &dimPort,
		DimStarboard:  &dimStarboard,
		EpfdType:      &epfd,
		EtaMonth:      &etaMonth,
		EtaDay:        &etaDay,
		EtaHour:       &etaHour,
		EtaMinute:     &etaMinute,
		DraughtMeters: &draught,
		Destination:   &destination,
		Dte:           &dte,
	}
}
