package ais

// Merge combines two VesselStaticData records describing the same
// MMSI, field by field: a non-absent field on other overrides the
// receiver's; a field absent on other leaves the receiver's value
// untouched. Where both sides disagree, other wins, except for AisType,
// which always keeps the receiver's value.
//
// This is how a type 24 Part A (name only) and Part B (everything
// else) combine into one record, and it's commutative and associative
// as long as no two inputs disagree on the same field.
func (v VesselStaticData) Merge(other VesselStaticData) VesselStaticData {
	out := v
	if other.MMSI != 0 {
		out.MMSI = other.MMSI
	}
	out.OwnVessel = other.OwnVessel
	if other.Station != StationOther {
		out.Station = other.Station
	}
	// AisType is never absent on a real record (type 24's two parts are
	// both always ClassB), so there is no sentinel to merge on; out
	// already carries v's value from the copy above.
	if other.AisVersion != nil {
		out.AisVersion = other.AisVersion
	}
	if other.ImoNumber != nil {
		out.ImoNumber = other.ImoNumber
	}
	if other.CallSign != nil {
		out.CallSign = other.CallSign
	}
	if other.Name != nil {
		out.Name = other.Name
	}
	if other.ShipType != nil {
		out.ShipType = other.ShipType
	}
	if other.DimBow != nil {
		out.DimBow = other.DimBow
	}
	if other.DimStern != nil {
		out.DimStern = other.DimStern
	}
	if other.DimPort != nil {
		out.DimPort = other.DimPort
	}
	if other.DimStarboard != nil {
		out.DimStarboard = other.DimStarboard
	}
	if other.EpfdType != nil {
		out.EpfdType = other.EpfdType
	}
	if other.EtaMonth != nil {
		out.EtaMonth = other.EtaMonth
	}
	if other.EtaDay != nil {
		out.EtaDay = other.EtaDay
	}
	if other.EtaHour != nil {
		out.EtaHour = other.EtaHour
	}
	if other.EtaMinute != nil {
		out.EtaMinute = other.EtaMinute
	}
	if other.DraughtMeters != nil {
		out.DraughtMeters = other.DraughtMeters
	}
	if other.Destination != nil {
		out.Destination = other.Destination
	}
	if other.Dte != nil {
		out.Dte = other.Dte
	}
	if other.VendorID != nil {
		out.VendorID = other.VendorID
	}
	if other.ModelSerial != nil {
		out.ModelSerial = other.ModelSerial
	}
	if other.MothershipMMSI != nil {
		out.MothershipMMSI = other.MothershipMMSI
	}
	return out
}
