package ais

import (
	"testing"

	"github.com/haugland/nmeadecode/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closeTo(t *testing.T, want, got float64, tolerance float64) {
	t.Helper()
	diff := want - got
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqualf(t, diff, tolerance, "want %.4f, got %.4f", want, got)
}

// A Type 19 extended Class B position report, including an out-of-range
// course over ground (388.6 degrees) that is reported unclamped.
func TestHandlePositionReportBExtendedReportsUnclampedCOG(t *testing.T) {
	bv, err := bitvec.Unpack("C>l2oRh02mFenjw93gGjswp1kkaQkgQWc111111111jd0000002P")
	require.NoError(t, err)

	rec := HandlePositionReportBExtended(bv, MobileAisStation, false)

	assert.Equal(t, uint32(994097035), rec.MMSI)
	assert.Equal(t, NotDefined, rec.NavStatus)
	assert.Nil(t, rec.Rot)
	require.NotNil(t, rec.SogKnots)
	closeTo(t, 1.1, *rec.SogKnots, 0.01)
	assert.False(t, rec.HighPositionAccuracy)
	require.NotNil(t, rec.Latitude)
	closeTo(t, -6.0, *rec.Latitude, 0.1)
	require.NotNil(t, rec.Longitude)
	closeTo(t, -147.9, *rec.Longitude, 0.1)
	require.NotNil(t, rec.Cog)
	closeTo(t, 388.6, *rec.Cog, 0.1)
	assert.Nil(t, rec.HeadingTrue)
	assert.Equal(t, uint8(48), rec.TimestampSeconds)
	assert.False(t, rec.RaimFlag)
}

// A Type 1 Class A scheduled position report, built field-by-field from
// ITU-R M.1371's layout and armored by hand (values verified offline
// against the same offsets HandlePositionReportA reads).
func TestHandlePositionReportADecodesClassAFields(t *testing.T) {
	bv, err := bitvec.Unpack("13HOI:001VPD;88LD1iFmUNHP000")
	require.NoError(t, err)

	rec := HandlePositionReportA(bv, MobileAisStation, false)

	assert.Equal(t, uint32(227006760), rec.MMSI)
	assert.Equal(t, ClassA, rec.AisType)
	assert.Equal(t, UnderWayUsingEngine, rec.NavStatus)
	require.NotNil(t, rec.Rot)
	closeTo(t, 0.0, *rec.Rot, 0.01)
	require.NotNil(t, rec.RotDirection)
	assert.Equal(t, RotNoTurnInformation, *rec.RotDirection)
	require.NotNil(t, rec.SogKnots)
	closeTo(t, 10.2, *rec.SogKnots, 0.01)
	assert.True(t, rec.HighPositionAccuracy)
	require.NotNil(t, rec.Longitude)
	closeTo(t, 4.407, *rec.Longitude, 0.001)
	require.NotNil(t, rec.Latitude)
	closeTo(t, 49.480, *rec.Latitude, 0.001)
	require.NotNil(t, rec.Cog)
	closeTo(t, 175.0, *rec.Cog, 0.01)
	require.NotNil(t, rec.HeadingTrue)
	closeTo(t, 175.0, *rec.HeadingTrue, 0.01)
	assert.Equal(t, uint8(12), rec.TimestampSeconds)
	require.NotNil(t, rec.SpecialManoeuvre)
	assert.Equal(t, uint8(1), *rec.SpecialManoeuvre)
	assert.False(t, rec.RaimFlag)
}

// A Type 18 standard Class B position report, which carries the
// capability flags at [141,148) instead of a rate-of-turn.
func TestHandlePositionReportBDecodesClassBFields(t *testing.T) {
	bv, err := bitvec.Unpack("B52MJh000oG?VstEWFwCQ2luV000")
	require.NoError(t, err)

	rec := HandlePositionReportB(bv, MobileAisStation, false)

	assert.Equal(t, uint32(338123456), rec.MMSI)
	assert.Equal(t, ClassB, rec.AisType)
	assert.Equal(t, NotDefined, rec.NavStatus)
	assert.Nil(t, rec.Rot)
	require.NotNil(t, rec.SogKnots)
	closeTo(t, 5.5, *rec.SogKnots, 0.01)
	assert.False(t, rec.HighPositionAccuracy)
	require.NotNil(t, rec.Longitude)
	closeTo(t, -122.419, *rec.Longitude, 0.001)
	require.NotNil(t, rec.Latitude)
	closeTo(t, 37.775, *rec.Latitude, 0.001)
	require.NotNil(t, rec.Cog)
	closeTo(t, 90.0, *rec.Cog, 0.01)
	require.NotNil(t, rec.HeadingTrue)
	closeTo(t, 90.0, *rec.HeadingTrue, 0.01)
	assert.Equal(t, uint8(30), rec.TimestampSeconds)
	require.NotNil(t, rec.ClassBUnitFlag)
	assert.True(t, *rec.ClassBUnitFlag)
	require.NotNil(t, rec.ClassBDisplay)
	assert.False(t, *rec.ClassBDisplay)
	require.NotNil(t, rec.ClassBDsc)
	assert.True(t, *rec.ClassBDsc)
	require.NotNil(t, rec.ClassBBandFlag)
	assert.True(t, *rec.ClassBBandFlag)
	require.NotNil(t, rec.ClassBMsg22Flag)
	assert.False(t, *rec.ClassBMsg22Flag)
	require.NotNil(t, rec.ClassBModeFlag)
	assert.False(t, *rec.ClassBModeFlag)
	require.NotNil(t, rec.ClassBCsFlag)
	assert.True(t, *rec.ClassBCsFlag)
	assert.True(t, rec.RaimFlag)
}

// A Type 24 Part A carries only the name; a real Part B for the same
// MMSI carries ship type, vendor ID, call sign and hull dimensions.
// Each is decoded from its own armored payload, then merged.
func TestHandleStaticDataReportBDecodesPartAAndPartB(t *testing.T) {
	bvA, err := bitvec.Unpack("H5M:Ih1<D608U<=DU@000000000")
	require.NoError(t, err)
	partA := HandleStaticDataReportB(bvA, MobileAisStation, false)
	assert.Equal(t, uint32(366123456), partA.MMSI)
	require.NotNil(t, partA.Name)
	assert.Equal(t, "SEA BISCUIT", *partA.Name)
	assert.Nil(t, partA.ShipType)

	bvB, err := bitvec.Unpack("H5M:Ih4U13=5ijkG48ijkl1P433")
	require.NoError(t, err)
	partB := HandleStaticDataReportB(bvB, MobileAisStation, false)
	assert.Equal(t, uint32(366123456), partB.MMSI)
	assert.Nil(t, partB.Name)
	require.NotNil(t, partB.ShipType)
	assert.Equal(t, uint8(37), *partB.ShipType)
	require.NotNil(t, partB.VendorID)
	assert.Equal(t, "ACME123", *partB.VendorID)
	require.NotNil(t, partB.CallSign)
	assert.Equal(t, "WDH1234", *partB.CallSign)
	require.NotNil(t, partB.DimBow)
	assert.Equal(t, uint16(12), *partB.DimBow)
	require.NotNil(t, partB.DimStern)
	assert.Equal(t, uint16(4), *partB.DimStern)
	require.NotNil(t, partB.DimPort)
	assert.Equal(t, uint16(3), *partB.DimPort)
	require.NotNil(t, partB.DimStarboard)
	assert.Equal(t, uint16(3), *partB.DimStarboard)
	assert.Nil(t, partB.MothershipMMSI)

	merged := partA.Merge(partB)
	assert.Equal(t, "SEA BISCUIT", *merged.Name)
	assert.Equal(t, uint8(37), *merged.ShipType)
}

// A Type 24 Part A carries only the name; a subsequent Part B for the
// same MMSI carries everything else. Merging in either order must
// yield the same combined record.
func TestType24PartAPartBMergeOrderIndependent(t *testing.T) {
	partA := VesselStaticData{MMSI: 123456789, AisType: ClassB, Name: strPtr("TEST VESSEL")}
	shipType := uint8(37)
	vendor := "1234567"
	callSign := "ABCD"
	partB := VesselStaticData{
		MMSI:     123456789,
		AisType:  ClassB,
		ShipType: &shipType,
		VendorID: &vendor,
		CallSign: &callSign,
	}

	ab := partA.Merge(partB)
	ba := partB.Merge(partA)

	assert.Equal(t, ab, ba)
	assert.Equal(t, "TEST VESSEL", *ab.Name)
	assert.Equal(t, uint8(37), *ab.ShipType)
	assert.Equal(t, "1234567", *ab.VendorID)
}

// OwnVessel has no absent sentinel, so a merge's argument always wins,
// same as every other conflicting field.
func TestMergeOwnVesselPrefersArgument(t *testing.T) {
	v := VesselStaticData{MMSI: 1, AisType: ClassB, OwnVessel: true}
	other := VesselStaticData{MMSI: 1, AisType: ClassB, OwnVessel: false}
	assert.False(t, v.Merge(other).OwnVessel)

	v2 := VesselStaticData{MMSI: 1, AisType: ClassB, OwnVessel: false}
	other2 := VesselStaticData{MMSI: 1, AisType: ClassB, OwnVessel: true}
	assert.True(t, v2.Merge(other2).OwnVessel)
}

func TestMergeWithEmptyIsIdentity(t *testing.T) {
	shipType := uint8(70)
	x := VesselStaticData{MMSI: 1, AisType: ClassB, ShipType: &shipType}
	assert.Equal(t, x, x.Merge(VesselStaticData{}))
}

func TestDecodeTextTrimsTrailingPaddingOnly(t *testing.T) {
	// Six characters: "A@ B@@" armored manually isn't practical here;
	// exercise decodeText directly via a handcrafted bit vector instead.
	bits := make([]bool, 0, 36)
	appendSextet := func(v int) {
		for shift := 5; shift >= 0; shift-- {
			bits = append(bits, (v>>uint(shift))&1 != 0)
		}
	}
	appendSextet(1)  // 'A'
	appendSextet(0)  // '@'
	appendSextet(32) // ' '
	appendSextet(2)  // 'B'
	appendSextet(0)  // '@'
	appendSextet(0)  // '@'
	bv := bitvec.New(bits)
	assert.Equal(t, "A@ B", decodeText(bv, 0, 36))
}

func strPtr(s string) *string { return &s }
