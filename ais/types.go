// Package ais decodes six-bit-packed AIS binary payloads (message types
// 1/2/3, 5, 18, 19, 24) into typed vessel records.
package ais

// Station classifies the AIS talker that produced a sentence, matching
// the "!AB"/"!AD"/... talker prefixes in the NMEA header.
type Station int

const (
	StationOther Station = iota
	BaseAisStation
	DependentAisBaseStation
	MobileAisStation
	AidToNavigationAisStation
	AisReceivingStation
	LimitedBaseStation
	AisTransmittingStation
	RepeaterAisStation
)

func (s Station) String() string {
	switch s {
	case BaseAisStation:
		return "BaseAisStation"
	case DependentAisBaseStation:
		return "DependentAisBaseStation"
	case MobileAisStation:
		return "MobileAisStation"
	case AidToNavigationAisStation:
		return "AidToNavigationAisStation"
	case AisReceivingStation:
		return "AisReceivingStation"
	case LimitedBaseStation:
		return "LimitedBaseStation"
	case AisTransmittingStation:
		return "AisTransmittingStation"
	case RepeaterAisStation:
		return "RepeaterAisStation"
	default:
		return "Other"
	}
}

// Class distinguishes a full Class A transponder from a lower-power
// Class B unit.
type Class int

const (
	ClassA Class = iota
	ClassB
)

func (c Class) String() string {
	if c == ClassB {
		return "ClassB"
	}
	return "ClassA"
}

// NavigationStatus is the 4-bit navigational status field of a Class A
// position report (ITU-R M.1371 Table 45). Code 15 doubles as both
// "not defined" and the formally reserved code; Class B reports always
// report NotDefined since Class B units don't carry this field.
type NavigationStatus int

const (
	UnderWayUsingEngine NavigationStatus = iota
	AtAnchor
	NotUnderCommand
	RestrictedManoeuverability
	ConstrainedByHerDraught
	Moored
	Aground
	EngagedInFishing
	UnderWaySailing
	ReservedForHSC
	ReservedForWIG
	ReservedForFutureUse11
	ReservedForFutureUse12
	ReservedForFutureUse13
	AisSartIsActive
	NotDefined
)

func (s NavigationStatus) String() string {
	switch s {
	case UnderWayUsingEngine:
		return "UnderWayUsingEngine"
	case AtAnchor:
		return "AtAnchor"
	case NotUnderCommand:
		return "NotUnderCommand"
	case RestrictedManoeuverability:
		return "RestrictedManoeuverability"
	case ConstrainedByHerDraught:
		return "ConstrainedByHerDraught"
	case Moored:
		return "Moored"
	case Aground:
		return "Aground"
	case EngagedInFishing:
		return "EngagedInFishing"
	case UnderWaySailing:
		return "UnderWaySailing"
	case ReservedForHSC:
		return "ReservedForHSC"
	case ReservedForWIG:
		return "ReservedForWIG"
	case AisSartIsActive:
		return "AisSartIsActive"
	case NotDefined:
		return "NotDefined"
	default:
		return "ReservedForFutureUse"
	}
}

// RotDirection is the sign of a decoded rate-of-turn, kept separately
// from its magnitude. When the raw field holds the "not available"
// sentinel, both the magnitude and the direction are absent.
type RotDirection int

const (
	RotNoTurnInformation RotDirection = iota
	RotRight
	RotLeft
)

// PositioningSystemMeta carries the optional EPFD-quality metadata some
// position reports attach to a fix. Nothing in the 1/2/3/18/19 handlers
// currently populates it (ITU-R M.1371 keeps that detail in message
// type 4's base station report, which is out of scope), but the field
// is kept so VesselDynamicData has a home for it once that's needed.
type PositioningSystemMeta struct {
	Raw uint64
}

// VesselDynamicData is a dynamic position/motion report: AIS message
// types 1, 2, 3 (Class A) and 18, 19 (Class B).
type VesselDynamicData struct {
	OwnVessel             bool
	Station               Station
	AisType                Class
	MMSI                   uint32
	NavStatus              NavigationStatus
	Rot                    *float64
	RotDirection           *RotDirection
	SogKnots               *float64
	HighPositionAccuracy   bool
	Longitude              *float64
	Latitude               *float64
	Cog                    *float64
	HeadingTrue            *float64
	TimestampSeconds       uint8
	SpecialManoeuvre       *uint8
	RaimFlag               bool
	PositioningSystemMeta  *PositioningSystemMeta
	ClassBUnitFlag         *bool
	ClassBDisplay          *bool
	ClassBDsc              *bool
	ClassBBandFlag         *bool
	ClassBMsg22Flag        *bool
	ClassBModeFlag         *bool
	ClassBCsFlag           *bool
}

// VesselStaticData is static/voyage data: AIS message types 5 (Class A)
// and 24 (Class B, split across two sub-messages — see Merge).
type VesselStaticData struct {
	OwnVessel      bool
	Station        Station
	AisType        Class
	MMSI           uint32
	AisVersion     *uint8
	ImoNumber      *uint32
	CallSign       *string
	Name           *string
	ShipType       *uint8
	DimBow         *uint16
	DimStern       *uint16
	DimPort        *uint16
	DimStarboard   *uint16
	EpfdType       *uint8
	EtaMonth       *uint8
	EtaDay         *uint8
	EtaHour        *uint8
	EtaMinute      *uint8
	DraughtMeters  *float64
	Destination    *string
	Dte            *bool
	VendorID       *string
	ModelSerial    *uint32
	MothershipMMSI *uint32
}
