// Package gnss implements the six GNSS sentence handlers (GGA, RMC,
// GSA, GSV, VTG, GLL), each taking a (body, navigation system[, store])
// triple and returning a fresh value rather than mutating hidden
// package state.
package gnss

import "fmt"

// NavigationSystem identifies which GNSS constellation (or combination)
// a sentence's talker ID names.
type NavigationSystem int

const (
	Other NavigationSystem = iota
	Combination
	Gps
	Glonass
	Galileo
	Beidou
	Navic
	Qzss
)

func (n NavigationSystem) String() string {
	switch n {
	case Combination:
		return "Combination"
	case Gps:
		return "Gps"
	case Glonass:
		return "Glonass"
	case Galileo:
		return "Galileo"
	case Beidou:
		return "Beidou"
	case Navic:
		return "Navic"
	case Qzss:
		return "Qzss"
	default:
		return "Other"
	}
}

// SystemByTalker maps a two-letter GNSS talker ID to its navigation
// system (GN/GP/GL/GA/BD/GI/QZ).
func SystemByTalker(talker string) NavigationSystem {
	switch talker {
	case "GN":
		return Combination
	case "GP":
		return Gps
	case "GL":
		return Glonass
	case "GA":
		return Galileo
	case "BD":
		return Beidou
	case "GI":
		return Navic
	case "QZ":
		return Qzss
	default:
		return Other
	}
}

// GnssFix is a position/time fix, populated by either GGA or RMC. Not
// every field is present on every sentence: GGA carries fix quality
// and altitude but no speed/course; RMC carries those plus date but no
// altitude.
type GnssFix struct {
	System         NavigationSystem
	Source         string // "GGA" or "RMC"
	TimeOfDay      string // "hhmmss.ss" verbatim, parsing left to the caller
	Date           string // "ddmmyy", RMC only
	Latitude       *float64
	Longitude      *float64
	AltitudeMeters *float64
	Quality        *uint8 // GGA fix quality indicator
	Valid          *bool  // RMC status: true for "A", false for "V"
	SpeedKnots     *float64
	TrackDegrees   *float64
	MagneticVar    *float64
}

// GnssDOP is GSA's dilution-of-precision and active-satellite report.
type GnssDOP struct {
	System         NavigationSystem
	FixType        uint8 // 1 = no fix, 2 = 2D, 3 = 3D
	SatellitesUsed []int
	PDOP           *float64
	HDOP           *float64
	VDOP           *float64
}

// GnssSatelliteView describes one satellite reported by a GSV burst.
type GnssSatelliteView struct {
	PRN       int
	Elevation int
	Azimuth   int
	SNR       *int
}

// GnssSatellitesInView is the accumulated result of a complete GSV
// burst (all of its numbered sentences received).
type GnssSatellitesInView struct {
	System       NavigationSystem
	SatelliteCnt int
	Satellites   []GnssSatelliteView
}

// GnssCourse is VTG's track-made-good and ground-speed report.
type GnssCourse struct {
	System         NavigationSystem
	TrueTrack      *float64
	MagneticTrack  *float64
	SpeedKnots     *float64
	SpeedKmh       *float64
}

// GnssPosition is GLL's bare latitude/longitude report.
type GnssPosition struct {
	System    NavigationSystem
	Latitude  *float64
	Longitude *float64
	TimeOfDay string
	Valid     bool
}

// gsvBurst accumulates the satellites seen across a GSV sentence
// sequence until its last member (msgNum == numMsg) arrives.
type gsvBurst struct {
	totalMessages int
	seen          int
	satellites    []GnssSatelliteView
}

// NmeaStore holds state that must survive across otherwise-independent
// decode calls: GSV's multi-sentence satellite burst. Owned by the
// caller and passed into every GSV/VTG/GLL call, the same way a
// reassembly.Store is owned by the caller across DecodeSentence calls
// — no package-level state.
type NmeaStore struct {
	gsvBursts map[string]*gsvBurst
}

// NewNmeaStore creates an empty NmeaStore.
func NewNmeaStore() *NmeaStore {
	return &NmeaStore{gsvBursts: make(map[string]*gsvBurst)}
}

func gsvBurstKey(talker string, totalMessages int) string {
	return fmt.Sprintf("%s|%d", talker, totalMessages)
}
