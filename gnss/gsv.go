package gnss

import (
	"fmt"
	"strconv"
	"strings"
)

// GSV decodes the GPS Satellites in View sentence.
var GSV gsvHandler

type gsvHandler struct{}

// ParsedSentence is the subset of nmea's tagged-union variants a GNSS
// handler can itself produce: either a finished result, or Incomplete
// while a GSV burst is still accumulating. The nmea package's
// dispatcher maps this onto its own ParsedSentence type; handlers stay
// decoupled from the dispatcher's type to avoid an import cycle.
type ParsedSentence struct {
	SatellitesInView *GnssSatellitesInView
	Incomplete       bool
}

// Handle accumulates one sentence of a GSV burst into store and, once
// the burst's final sentence (msgNum == numMsg) has arrived, returns
// the accumulated GnssSatellitesInView. Bursts are keyed in the
// caller-owned NmeaStore by (talker, total message count) rather than
// tracked as hidden package state.
func (gsvHandler) Handle(body string, sys NavigationSystem, store *NmeaStore) (ParsedSentence, error) {
	fields := strings.Split(body, ",")
	if len(fields) < 4 {
		return ParsedSentence{}, fmt.Errorf("malformed GSV sentence: %s", body)
	}

	talker := "??"
	if len(fields[0]) >= 3 {
		talker = fields[0][1:3]
	}

	numMsg, err1 := strconv.Atoi(fields[1])
	msgNum, err2 := strconv.Atoi(fields[2])
	numSV, err3 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil || msgNum > numMsg || numSV < 0 {
		return ParsedSentence{}, fmt.Errorf("malformed GSV sentence: %s", body)
	}

	inThisMessage := 4
	if msgNum == numMsg {
		inThisMessage = (numSV-1)%4 + 1
		if numSV == 0 {
			inThisMessage = 0
		}
	}

	key := gsvBurstKey(talker, numMsg)
	burst, ok := store.gsvBursts[key]
	if !ok {
		burst = &gsvBurst{totalMessages: numMsg}
		store.gsvBursts[key] = burst
	}

	for i := 0; i < inThisMessage; i++ {
		base := 4 + i*4
		if base+3 >= len(fields) {
			break
		}
		prn, _ := strconv.Atoi(fields[base])
		if prn == 0 {
			continue
		}
		elv, _ := strconv.Atoi(fields[base+1])
		az, _ := strconv.Atoi(fields[base+2])
		sat := GnssSatelliteView{PRN: prn, Elevation: elv, Azimuth: az}
		if fields[base+3] != "" {
			if snr, err := strconv.Atoi(fields[base+3]); err == nil {
				sat.SNR = &snr
			}
		}
		burst.satellites = append(burst.satellites, sat)
	}
	burst.seen++

	if msgNum < numMsg {
		return ParsedSentence{Incomplete: true}, nil
	}

	result := GnssSatellitesInView{
		System:       sys,
		SatelliteCnt: numSV,
		Satellites:   burst.satellites,
	}
	delete(store.gsvBursts, key)
	return ParsedSentence{SatellitesInView: &result}, nil
}
