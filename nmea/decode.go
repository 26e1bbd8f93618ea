package nmea

import (
	"strconv"
	"strings"

	"github.com/haugland/nmeadecode/ais"
	"github.com/haugland/nmeadecode/bitvec"
	"github.com/haugland/nmeadecode/checksum"
	"github.com/haugland/nmeadecode/gnss"
	"github.com/haugland/nmeadecode/reassembly"
)

// DecodeSentence validates, tokenizes and dispatches a single raw NMEA
// 0183 line. store buffers pending AIS fragment halves across calls;
// nmeaStore buffers pending GSV satellite bursts across calls. Both
// are owned by the caller and may be shared across many DecodeSentence
// calls, or partitioned per logical stream — DecodeSentence itself is
// stateless beyond what it reads from and writes to them.
func DecodeSentence(sentence string, store reassembly.ReassemblyStore, nmeaStore *gnss.NmeaStore) (ParsedSentence, error) {
	body, err := checksum.Validate(sentence)
	if err != nil {
		return ParsedSentence{}, &DecodeError{Kind: ChecksumMismatch, cause: err}
	}

	comma := strings.IndexByte(body, ',')
	if comma == -1 || len(body) < 1 {
		return ParsedSentence{}, &DecodeError{Kind: InvalidFormat, cause: errInvalidFormat(body)}
	}
	head := body[:comma]
	if len(head) < 6 {
		return ParsedSentence{}, &DecodeError{Kind: InvalidFormat, cause: errInvalidFormat(body)}
	}
	marker := head[0]
	talker := head[1:3]
	msgID := head[3:6]

	switch marker {
	case '$':
		return decodeGnss(body, msgID, gnss.SystemByTalker(talker), nmeaStore)
	case '!':
		return decodeAis(body, talker, msgID, store)
	default:
		return ParsedSentence{}, &DecodeError{Kind: InvalidFormat, cause: errInvalidFormat(body)}
	}
}

// decodeGnss dispatches to a GNSS handler. Handlers receive the full
// body (header included) and split it themselves, indexing into the
// whole comma-split sentence rather than a header-stripped remainder.
func decodeGnss(body, msgID string, sys gnss.NavigationSystem, nmeaStore *gnss.NmeaStore) (ParsedSentence, error) {
	switch msgID {
	case "GGA":
		fix, err := gnss.GGA.Handle(body, sys)
		if err != nil {
			return ParsedSentence{}, fieldParseErr("GGA", body, err)
		}
		return ParsedSentence{GnssFix: &fix}, nil
	case "RMC":
		fix, err := gnss.RMC.Handle(body, sys)
		if err != nil {
			return ParsedSentence{}, fieldParseErr("RMC", body, err)
		}
		return ParsedSentence{GnssFix: &fix}, nil
	case "GSA":
		dop, err := gnss.GSA.Handle(body, sys)
		if err != nil {
			return ParsedSentence{}, fieldParseErr("GSA", body, err)
		}
		return ParsedSentence{GnssDOP: &dop}, nil
	case "GSV":
		result, err := gnss.GSV.Handle(body, sys, nmeaStore)
		if err != nil {
			return ParsedSentence{}, fieldParseErr("GSV", body, err)
		}
		if result.Incomplete {
			return ParsedSentence{Incomplete: true}, nil
		}
		return ParsedSentence{GnssSatellitesInView: result.SatellitesInView}, nil
	case "VTG":
		course, err := gnss.VTG.Handle(body, sys, nmeaStore)
		if err != nil {
			return ParsedSentence{}, fieldParseErr("VTG", body, err)
		}
		return ParsedSentence{GnssCourse: &course}, nil
	case "GLL":
		pos, err := gnss.GLL.Handle(body, sys, nmeaStore)
		if err != nil {
			return ParsedSentence{}, fieldParseErr("GLL", body, err)
		}
		return ParsedSentence{GnssPosition: &pos}, nil
	default:
		return ParsedSentence{}, &DecodeError{Kind: UnsupportedSentence, SentenceType: "$" + msgID}
	}
}

func decodeAis(body, talker, msgID string, store reassembly.ReassemblyStore) (ParsedSentence, error) {
	if msgID != "VDM" && msgID != "VDO" {
		return ParsedSentence{}, &DecodeError{Kind: UnsupportedSentence, SentenceType: "!" + msgID}
	}
	ownVessel := msgID == "VDO"
	station := aisStationByTalker(talker)

	fields := strings.Split(body, ",")
	if len(fields) < 7 {
		return ParsedSentence{}, &DecodeError{Kind: InvalidFormat, cause: errInvalidFormat(body)}
	}

	fragCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return ParsedSentence{}, fieldParseErr("fragment_count", fields[1], err)
	}
	fragNumber, err := strconv.Atoi(fields[2])
	if err != nil {
		return ParsedSentence{}, fieldParseErr("fragment_number", fields[2], err)
	}
	channel := fields[4]
	payload := fields[5]

	var bv bitvec.BitVector
	var decodeErr error

	switch {
	case fragCount == 1:
		bv, decodeErr = bitvec.Unpack(payload)

	case fragCount == 2:
		msgIDNum, idErr := strconv.Atoi(fields[3])
		if idErr != nil {
			// Missing/unparseable message id on a multi-fragment sentence
			// is treated as incomplete rather than an error.
			return ParsedSentence{Incomplete: true}, nil
		}
		k1 := reassembly.Key{Talker: msgID, MsgID: msgIDNum, Count: fragCount, Index: 1, Channel: channel}
		k2 := reassembly.Key{Talker: msgID, MsgID: msgIDNum, Count: fragCount, Index: 2, Channel: channel}

		switch fragNumber {
		case 1:
			if stored, ok := store.Take(k2); ok {
				bv, decodeErr = bitvec.Unpack(payload + stored)
			} else {
				store.Put(k1, payload)
				return ParsedSentence{Incomplete: true}, nil
			}
		case 2:
			if stored, ok := store.Take(k1); ok {
				bv, decodeErr = bitvec.Unpack(stored + payload)
			} else {
				store.Put(k2, payload)
				return ParsedSentence{Incomplete: true}, nil
			}
		default:
			return ParsedSentence{Incomplete: true}, nil
		}

	default:
		// More than two fragments isn't supported.
		return ParsedSentence{Incomplete: true}, nil
	}

	if decodeErr != nil {
		return ParsedSentence{}, &DecodeError{Kind: PayloadDecodeFailed, cause: decodeErr}
	}

	messageType := bv.PickUnsigned(0, 6)
	switch messageType {
	case 1, 2, 3:
		rec := ais.HandlePositionReportA(bv, station, ownVessel)
		return ParsedSentence{VesselDynamicData: &rec}, nil
	case 5:
		rec := ais.HandleStaticVoyageData(bv, station, ownVessel)
		return ParsedSentence{VesselStaticData: &rec}, nil
	case 18:
		rec := ais.HandlePositionReportB(bv, station, ownVessel)
		return ParsedSentence{VesselDynamicData: &rec}, nil
	case 19:
		rec := ais.HandlePositionReportBExtended(bv, station, ownVessel)
		return ParsedSentence{VesselDynamicData: &rec}, nil
	case 24:
		rec := ais.HandleStaticDataReportB(bv, station, ownVessel)
		return ParsedSentence{VesselStaticData: &rec}, nil
	case 4, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 20, 21, 22, 23:
		return ParsedSentence{}, &DecodeError{Kind: UnsupportedMessageType, SentenceType: strconv.FormatUint(messageType, 10)}
	default:
		return ParsedSentence{}, &DecodeError{Kind: UnrecognizedMessageType, SentenceType: strconv.FormatUint(messageType, 10)}
	}
}

func fieldParseErr(field, raw string, cause error) *DecodeError {
	return &DecodeError{Kind: FieldParseFailed, Field: field, Raw: raw, cause: cause}
}

type formatError string

func (e formatError) Error() string { return string(e) }

func errInvalidFormat(body string) error {
	return formatError("no comma separator or malformed header in " + strconv.Quote(body))
}
