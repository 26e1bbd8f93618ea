// decodefeed reads raw NMEA 0183 text from stdin, one read at a time,
// and prints every decoded AIS or GNSS record to stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/haugland/nmeadecode/framing"
	"github.com/haugland/nmeadecode/gnss"
	"github.com/haugland/nmeadecode/logger"
	"github.com/haugland/nmeadecode/nmea"
	"github.com/haugland/nmeadecode/reassembly"
)

func main() {
	log := logger.NewLogger(os.Stdout, logger.Info)

	store := reassembly.New()
	nmeaStore := gnss.NewNmeaStore()

	reader := bufio.NewReaderSize(os.Stdin, 64*1024)
	var incomplete []byte
	buf := make([]byte, 4096)

	for {
		n, err := reader.Read(buf)
		if n > 0 {
			incomplete = feed(log, store, nmeaStore, incomplete, buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				log.Error("reading stdin: %s", err.Error())
			}
			return
		}
	}
}

// feed splits chunk into sentences using incomplete as carry-over from
// the previous read, decodes each, and logs the result. It returns the
// new carry-over for the next call.
func feed(log *logger.Logger, store reassembly.ReassemblyStore, nmeaStore *gnss.NmeaStore, incomplete, chunk []byte) []byte {
	for {
		sentence, used := framing.FirstSentenceInBuffer(incomplete, chunk)
		if used == -1 {
			return sentence
		}
		decodeAndLog(log, store, nmeaStore, string(sentence))
		incomplete = nil
		chunk = chunk[used:]
	}
}

func decodeAndLog(log *logger.Logger, store reassembly.ReassemblyStore, nmeaStore *gnss.NmeaStore, sentence string) {
	result, err := nmea.DecodeSentence(sentence, store, nmeaStore)
	if err != nil {
		log.DecodeFailure(sentence, err)
		return
	}
	if result.Incomplete {
		return
	}
	switch {
	case result.VesselDynamicData != nil:
		v := result.VesselDynamicData
		log.Info("dynamic mmsi=%d station=%s", v.MMSI, v.Station.String())
	case result.VesselStaticData != nil:
		v := result.VesselStaticData
		log.Info("static mmsi=%d", v.MMSI)
	case result.GnssFix != nil:
		log.Info("fix system=%s source=%s", result.GnssFix.System.String(), result.GnssFix.Source)
	case result.GnssDOP != nil:
		log.Info("dop system=%s satellites=%d", result.GnssDOP.System.String(), len(result.GnssDOP.SatellitesUsed))
	case result.GnssSatellitesInView != nil:
		log.Info("satellites-in-view system=%s count=%d", result.GnssSatellitesInView.System.String(), result.GnssSatellitesInView.SatelliteCnt)
	case result.GnssCourse != nil:
		log.Info("course system=%s", result.GnssCourse.System.String())
	case result.GnssPosition != nil:
		log.Info("position system=%s", result.GnssPosition.System.String())
	default:
		fmt.Fprintln(os.Stderr, "decoded sentence carried no data")
	}
}
