// Package framing splits a byte stream into individual NMEA 0183
// sentences for line-oriented readers like cmd/decodefeed.
//
// Looks for either sentence marker ('!' for AIS, '$' for GNSS) since
// this decoder handles both families.
package framing

import "bytes"

func isMarker(b byte) bool { return b == '!' || b == '$' }

func indexMarker(b []byte) int {
	return bytes.IndexFunc(b, func(r rune) bool { return isMarker(byte(r)) })
}

// FirstSentenceInBuffer extracts the text of what looks like the first
// NMEA 0183 sentence in bufferSlice. next is the index of the first
// byte not consumed (len(bufferSlice) if everything was used, -1 if
// the buffer holds no complete sentence). A complete sentence is
// returned ending with "\r\n"; bytes before the first marker are
// treated as noise and skipped, and next counts them too. When next is
// -1 the returned text is the unterminated remainder, as received.
// incomplete is a carry-over from a previous call whose buffer ended
// mid-sentence; pass its returned copiedSentence back in on the next
// call when next is -1.
func FirstSentenceInBuffer(incomplete, bufferSlice []byte) (copiedSentence []byte, next int) {
	next = -1
	skipped := 0
	if len(incomplete) == 0 {
		start := indexMarker(bufferSlice)
		if start == -1 {
			return []byte{}, -1
		}
		skipped = start
		bufferSlice = bufferSlice[start:]
		nextm1 := indexMarker(bufferSlice[1:])
		if nextm1 != -1 {
			next = nextm1 + 1
		}
	} else {
		next = indexMarker(bufferSlice)
	}

	end := bytes.IndexByte(bufferSlice, '\n')

	switch {
	case next == -1 && end == -1:
		return append(incomplete, bufferSlice...), -1
	case end == -1 || (next != -1 && next < end):
		cpy := reserveCapacity(incomplete, next+2)
		cpy = append(cpy, bufferSlice[:next]...)
		cpy = append(cpy, '\r', '\n')
		return cpy, skipped + next
	case (end != 0 && bufferSlice[end-1] == '\r') ||
		(end == 0 && len(incomplete) != 0 && incomplete[len(incomplete)-1] == '\r'):
		return append(incomplete, bufferSlice[:end+1]...), skipped + end + 1
	default:
		cpy := reserveCapacity(incomplete, end+2)
		cpy = append(cpy, bufferSlice[:end]...)
		cpy = append(cpy, '\r', '\n')
		return cpy, skipped + end + 1
	}
}

func reserveCapacity(b []byte, add int) []byte {
	if cap(b) >= len(b)+add {
		return b
	}
	return append(make([]byte, 0, len(b)+add), b...)
}
