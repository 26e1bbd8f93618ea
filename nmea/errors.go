package nmea

import "fmt"

// Kind classifies a DecodeError so callers can switch on it without
// string matching.
type Kind int

const (
	ChecksumMismatch Kind = iota
	InvalidFormat
	PayloadDecodeFailed
	FieldParseFailed
	UnsupportedSentence
	UnsupportedMessageType
	UnrecognizedMessageType
)

func (k Kind) String() string {
	switch k {
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case InvalidFormat:
		return "InvalidFormat"
	case PayloadDecodeFailed:
		return "PayloadDecodeFailed"
	case FieldParseFailed:
		return "FieldParseFailed"
	case UnsupportedSentence:
		return "UnsupportedSentence"
	case UnsupportedMessageType:
		return "UnsupportedMessageType"
	case UnrecognizedMessageType:
		return "UnrecognizedMessageType"
	default:
		return "Unknown"
	}
}

// DecodeError is the error type DecodeSentence returns for every
// failure kind it can produce. Field is populated only for
// FieldParseFailed; SentenceType only for Unsupported/Unrecognized
// kinds.
type DecodeError struct {
	Kind         Kind
	SentenceType string
	Field        string
	Raw          string
	cause        error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ChecksumMismatch:
		return fmt.Sprintf("checksum mismatch: %s", e.cause)
	case InvalidFormat:
		return fmt.Sprintf("invalid format: %s", e.cause)
	case PayloadDecodeFailed:
		return fmt.Sprintf("payload decode failed: %s", e.cause)
	case FieldParseFailed:
		return fmt.Sprintf("failed to parse field %q from %q", e.Field, e.Raw)
	case UnsupportedSentence:
		return fmt.Sprintf("unsupported sentence: %s", e.SentenceType)
	case UnsupportedMessageType:
		return fmt.Sprintf("unsupported message type: %s", e.SentenceType)
	case UnrecognizedMessageType:
		return fmt.Sprintf("unrecognized message type: %s", e.SentenceType)
	default:
		return "unknown decode error"
	}
}

// Unwrap exposes the checksum/payload-decode library errors this
// wraps, so callers can still errors.As into checksum.MismatchError or
// bitvec.PayloadDecodeError if they need the lower-level detail.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is(err, nmea.ChecksumMismatch) work against the Kind
// sentinel values directly, without requiring callers to unwrap into a
// *DecodeError and compare .Kind by hand.
func (e *DecodeError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.Kind == k
}

func (k Kind) Error() string {
	return k.String()
}
