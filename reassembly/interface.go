package reassembly

// ReassemblyStore is satisfied by both Store and TTLStore. decode_sentence
// accepts this interface so callers can choose bounded or unbounded
// fragment buffering without the dispatcher caring which.
type ReassemblyStore interface {
	Put(key Key, payload string)
	Take(key Key) (payload string, ok bool)
}

var (
	_ ReassemblyStore = (*Store)(nil)
	_ ReassemblyStore = (*TTLStore)(nil)
)
