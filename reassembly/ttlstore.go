package reassembly

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// TTLStore is a Store that ages out a pending first-half fragment if its
// partner never arrives within ttl, instead of holding it forever,
// bounding memory for state that would otherwise accumulate
// unboundedly from unpaired input.
type TTLStore struct {
	c *cache.Cache
}

// NewTTLStore creates a TTLStore whose entries expire ttl after being
// inserted if never taken. cleanupInterval controls how often expired
// entries are purged from memory; pass 0 to use ttl itself.
func NewTTLStore(ttl, cleanupInterval time.Duration) *TTLStore {
	if cleanupInterval <= 0 {
		cleanupInterval = ttl
	}
	return &TTLStore{c: cache.New(ttl, cleanupInterval)}
}

// Put inserts payload at key with the store's configured TTL, overwriting
// any prior entry.
func (s *TTLStore) Put(key Key, payload string) {
	s.c.SetDefault(keyString(key), payload)
}

// Take atomically removes and returns the payload stored at key, if it
// hasn't expired.
func (s *TTLStore) Take(key Key) (payload string, ok bool) {
	v, found := s.c.Get(keyString(key))
	if !found {
		return "", false
	}
	s.c.Delete(keyString(key))
	return v.(string), true
}

// Len reports the number of fragments currently buffered, including any
// not yet purged past their TTL.
func (s *TTLStore) Len() int {
	return s.c.ItemCount()
}

func keyString(k Key) string {
	return fmt.Sprintf("%s|%d|%d|%d|%s", k.Talker, k.MsgID, k.Count, k.Index, k.Channel)
}
