// Package policy implements the eviction-policy capability: a strategy
// object that observes every mutation and access the store makes and, when
// asked, names the key that should be evicted next.
//
// Policies never touch the store's map directly. They are handed a View —
// a narrow, read-only projection of store membership — so that bookkeeping
// (linked lists, frequency counters, queues) stays owned by the policy
// instance and not leaked into the store.
package policy

import "fmt"

// View is the read-only projection of store state a Policy is allowed to
// consult. Implementations are called exclusively under the store's lock.
type View interface {
	// Contains reports whether key currently has an entry in the store,
	// including an expired entry that has not been swept yet.
	Contains(key string) bool
	// Len returns the number of entries currently in the store.
	Len() int
}

// Policy is the eviction-strategy capability. All six methods are called
// exclusively under the store's lock; none of them may block or re-enter
// the store.
type Policy interface {
	// OnAdd is called when key is inserted for the first time in its
	// current residency (a fresh key, or a reinsertion after delete).
	OnAdd(view View, key string)

	// OnUpdate is called when an existing key's value is replaced in place
	// (set/update on a present key). This is distinct from OnDelete+OnAdd.
	OnUpdate(view View, key string)

	// OnAccess is called on every successful read of key.
	OnAccess(view View, key string)

	// OnDelete is called when a single key is about to disappear, regardless
	// of cause (eviction, expiry, explicit delete). Clear does not call it
	// per key; it calls Reset instead.
	OnDelete(view View, key string)

	// SelectEvictionKey names the key to evict when the store is over
	// capacity. Precondition: view.Len() > 0. Postcondition: the returned
	// key satisfies view.Contains(key).
	SelectEvictionKey(view View) (string, bool)

	// Reset discards all policy bookkeeping. Called on cache Clear and on
	// LoadFromDisk before entries are reinserted.
	Reset()
}

// Constructor builds a fresh, empty Policy instance.
type Constructor func() Policy

// Name identifies a registered eviction policy.
type Name string

const (
	LRU  Name = "lru"
	LFU  Name = "lfu"
	FIFO Name = "fifo"
)

// unknownPolicyError reports a lookup against a name nothing registered.
type unknownPolicyError struct {
	name Name
}

func (e *unknownPolicyError) Error() string {
	return fmt.Sprintf("policy: no eviction policy registered under name %q", e.name)
}
