package policy

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrAlreadyRegistered is returned by Register when name is already taken.
var ErrAlreadyRegistered = errors.New("policy: name already registered")

// registry is the process-wide name->constructor table. Lookup is
// concurrent; registration is serialized by mu, since registration is
// write-rare and lookup is read-many.
type registry struct {
	mu    sync.RWMutex
	ctors map[Name]Constructor
}

var global = &registry{ctors: make(map[Name]Constructor)}

func init() {
	Register(LRU, NewLRU)
	Register(LFU, NewLFU)
	Register(FIFO, NewFIFO)
}

// Register installs ctor under name. Re-registering an existing name fails
// with ErrAlreadyRegistered, wrapped with the offending name.
func Register(name Name, ctor Constructor) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if _, exists := global.ctors[name]; exists {
		return errors.Wrapf(ErrAlreadyRegistered, "name %q", name)
	}
	global.ctors[name] = ctor
	return nil
}

// New constructs a fresh Policy instance registered under name.
func New(name Name) (Policy, error) {
	global.mu.RLock()
	ctor, ok := global.ctors[name]
	global.mu.RUnlock()

	if !ok {
		return nil, &unknownPolicyError{name: name}
	}
	return ctor(), nil
}

// Registered reports whether name currently has a constructor installed.
func Registered(name Name) bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	_, ok := global.ctors[name]
	return ok
}
