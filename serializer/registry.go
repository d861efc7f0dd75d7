package serializer

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// ErrAlreadyRegistered is returned by Register when name is already taken.
var ErrAlreadyRegistered = errors.New("serializer: name already registered")

type registry struct {
	mu    sync.RWMutex
	ctors map[Name]Constructor
}

var global = &registry{ctors: make(map[Name]Constructor)}

func init() {
	Register(JSON, NewJSON)
	Register(Gob, NewGob)
}

// Register installs ctor under name. Re-registering an existing name fails
// with ErrAlreadyRegistered.
func Register(name Name, ctor Constructor) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if _, exists := global.ctors[name]; exists {
		return errors.Wrapf(ErrAlreadyRegistered, "name %q", name)
	}
	global.ctors[name] = ctor
	return nil
}

// New constructs a fresh Serializer registered under name.
func New(name Name) (Serializer, error) {
	global.mu.RLock()
	ctor, ok := global.ctors[name]
	global.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("serializer: no serializer registered under name %q", name)
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
