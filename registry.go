package kvcache

import (
	"github.com/kvcachelib/kvcache/policy"
	"github.com/kvcachelib/kvcache/serializer"
)

// RegisterEvictionPolicy installs ctor under name in the process-wide
// eviction-policy registry. Callers extend the cache with custom policies
// by calling this before constructing any Cache that references name.
// Re-registering an existing name fails with ErrRegistry.
func RegisterEvictionPolicy(name policy.Name, ctor policy.Constructor) error {
	if err := policy.Register(name, ctor); err != nil {
		return wrapErr("RegisterEvictionPolicy", ErrRegistry, err)
	}
	return nil
}

// RegisterSerializer installs ctor under name in the process-wide
// serializer registry. Re-registering an existing name fails with
// ErrRegistry.
func RegisterSerializer(name serializer.Name, ctor serializer.Constructor) error {
	if err := serializer.Register(name, ctor); err != nil {
		return wrapErr("RegisterSerializer", ErrRegistry, err)
	}
	return nil
}
