package kvcache

import "github.com/pkg/errors"

// Sentinel errors identify the failure taxonomy this package returns.
// Callers compare against these with errors.Is; every error this package
// returns wraps exactly one of them via *OpError.
var (
	ErrKeyNotFound      = errors.New("kvcache: key not found")
	ErrKeyExpired       = errors.New("kvcache: key expired")
	ErrKeyAlreadyExists = errors.New("kvcache: key already exists")
	ErrInvalidTTL       = errors.New("kvcache: invalid ttl")
	ErrInvalidKey       = errors.New("kvcache: invalid key")
	ErrSerialization    = errors.New("kvcache: serialization error")
	ErrPersistence      = errors.New("kvcache: persistence error")
	ErrRegistry         = errors.New("kvcache: registry error")
	ErrConfiguration    = errors.New("kvcache: configuration error")
)

// OpError is this package's single root error kind: every failure it
// returns is an *OpError wrapping one of the sentinels above, qualified
// with the operation and key that produced it.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e.Key == "" {
		return "kvcache: " + e.Op + ": " + e.Err.Error()
	}
	return "kvcache: " + e.Op + " " + quote(e.Key) + ": " + e.Err.Error()
}

// Unwrap exposes the underlying sentinel so errors.Is(err, ErrKeyNotFound)
// works across the OpError wrapper.
func (e *OpError) Unwrap() error {
	return e.Err
}

func quote(s string) string {
	return "\"" + s + "\""
}

func opErr(op, key string, sentinel error) *OpError {
	return &OpError{Op: op, Key: key, Err: sentinel}
}

func wrapErr(op string, sentinel error, cause error) *OpError {
	return &OpError{Op: op, Err: errors.Wrap(sentinel, cause.Error())}
}
