// Package store defines the persistence seam the item service writes
// through. The concrete implementation is jsonstore, but this interface
// allows alternative backends (in-memory, remote, etc.) for testing.
package store

// Backend is a synchronous key-value target. Read reports ok=false when
// the key holds no prior data; an empty value is treated the same way by
// callers.
type Backend interface {
	Read(key string) (value string, ok bool, err error)
	Write(key, value string) error
}
