package domain

import "strings"

// CacheEntryType is the type token of a cache entry as written by the
// external tool.
type CacheEntryType int

// The fixed set of type tokens the cache grammar recognizes.
const (
	CacheBool CacheEntryType = iota
	CacheString
	CachePath
	CacheFilePath
	CacheInternal
	CacheUninitialized
	CacheStatic
)

// String returns the token as it appears in the cache file.
func (t CacheEntryType) String() string {
	switch t {
	case CacheBool:
		return "BOOL"
	case CacheString:
		return "STRING"
	case CachePath:
		return "PATH"
	case CacheFilePath:
		return "FILEPATH"
	case CacheInternal:
		return "INTERNAL"
	case CacheUninitialized:
		return "UNINITIALIZED"
	case CacheStatic:
		return "STATIC"
	default:
		return "UNKNOWN"
	}
}

// CacheEntry is one key/type/value triple read from the cache file,
// immutable once constructed. Value holds a bool for CacheBool entries
// and the raw string for everything else.
type CacheEntry struct {
	Key        string
	Type       CacheEntryType
	Value      any
	HelpString string
	Advanced   bool
}

// AsString returns the entry's value rendered back to cache-file form.
func (e CacheEntry) AsString() string {
	if b, ok := e.Value.(bool); ok {
		if b {
			return "TRUE"
		}
		return "FALSE"
	}
	s, _ := e.Value.(string)
	return s
}

// IsTruthy applies the external tool's truthiness rules to a raw cache
// value: OFF, NO, FALSE, N, IGNORE, NOTFOUND, the empty string, anything
// ending in -NOTFOUND and the literal 0 are false; everything else is true.
func IsTruthy(value string) bool {
	switch strings.ToUpper(value) {
	case "", "0", "OFF", "NO", "FALSE", "N", "IGNORE", "NOTFOUND":
		return false
	}
	return !strings.HasSuffix(strings.ToUpper(value), "-NOTFOUND")
}
