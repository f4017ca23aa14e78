// Package cache parses the external tool's persisted cache file into an
// immutable typed model.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports"
	"go.trai.ch/zerr"
)

// entryTypes is the fixed set of type tokens the grammar recognizes.
var entryTypes = map[string]domain.CacheEntryType{
	"BOOL":          domain.CacheBool,
	"STRING":        domain.CacheString,
	"PATH":          domain.CachePath,
	"FILEPATH":      domain.CacheFilePath,
	"INTERNAL":      domain.CacheInternal,
	"UNINITIALIZED": domain.CacheUninitialized,
	"STATIC":        domain.CacheStatic,
}

// Store is an immutable snapshot of the cache file as of one read.
// Refreshing produces a new Store; existing references never change.
type Store struct {
	path    string
	exists  bool
	entries map[string]domain.CacheEntry
}

// FromPath reads and parses the cache file at path. A missing file is
// not an error: it yields an empty store with Exists()==false. Lines
// that do not conform to the grammar are reported to the logger and
// skipped; they never abort the parse.
func FromPath(path string, logger ports.Logger) (*Store, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from project config
	if errors.Is(err, fs.ErrNotExist) {
		return &Store{path: path, entries: map[string]domain.CacheEntry{}}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache file"), "path", path)
	}
	return &Store{
		path:    path,
		exists:  true,
		entries: parse(string(data), logger),
	}, nil
}

// parse applies the line-oriented cache grammar. Blank lines and lines
// whose first non-whitespace character is '#' are discarded up front.
// "//" lines accumulate documentation for the next entry line.
func parse(content string, logger ports.Logger) map[string]domain.CacheEntry {
	entries := make(map[string]domain.CacheEntry)

	var docs strings.Builder
	for _, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(line, "//") {
			docs.WriteString(strings.TrimPrefix(line, "//"))
			docs.WriteString(" ")
			continue
		}

		// Any non-comment line consumes the accumulated docstring,
		// whether or not it produces an entry.
		help := strings.TrimSpace(docs.String())
		docs.Reset()

		entry, err := parseEntry(line, help)
		if err != nil {
			if logger != nil {
				logger.Error(err)
			}
			continue
		}
		if entry == nil {
			continue // advanced-flag metadata, dropped
		}
		entries[entry.Key] = *entry
	}
	return entries
}

// parseEntry parses one name:type=value line. It returns (nil, nil) for
// suppressed advanced-flag lines.
func parseEntry(line, help string) (*domain.CacheEntry, error) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok || name == "" {
		return nil, zerr.With(domain.ErrMalformedCacheLine, "line", line)
	}
	typeToken, value, ok := strings.Cut(rest, "=")
	if !ok || typeToken == "" {
		return nil, zerr.With(domain.ErrMalformedCacheLine, "line", line)
	}

	// FOO-ADVANCED:INTERNAL=1 is metadata about FOO, not an entry.
	if strings.HasSuffix(name, "-ADVANCED") && value == "1" {
		return nil, nil
	}

	entryType, ok := entryTypes[typeToken]
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrUnknownCacheType, "type", typeToken), "key", name)
	}

	var typed any = value
	if entryType == domain.CacheBool {
		typed = domain.IsTruthy(value)
	}
	return &domain.CacheEntry{
		Key:        name,
		Type:       entryType,
		Value:      typed,
		HelpString: help,
	}, nil
}

// splitLines splits on any newline convention.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}

// Path returns the file path this store was read from.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the cache file was present at read time.
func (s *Store) Exists() bool {
	return s.exists
}

// Get returns the entry with the given key.
func (s *Store) Get(key string) (domain.CacheEntry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Entries returns all entries in unspecified order.
func (s *Store) Entries() []domain.CacheEntry {
	out := make([]domain.CacheEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

// Generator returns the generator recorded in the cache, if any.
func (s *Store) Generator() domain.Generator {
	if e, ok := s.entries["CMAKE_GENERATOR"]; ok {
		if v, ok := e.Value.(string); ok {
			return domain.Generator(v)
		}
	}
	return ""
}

// Reload re-reads the file and returns a new, independent snapshot. The
// receiver is left untouched.
func (s *Store) Reload(logger ports.Logger) (*Store, error) {
	return FromPath(s.path, logger)
}
