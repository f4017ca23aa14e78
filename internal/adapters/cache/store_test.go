package cache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanji-dg/cmt/internal/adapters/cache"
	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeCache(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CMakeCache.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestFromPath_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CMakeCache.txt")

	store, err := cache.FromPath(path, quietLogger(t))
	require.NoError(t, err)
	assert.False(t, store.Exists())
	assert.Empty(t, store.Entries())
	assert.Equal(t, path, store.Path())
}

func TestFromPath_ParsesEntries(t *testing.T) {
	content := strings.Join([]string{
		"# This is the CMakeCache file.",
		"",
		"//Path to a program.",
		"CMAKE_COMMAND:INTERNAL=/usr/bin/cmake",
		"//Enable verbose output",
		"//from the build tool.",
		"CMAKE_VERBOSE_MAKEFILE:BOOL=OFF",
		"CMAKE_GENERATOR:INTERNAL=Ninja",
		"EMPTY_VALUE:STRING=",
		"WITH_EQUALS:STRING=a=b=c",
	}, "\n")

	store, err := cache.FromPath(writeCache(t, content), quietLogger(t))
	require.NoError(t, err)
	require.True(t, store.Exists())
	assert.Len(t, store.Entries(), 5)

	cmd, ok := store.Get("CMAKE_COMMAND")
	require.True(t, ok)
	assert.Equal(t, domain.CacheInternal, cmd.Type)
	assert.Equal(t, "/usr/bin/cmake", cmd.Value)
	assert.Equal(t, "Path to a program.", cmd.HelpString)

	verbose, ok := store.Get("CMAKE_VERBOSE_MAKEFILE")
	require.True(t, ok)
	assert.Equal(t, domain.CacheBool, verbose.Type)
	assert.Equal(t, false, verbose.Value)
	assert.Equal(t, "Enable verbose output from the build tool.", verbose.HelpString)

	empty, ok := store.Get("EMPTY_VALUE")
	require.True(t, ok)
	assert.Equal(t, "", empty.Value)

	eq, ok := store.Get("WITH_EQUALS")
	require.True(t, ok)
	assert.Equal(t, "a=b=c", eq.Value)

	assert.Equal(t, domain.Generator("Ninja"), store.Generator())
}

func TestFromPath_BoolTruthiness(t *testing.T) {
	content := strings.Join([]string{
		"ON_FLAG:BOOL=ON",
		"OFF_FLAG:BOOL=OFF",
		"ONE_FLAG:BOOL=1",
		"NOTFOUND_FLAG:BOOL=LIB-NOTFOUND",
		"TRUE_FLAG:BOOL=TRUE",
	}, "\n")

	store, err := cache.FromPath(writeCache(t, content), quietLogger(t))
	require.NoError(t, err)

	for key, want := range map[string]bool{
		"ON_FLAG":       true,
		"OFF_FLAG":      false,
		"ONE_FLAG":      true,
		"NOTFOUND_FLAG": false,
		"TRUE_FLAG":     true,
	} {
		entry, ok := store.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, entry.Value, key)
	}
}

func TestFromPath_UnknownTypeIsRecoverable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	var reported error
	log.EXPECT().Error(gomock.Any()).Do(func(err error) { reported = err }).Times(1)

	store, err := cache.FromPath(writeCache(t, "BAR:GARBAGE=x\n"), log)
	require.NoError(t, err)
	assert.Empty(t, store.Entries())
	require.ErrorIs(t, reported, domain.ErrUnknownCacheType)
}

func TestFromPath_MalformedLineIsRecoverable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	content := "not a cache line\nGOOD:STRING=yes\n"
	store, err := cache.FromPath(writeCache(t, content), log)
	require.NoError(t, err)
	assert.Len(t, store.Entries(), 1)

	_, ok := store.Get("GOOD")
	assert.True(t, ok)
}

func TestFromPath_AdvancedFlagSuppressed(t *testing.T) {
	content := strings.Join([]string{
		"FOO:STRING=bar",
		"FOO-ADVANCED:INTERNAL=1",
		"KEPT-ADVANCED:INTERNAL=0",
	}, "\n")

	store, err := cache.FromPath(writeCache(t, content), quietLogger(t))
	require.NoError(t, err)

	_, ok := store.Get("FOO-ADVANCED")
	assert.False(t, ok, "advanced-flag metadata must be dropped")

	foo, ok := store.Get("FOO")
	require.True(t, ok)
	assert.False(t, foo.Advanced, "advanced propagation is unsupported")

	// Only the value "1" marks advanced metadata.
	_, ok = store.Get("KEPT-ADVANCED")
	assert.True(t, ok)
}

func TestFromPath_DuplicateKeysLaterWins(t *testing.T) {
	content := "KEY:STRING=first\nKEY:STRING=second\n"
	store, err := cache.FromPath(writeCache(t, content), quietLogger(t))
	require.NoError(t, err)

	entry, ok := store.Get("KEY")
	require.True(t, ok)
	assert.Equal(t, "second", entry.Value)
}

func TestFromPath_CRLFContent(t *testing.T) {
	content := "A:STRING=1\r\nB:STRING=2\r\n"
	store, err := cache.FromPath(writeCache(t, content), quietLogger(t))
	require.NoError(t, err)
	assert.Len(t, store.Entries(), 2)
}

func TestReload_ProducesIndependentSnapshot(t *testing.T) {
	path := writeCache(t, "KEY:STRING=old\n")
	log := quietLogger(t)

	store, err := cache.FromPath(path, log)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("KEY:STRING=new\n"), 0o600))

	reloaded, err := store.Reload(log)
	require.NoError(t, err)

	oldEntry, _ := store.Get("KEY")
	newEntry, _ := reloaded.Get("KEY")
	assert.Equal(t, "old", oldEntry.Value, "original snapshot must not change")
	assert.Equal(t, "new", newEntry.Value)
}

// Parsing a re-serialization of the parsed entries yields the same
// entries again.
func TestParse_RoundTrip(t *testing.T) {
	content := strings.Join([]string{
		"//Build type selection.",
		"CMAKE_BUILD_TYPE:STRING=Debug",
		"ENABLE_TESTS:BOOL=ON",
		"CMAKE_INSTALL_PREFIX:PATH=/usr/local",
		"COMPILER:FILEPATH=/usr/bin/cc",
		"INTERNAL_STATE:INTERNAL=xyz",
	}, "\n")
	log := quietLogger(t)

	first, err := cache.FromPath(writeCache(t, content), log)
	require.NoError(t, err)

	var lines []string
	entries := first.Entries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	for _, e := range entries {
		if e.HelpString != "" {
			lines = append(lines, "//"+e.HelpString)
		}
		lines = append(lines, fmt.Sprintf("%s:%s=%s", e.Key, e.Type, e.AsString()))
	}

	second, err := cache.FromPath(writeCache(t, strings.Join(lines, "\n")), log)
	require.NoError(t, err)

	require.Len(t, second.Entries(), len(entries))
	for _, want := range entries {
		got, ok := second.Get(want.Key)
		require.True(t, ok, want.Key)
		assert.Equal(t, want.Type, got.Type, want.Key)
		assert.Equal(t, want.Value, got.Value, want.Key)
		assert.Equal(t, want.HelpString, got.HelpString, want.Key)
	}
}
