package variants_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanji-dg/cmt/internal/adapters/variants"
	"github.com/tanji-dg/cmt/internal/core/domain"
)

func TestParse_Variants(t *testing.T) {
	doc := `
debug:
  buildType: Debug
  settings:
    ENABLE_ASSERTS: true
    LOG_LEVEL: trace
release:
  buildType: Release
  linkage: shared
`
	got, err := variants.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, got, 2)

	debug := got["debug"]
	assert.Equal(t, "Debug", debug.BuildType)
	assert.Empty(t, debug.Linkage)
	require.Len(t, debug.Settings, 2)
	assert.Equal(t, domain.Setting{Key: "ENABLE_ASSERTS", Value: true}, debug.Settings[0])
	assert.Equal(t, domain.Setting{Key: "LOG_LEVEL", Value: "trace"}, debug.Settings[1])

	release := got["release"]
	assert.Equal(t, "Release", release.BuildType)
	assert.Equal(t, domain.LinkageShared, release.Linkage)
	assert.Empty(t, release.Settings)
}

// Settings must come back in declaration order, not map order.
func TestParse_SettingsKeepDeclarationOrder(t *testing.T) {
	doc := `
ordered:
  buildType: Debug
  settings:
    ZULU: 1
    MIKE: 2
    ALPHA: 3
`
	got, err := variants.Parse([]byte(doc))
	require.NoError(t, err)

	settings := got["ordered"].Settings
	require.Len(t, settings, 3)
	assert.Equal(t, "ZULU", settings[0].Key)
	assert.Equal(t, "MIKE", settings[1].Key)
	assert.Equal(t, "ALPHA", settings[2].Key)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := variants.Parse([]byte("debug:\n  buildMode: Debug\n"))
	require.Error(t, err)
}

func TestParse_RejectsBadLinkage(t *testing.T) {
	_, err := variants.Parse([]byte("debug:\n  linkage: dynamic\n"))
	require.Error(t, err)
}

func TestParse_RejectsNonScalarSetting(t *testing.T) {
	doc := `
debug:
  settings:
    NESTED:
      a: 1
`
	_, err := variants.Parse([]byte(doc))
	require.Error(t, err)
}

func TestParse_EmptyDocument(t *testing.T) {
	got, err := variants.Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_MissingFileYieldsEmpty(t *testing.T) {
	loader := &variants.FileVariantLoader{}
	got, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_ReadsFromCwd(t *testing.T) {
	dir := t.TempDir()
	doc := "minsize:\n  buildType: MinSizeRel\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, variants.DefaultFilename), []byte(doc), 0o600))

	loader := &variants.FileVariantLoader{}
	got, err := loader.Load(dir)
	require.NoError(t, err)
	require.Contains(t, got, "minsize")
	assert.Equal(t, "MinSizeRel", got["minsize"].BuildType)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, variants.DefaultFilename), []byte("a: [b\n"), 0o600))

	loader := &variants.FileVariantLoader{}
	_, err := loader.Load(dir)
	require.Error(t, err)
}
