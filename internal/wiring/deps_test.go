package wiring_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"github.com/tanji-dg/cmt/internal/app"
	_ "github.com/tanji-dg/cmt/internal/wiring" // Register providers
)

// TestAppWiring verifies that the full application graph resolves: every
// node finds its declared dependencies and the Components bundle comes
// out constructed.
func TestAppWiring(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	defer func() {
		errChdir := os.Chdir(cwd)
		require.NoError(t, errChdir)
	}()

	tmpDir := t.TempDir()
	project := "sourceDir: .\nbuildDir: build\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "cmt.yaml"), []byte(project), 0o600))
	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
