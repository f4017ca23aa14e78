// Package fs provides filesystem-backed collaborators for the driver.
package fs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tanji-dg/cmt/internal/core/domain"
	"go.trai.ch/zerr"
)

// ListFilename is the project's top-level list file the external tool
// configures from.
const ListFilename = "CMakeLists.txt"

// Preflight implements ports.Preflight. It verifies that the external
// tool is reachable and the source tree has a top-level list file
// before any configure or build runs.
type Preflight struct {
	cfg *domain.ProjectConfig
}

// NewPreflight creates a Preflight for the given project configuration.
func NewPreflight(cfg *domain.ProjectConfig) *Preflight {
	return &Preflight{cfg: cfg}
}

// Check validates the project against the filesystem.
func (p *Preflight) Check(_ context.Context) error {
	if _, err := exec.LookPath(p.cfg.CMakePath); err != nil {
		return zerr.With(zerr.Wrap(err, "external tool not found"), "cmake", p.cfg.CMakePath)
	}

	listFile := filepath.Join(p.cfg.SourceDir, ListFilename)
	if _, err := os.Stat(listFile); err != nil {
		return zerr.With(zerr.Wrap(err, "source tree has no list file"), "path", listFile)
	}
	return nil
}
