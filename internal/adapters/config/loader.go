// Package config provides the project configuration loader for cmt.
package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/tanji-dg/cmt/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project file looked up in the working directory.
const DefaultFilename = "cmt.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.ProjectConfig, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a project file from the given path and returns the resolved
// configuration. Relative directories are resolved against the file's
// own directory; unset fields receive defaults.
func Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project file")
	}

	root := filepath.Dir(path)
	cfg := &domain.ProjectConfig{
		CMakePath: file.CMake,
		SourceDir: resolveDir(root, file.SourceDir, "."),
		BinaryDir: resolveDir(root, file.BuildDir, "build"),
		Jobs:      file.Jobs,
		Generator: domain.Generator(file.Generator),
		ExtraArgs: file.ExtraArgs,
		Wrapper:   file.Wrapper,
		Env:       file.Env,
	}

	if cfg.CMakePath == "" {
		cfg.CMakePath = "cmake"
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.NumCPU()
	}
	if cfg.Wrapper == nil {
		cfg.Wrapper = defaultWrapper()
	}

	for _, dto := range file.Kits {
		kit, err := resolveKit(dto)
		if err != nil {
			return nil, err
		}
		cfg.Kits = append(cfg.Kits, kit)
	}
	return cfg, nil
}

func resolveKit(dto KitDTO) (domain.Kit, error) {
	if dto.Name == "" {
		return domain.Kit{}, zerr.New("kit declaration is missing a name")
	}
	if len(dto.Compilers) > 0 && dto.ToolchainFile != "" {
		return domain.Kit{}, zerr.With(zerr.New("kit declares both compilers and a toolchain file"), "kit", dto.Name)
	}
	kit := domain.Kit{Name: dto.Name}
	switch {
	case dto.ToolchainFile != "":
		kit.Type = domain.KitToolchain
		kit.ToolchainFile = dto.ToolchainFile
	default:
		kit.Type = domain.KitCompilers
		kit.Compilers = dto.Compilers
	}
	return kit, nil
}

func resolveDir(root, dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// defaultWrapper picks the platform's stream-unbuffering shim when one
// is available on PATH. Windows needs none.
func defaultWrapper() []string {
	if runtime.GOOS == "windows" {
		return nil
	}
	if _, err := exec.LookPath("stdbuf"); err == nil {
		return []string{"stdbuf", "-o0", "-e0"}
	}
	return nil
}
