package config

// File represents the structure of the cmt.yaml project file.
type File struct {
	CMake     string            `yaml:"cmake"`
	SourceDir string            `yaml:"sourceDir"`
	BuildDir  string            `yaml:"buildDir"`
	Jobs      int               `yaml:"jobs"`
	Generator string            `yaml:"generator"`
	ExtraArgs []string          `yaml:"extraArgs"`
	Wrapper   []string          `yaml:"wrapper"`
	Kits      []KitDTO          `yaml:"kits"`
	Env       map[string]string `yaml:"env"`
}

// KitDTO represents a kit declaration in the project file. A kit names
// either per-language compilers or a toolchain file, not both.
type KitDTO struct {
	Name          string            `yaml:"name"`
	Compilers     map[string]string `yaml:"compilers"`
	ToolchainFile string            `yaml:"toolchainFile"`
}
