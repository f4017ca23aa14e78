package domain

// ProjectConfig is the resolved project configuration consumed by the
// driver: where the sources live, where the build tree goes, and how to
// reach the external tool.
type ProjectConfig struct {
	// CMakePath is the external tool's executable path.
	CMakePath string
	// SourceDir is the directory holding the project's top-level list file.
	SourceDir string
	// BinaryDir is the build tree the external tool configures into.
	BinaryDir string
	// Jobs is the parallelism passed to the underlying build tool.
	Jobs int
	// Generator is the preferred generator, used only while no cache file
	// pins the choice.
	Generator Generator
	// ExtraArgs are appended verbatim to every configure invocation.
	ExtraArgs []string
	// Wrapper, when set, is prepended to the tool's argv on non-Windows
	// hosts to defeat child-side stream buffering (e.g. stdbuf -o0 -e0).
	Wrapper []string
	// Env holds extra environment variables for tool invocations.
	Env map[string]string
	// Kits are the toolchains declared in the project configuration.
	Kits []Kit
}

// KitByName returns the declared kit with the given name.
func (c *ProjectConfig) KitByName(name string) (Kit, bool) {
	for _, k := range c.Kits {
		if k.Name == name {
			return k, true
		}
	}
	return Kit{}, false
}
