package domain

import "strings"

// Generator names the build-file flavor produced by the external tool,
// e.g. "Unix Makefiles", "Ninja" or "Visual Studio 17 2022". The empty
// string means the generator is not (yet) known.
type Generator string

// IsMakefile reports whether the generator produces Makefile-family build
// files. These generators use the "..."-prefixed target-listing grammar.
func (g Generator) IsMakefile() bool {
	return strings.Contains(string(g), "Makefiles") || g == "Watcom WMake"
}

// IsNinja reports whether the generator produces Ninja build files.
func (g Generator) IsNinja() bool {
	return strings.Contains(string(g), "Ninja")
}

// IsIDE reports whether the generator produces IDE project files
// (Visual Studio solutions or Xcode projects).
func (g Generator) IsIDE() bool {
	return strings.HasPrefix(string(g), "Visual Studio") || g == "Xcode"
}
