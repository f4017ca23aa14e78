package driver

import (
	"strings"

	"github.com/tanji-dg/cmt/internal/core/domain"
)

// allBuildMarker flags the generator's own "build everything" umbrella
// line in target listings; it is not a real target.
const allBuildMarker = "All Build"

// TargetListParser extracts declared build targets from the build
// tool's own console output. The parsing grammar is selected once, at
// construction, by the generator that produced the build system:
// Makefile-family listings prefix each target with "...", everything
// else (Ninja and IDE projects alike) lists "name: kind" lines.
type TargetListParser struct {
	makefile bool
	names    []string
}

// NewTargetListParser creates a parser for the given generator's
// listing grammar.
func NewTargetListParser(gen domain.Generator) *TargetListParser {
	return &TargetListParser{makefile: gen.IsMakefile()}
}

// Output classifies one listing line and records the target it
// declares, if any. Duplicates are kept; order is preserved.
func (p *TargetListParser) Output(line string) {
	if name, ok := p.parse(line); ok {
		p.names = append(p.names, name)
	}
}

// Error forwards to Output: target names may legitimately appear on
// either stream depending on the tool's behavior.
func (p *TargetListParser) Error(line string) {
	p.Output(line)
}

// TargetNames returns the recorded targets in listing order.
func (p *TargetListParser) TargetNames() []string {
	return p.names
}

func (p *TargetListParser) parse(line string) (string, bool) {
	if p.makefile {
		if !strings.HasPrefix(line, "... ") {
			return "", false
		}
		// Text after the prefix, with any trailing space-separated
		// annotation discarded.
		name, _, _ := strings.Cut(strings.TrimSpace(line[4:]), " ")
		return name, name != ""
	}

	if strings.Contains(line, allBuildMarker) {
		return "", false
	}
	name, _, found := strings.Cut(line, ": ")
	return name, found && name != ""
}
