package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanji-dg/cmt/internal/engine/driver"
)

func feed(p *driver.TargetListParser, lines ...string) []string {
	for _, line := range lines {
		p.Output(line)
	}
	return p.TargetNames()
}

func TestTargetListParser_Makefile(t *testing.T) {
	p := driver.NewTargetListParser("Unix Makefiles")
	got := feed(p,
		"The following are some of the valid targets for this Makefile:",
		"...  all",
		"... clean",
		"...  my_target",
		"... install (the default if no target is provided)",
		"no dots here",
	)
	assert.Equal(t, []string{"all", "clean", "my_target", "install"}, got)
}

func TestTargetListParser_MakefilePrefixIsStrict(t *testing.T) {
	p := driver.NewTargetListParser("MinGW Makefiles")
	got := feed(p,
		"...", // bare marker, no target
		"....all",
		"... ",
		"... depend",
	)
	assert.Equal(t, []string{"depend"}, got)
}

func TestTargetListParser_Ninja(t *testing.T) {
	p := driver.NewTargetListParser("Ninja")
	got := feed(p,
		"my_target: phony",
		"app: CXX_EXECUTABLE_LINKER",
		"All Build: phony",
		"just a diagnostic line",
		"install: phony",
	)
	assert.Equal(t, []string{"my_target", "app", "install"}, got)
}

func TestTargetListParser_IDE(t *testing.T) {
	p := driver.NewTargetListParser("Visual Studio 17 2022")
	got := feed(p,
		"ZERO_CHECK: phony",
		"All Build: umbrella",
		"app: project",
	)
	assert.Equal(t, []string{"ZERO_CHECK", "app"}, got)
}

func TestTargetListParser_DuplicatesAndOrder(t *testing.T) {
	p := driver.NewTargetListParser("Ninja")
	got := feed(p,
		"b: phony",
		"a: phony",
		"b: phony",
	)
	assert.Equal(t, []string{"b", "a", "b"}, got)
}

func TestTargetListParser_ErrorStreamCounts(t *testing.T) {
	p := driver.NewTargetListParser("Ninja")
	p.Error("from_stderr: phony")
	assert.Equal(t, []string{"from_stderr"}, p.TargetNames())
}

func TestTargetListParser_EmptyInput(t *testing.T) {
	p := driver.NewTargetListParser("Unix Makefiles")
	assert.Empty(t, p.TargetNames())
}
