package driver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tanji-dg/cmt/internal/core/domain"
)

// configureArgs assembles the external tool's configure argument list
// from kit, variant and cache state. The preferred generator is passed
// only while no cache file exists; an existing cache pins the choice.
func (d *CMakeDriver) configureArgs() []string {
	var args []string

	if !d.cache.Exists() && d.cfg.Generator != "" {
		args = append(args, "-G"+string(d.cfg.Generator))
	}

	for _, s := range d.settings {
		args = append(args, defineArg(s.Key, s.Value))
	}
	args = append(args, "-DCMAKE_BUILD_TYPE:STRING="+d.buildType)
	if d.linkage == domain.LinkageShared {
		args = append(args, "-DBUILD_SHARED_LIBS:BOOL=ON")
	}

	if d.kit != nil {
		args = append(args, kitArgs(*d.kit)...)
	}

	args = append(args, d.cfg.ExtraArgs...)
	args = append(args, "-H"+d.cfg.SourceDir, "-B"+d.cfg.BinaryDir)
	return args
}

// buildArgs assembles the build argument list for one target. Extra
// flags depend on the generator the cache reports: Makefile and Ninja
// build tools take a parallelism flag, IDE project builders take
// full-path diagnostics, anything else gets nothing extra.
func (d *CMakeDriver) buildArgs(target string) []string {
	args := []string{
		"--build", d.cfg.BinaryDir,
		"--config", d.buildType,
		"--target", target,
	}

	gen := d.cache.Generator()
	switch {
	case gen.IsMakefile() || gen.IsNinja():
		args = append(args, "--", "-j"+strconv.Itoa(d.cfg.Jobs))
	case gen.IsIDE():
		args = append(args, "--", "/property:GenerateFullPaths=true")
	}
	return args
}

// defineArg renders one -D definition. Booleans become BOOL cache
// entries, everything else a STRING.
func defineArg(key string, value any) string {
	if b, ok := value.(bool); ok {
		state := "OFF"
		if b {
			state = "ON"
		}
		return "-D" + key + ":BOOL=" + state
	}
	return fmt.Sprintf("-D%s:STRING=%v", key, value)
}

// kitArgs renders the kit's toolchain selection. Compiler kits define
// one compiler path per language, in deterministic order.
func kitArgs(kit domain.Kit) []string {
	switch kit.Type {
	case domain.KitToolchain:
		return []string{"-DCMAKE_TOOLCHAIN_FILE:FILEPATH=" + kit.ToolchainFile}
	case domain.KitCompilers:
		langs := make([]string, 0, len(kit.Compilers))
		for lang := range kit.Compilers {
			langs = append(langs, lang)
		}
		sort.Strings(langs)

		args := make([]string, 0, len(langs))
		for _, lang := range langs {
			args = append(args, fmt.Sprintf("-DCMAKE_%s_COMPILER:FILEPATH=%s",
				strings.ToUpper(lang), kit.Compilers[lang]))
		}
		return args
	default:
		return nil
	}
}
