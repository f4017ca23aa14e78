package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanji-dg/cmt/internal/core/domain"
)

func TestFingerprint_IgnoresName(t *testing.T) {
	a := domain.Kit{Name: "gcc", Type: domain.KitCompilers, Compilers: map[string]string{"C": "/usr/bin/gcc"}}
	b := a
	b.Name = "gcc-renamed"

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_CompilerChange(t *testing.T) {
	a := domain.Kit{Type: domain.KitCompilers, Compilers: map[string]string{"C": "/usr/bin/gcc"}}
	b := domain.Kit{Type: domain.KitCompilers, Compilers: map[string]string{"C": "/usr/bin/clang"}}

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_AddedLanguage(t *testing.T) {
	a := domain.Kit{Type: domain.KitCompilers, Compilers: map[string]string{"C": "/usr/bin/gcc"}}
	b := domain.Kit{Type: domain.KitCompilers, Compilers: map[string]string{"C": "/usr/bin/gcc", "CXX": "/usr/bin/g++"}}

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_TypeMatters(t *testing.T) {
	a := domain.Kit{Type: domain.KitToolchain, ToolchainFile: "/t.cmake"}
	b := domain.Kit{Type: domain.KitCompilers, ToolchainFile: "/t.cmake"}

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_Stable(t *testing.T) {
	kit := domain.Kit{
		Type: domain.KitCompilers,
		Compilers: map[string]string{
			"C":   "/usr/bin/gcc",
			"CXX": "/usr/bin/g++",
		},
	}
	first := kit.Fingerprint()
	for range 10 {
		assert.Equal(t, first, kit.Fingerprint())
	}
}
