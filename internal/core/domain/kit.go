package domain

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// KitType discriminates how a kit parameterizes the configure step.
type KitType string

const (
	// KitCompilers is a kit that names one compiler executable per language.
	KitCompilers KitType = "compilers"
	// KitToolchain is a kit that points at a toolchain file.
	KitToolchain KitType = "toolchain"
)

// Kit describes a toolchain selected by the user. It is consumed, never
// modified, by the driver.
type Kit struct {
	Name          string
	Type          KitType
	Compilers     map[string]string // language → compiler path
	ToolchainFile string
}

// Fingerprint returns a stable hash of the kit's resolved toolchain
// identity. Two kits with the same fingerprint may share a build tree;
// a fingerprint change invalidates existing object files.
func (k Kit) Fingerprint() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(string(k.Type))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(k.ToolchainFile)

	langs := make([]string, 0, len(k.Compilers))
	for lang := range k.Compilers {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(lang)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(k.Compilers[lang])
	}
	return h.Sum64()
}
