package domain

// Linkage selects how libraries are linked in a build variant.
type Linkage string

const (
	// LinkageStatic builds static libraries.
	LinkageStatic Linkage = "static"
	// LinkageShared builds shared libraries.
	LinkageShared Linkage = "shared"
)

// Setting is one configure-time cache definition. Value is either a bool
// or a string; booleans are rendered as BOOL definitions, everything
// else as STRING.
type Setting struct {
	Key   string
	Value any
}

// VariantOptions is a named set of build options applied to a configure
// invocation. Zero-valued fields mean "keep the driver's current value".
type VariantOptions struct {
	BuildType string
	Settings  []Setting
	Linkage   Linkage
}
