package domain

// TargetKind classifies a buildable target.
type TargetKind string

// TargetNamed is the only kind the external tool's listing facility
// reports: a target addressed by name.
const TargetNamed TargetKind = "named"

// Target is a buildable unit reported by the external tool. The driver
// replaces its target list wholesale on every discovery pass.
type Target struct {
	Kind TargetKind
	Name string
}

// NamedTarget constructs a named target.
func NamedTarget(name string) Target {
	return Target{Kind: TargetNamed, Name: name}
}
