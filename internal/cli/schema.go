// Package cli implements the command dispatch core: per-command option
// declarations, argument parsing, rule validation, and a static registry
// that resolves a command name to its handler.
package cli

import "context"

// OptionType declares how a flag's value is coerced by the parser.
type OptionType string

const (
	TypeString OptionType = "string"
	TypeNumber OptionType = "number"
	TypeBool   OptionType = "bool"
)

// OptionDecl declares a single recognized flag for a command. Declarations
// are the single source of truth for defaults.
type OptionDecl struct {
	Name       string
	Type       OptionType
	Default    any
	HasDefault bool
}

// RuleKind selects the check a Rule applies.
type RuleKind string

const (
	// RuleRequired means the field must be present after defaulting.
	RuleRequired RuleKind = "required"
	// RuleOneOf means the field, if present, must match one of Allowed exactly.
	RuleOneOf RuleKind = "oneOf"
	// RuleOptional imposes no presence requirement; only the declared type
	// is checked when the field is present.
	RuleOptional RuleKind = "optional"
)

// Rule is a single validation rule against a parsed option field.
type Rule struct {
	Field   string
	Kind    RuleKind
	Allowed []string // RuleOneOf only
}

// HandlerFunc executes a command against a validated invocation.
type HandlerFunc func(ctx context.Context, inv *Invocation) error

// CommandSpec binds a command name to its option schema, validation rules,
// usage text, and handler. Specs are built once at startup and read-only
// afterward.
type CommandSpec struct {
	Name        string
	Usage       string
	Description string
	Options     []OptionDecl
	Rules       []Rule
	Run         HandlerFunc
}

// Registry is the static command table. Lookup of an unrecognized name
// falls back to the help command rather than failing.
type Registry struct {
	specs map[string]*CommandSpec
	order []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*CommandSpec)}
}

// Register adds a spec to the registry. Later registrations under the same
// name replace earlier ones.
func (r *Registry) Register(spec *CommandSpec) {
	if _, exists := r.specs[spec.Name]; !exists {
		r.order = append(r.order, spec.Name)
	}
	r.specs[spec.Name] = spec
}

// Get returns the spec registered under name, or nil.
func (r *Registry) Get(name string) *CommandSpec {
	return r.specs[name]
}

// Lookup resolves a command name, falling back to the help spec for
// unrecognized names.
func (r *Registry) Lookup(name string) *CommandSpec {
	if spec, ok := r.specs[name]; ok {
		return spec
	}
	return r.specs["help"]
}

// Specs returns all registered specs in registration order.
func (r *Registry) Specs() []*CommandSpec {
	out := make([]*CommandSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}
