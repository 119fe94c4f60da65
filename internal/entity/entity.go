// Package entity tracks the declared entities (sensors, color assets, font
// assets) that configuration values may reference by identifier. It offers
// look-up-by-identifier only; resolving what a reference means at runtime is
// the downstream generator's job.
package entity

import (
	"fmt"
	"regexp"
)

// Kind classifies what a declared entity can provide at runtime.
type Kind int

const (
	// KindNumericSensor provides a live numeric value.
	KindNumericSensor Kind = iota
	// KindBooleanSensor provides a live boolean state.
	KindBooleanSensor
	// KindTextSensor provides a live text value.
	KindTextSensor
	// KindColorAsset is a named color declared elsewhere in the configuration.
	KindColorAsset
	// KindFontAsset is an externally rendered font declared elsewhere.
	KindFontAsset
)

// String implements fmt.Stringer for log and error output.
func (k Kind) String() string {
	switch k {
	case KindNumericSensor:
		return "numeric sensor"
	case KindBooleanSensor:
		return "boolean sensor"
	case KindTextSensor:
		return "text sensor"
	case KindColorAsset:
		return "color"
	case KindFontAsset:
		return "font"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// ParseKind maps a configuration keyword to its Kind. Used by drivers that
// read entity declarations from config files.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "sensor":
		return KindNumericSensor, nil
	case "binary_sensor":
		return KindBooleanSensor, nil
	case "text_sensor":
		return KindTextSensor, nil
	case "color":
		return KindColorAsset, nil
	case "font":
		return KindFontAsset, nil
	default:
		return 0, fmt.Errorf("unknown entity kind %q: expected sensor, binary_sensor, text_sensor, color or font", s)
	}
}

// Entity is an opaque reference to a declared entity. Validators hand these
// to the emitter, which binds accessor expressions to them.
type Entity struct {
	ID   string
	Kind Kind
}

// idPattern matches the identifier syntax accepted for declared entities.
var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateID checks identifier syntax without consulting any registry.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid identifier %q: must start with a lowercase letter and contain only lowercase letters, digits and underscores", id)
	}
	return nil
}

// Registry is the set of entities declared for one compilation run.
type Registry struct {
	entities map[string]Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]Entity)}
}

// Declare records an entity. Identifier syntax is checked and duplicate
// declarations are rejected regardless of kind.
func (r *Registry) Declare(id string, kind Kind) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if _, exists := r.entities[id]; exists {
		return fmt.Errorf("entity %q is already declared", id)
	}
	r.entities[id] = Entity{ID: id, Kind: kind}
	return nil
}

// Lookup resolves an identifier to its declared entity.
func (r *Registry) Lookup(id string) (Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}
