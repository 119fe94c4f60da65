// Package constset normalizes families of symbolic constant names that share
// a common prefix, e.g. LV_OPA_TRANSP / LV_OPA_COVER under "LV_OPA_". It only
// handles string inputs; unions with numeric or structural shapes are the
// business of the validators that compose it.
package constset

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/expr"
)

// Set is an immutable vocabulary of constant suffixes under a fixed prefix.
// Construct once at module load and share freely.
type Set struct {
	prefix   string
	suffixes []string
}

// New builds a Set. Suffixes are stored in the order given, which is also the
// order Choices reports them in.
func New(prefix string, suffixes ...string) *Set {
	return &Set{prefix: prefix, suffixes: suffixes}
}

// UnknownConstantError reports a string that is not in the set's vocabulary.
type UnknownConstantError struct {
	Path    cty.Path
	Got     string
	Choices []string
}

// Error implements the error interface.
func (e *UnknownConstantError) Error() string {
	return fmt.Sprintf("unknown constant %q, expected one of: %s", e.Got, strings.Join(e.Choices, ", "))
}

// OneOf normalizes a raw configuration string into the full constant token.
// Both the bare suffix ("cover") and the already-prefixed token
// ("LV_OPA_COVER") are accepted, case-insensitively. Anything else fails
// with an UnknownConstantError naming the legal vocabulary.
func (s *Set) OneOf(raw cty.Value, path cty.Path) (expr.Literal, error) {
	if raw.IsNull() || raw.Type() != cty.String {
		return "", &UnknownConstantError{Path: path, Got: raw.Type().FriendlyName(), Choices: s.Choices()}
	}

	name := strings.ToUpper(raw.AsString())
	name = strings.TrimPrefix(name, s.prefix)
	for _, suffix := range s.suffixes {
		if name == suffix {
			return expr.Literal(s.prefix + suffix), nil
		}
	}
	return "", &UnknownConstantError{Path: path, Got: raw.AsString(), Choices: s.Choices()}
}

// Contains reports whether OneOf would accept the value.
func (s *Set) Contains(raw cty.Value) bool {
	_, err := s.OneOf(raw, nil)
	return err == nil
}

// Choices returns the accepted display names, in declaration order, for
// documentation mode.
func (s *Set) Choices() []string {
	out := make([]string, len(s.suffixes))
	for i, suffix := range s.suffixes {
		out[i] = strings.ToLower(suffix)
	}
	return out
}
