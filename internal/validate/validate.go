// Package validate implements the per-property validators of the widget code
// generator. Each validator checks the shape and range of one human-authored
// configuration value, converts it into a canonical form, and emits the
// target-language expression that reproduces the value at runtime.
//
// Validators are constructed once at package load and are immutable; all
// per-run mutable state (declared entities, resource usage) lives in the
// Context passed through every call.
package validate

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/widgengo/internal/ctxlog"
	"github.com/vk/widgengo/internal/entity"
	"github.com/vk/widgengo/internal/expr"
	"github.com/vk/widgengo/internal/usage"
)

// Context is the explicit compilation-run state threaded through every
// validator call: the entities declared so far and the resources the emitted
// expressions end up requiring. Create one per run; never share across runs.
type Context struct {
	Entities *entity.Registry
	Usage    *usage.Context
}

// NewContext creates a run context over the given entity registry with an
// empty usage record.
func NewContext(entities *entity.Registry) *Context {
	return &Context{Entities: entities, Usage: usage.New()}
}

// Rule checks one raw configuration value and converts it to a canonical
// in-memory form. The returned value is one of the validator's input-shape
// variants (or an entity.Entity for dynamic-source references); the paired
// Mapper must be total over everything the Rule can return.
type Rule func(cc *Context, raw cty.Value, path cty.Path) (any, error)

// Mapper turns a validated value into an emitted expression. Mappers may
// record required resources in cc.Usage; they must not fail, since rules
// fully reject anything they cannot represent.
type Mapper func(cc *Context, v any) expr.Expr

// DynamicSource declares that a validator accepts references to declared
// entities of the given kind, substituting the accessor expression for a
// static literal at emit time.
type DynamicSource struct {
	Kind     entity.Kind
	Accessor string
}

// Config assembles a Validator from its function values. Irregular property
// kinds supply custom Rules and Mappers; there is no subclassing.
type Config struct {
	// Name identifies the property kind, e.g. "opacity".
	Name string
	// Target names the runtime type the emitted expression produces.
	Target string
	// Shapes are the accepted-shape descriptions returned by Describe.
	Shapes []string
	// Rule validates and canonicalizes raw input. Required.
	Rule Rule
	// Source, if set, enables dynamic-source references of the given kind.
	Source *DynamicSource
	// Mapper converts validated values to expressions. Nil means the default
	// literal mapper, which handles strings, integers, floats, booleans and
	// ready-made expressions.
	Mapper Mapper
}

// Validator pairs a validation rule with its conversion to target-language
// expressions for one property kind. Immutable after construction.
type Validator struct {
	name   string
	target string
	shapes []string
	rule   Rule
	source *DynamicSource
	mapper Mapper
}

// New builds a Validator from its configuration.
func New(cfg Config) *Validator {
	if cfg.Rule == nil {
		panic(fmt.Sprintf("validator %q constructed without a rule", cfg.Name))
	}
	return &Validator{
		name:   cfg.Name,
		target: cfg.Target,
		shapes: cfg.Shapes,
		rule:   cfg.Rule,
		source: cfg.Source,
		mapper: cfg.Mapper,
	}
}

// Validated is a value accepted by a Validator, ready for Emit. Opaque to
// callers; it is owned by them only to hand back to the same validator.
type Validated struct {
	value any
}

// Name returns the property kind this validator handles.
func (v *Validator) Name() string { return v.name }

// Target returns the runtime type name of emitted expressions.
func (v *Validator) Target() string { return v.target }

// Validate checks a raw configuration value. On failure the error names the
// field path and the accepted shapes; it is the caller's job to report it
// and abort that configuration's compilation. Validate never touches the
// usage record.
func (v *Validator) Validate(ctx context.Context, cc *Context, raw cty.Value, path cty.Path) (Validated, error) {
	logger := ctxlog.FromContext(ctx)
	val, err := v.rule(cc, raw, path)
	if err != nil {
		logger.Debug("Validation rejected value.", "validator", v.name, "path", PathString(path), "error", err)
		return Validated{}, err
	}
	logger.Debug("Validation accepted value.", "validator", v.name, "path", PathString(path))
	return Validated{value: val}, nil
}

// Describe returns the accepted-shape descriptions for documentation and
// autocomplete tooling. It never validates, never fails, and never mutates
// run state.
func (v *Validator) Describe() []string {
	out := make([]string, len(v.shapes))
	copy(out, v.shapes)
	return out
}

// Emit converts a validated value into its target-language expression. If
// the value is a reference to a declared entity matching this validator's
// dynamic-source capability, the accessor expression is emitted instead of
// running the mapper. Emit may record required resources in cc.Usage.
func (v *Validator) Emit(ctx context.Context, cc *Context, val Validated) expr.Expr {
	if ref, ok := val.value.(entity.Entity); ok && v.source != nil && ref.Kind == v.source.Kind {
		ctxlog.FromContext(ctx).Debug("Emitting dynamic-source accessor.", "validator", v.name, "entity", ref.ID)
		return expr.Raw(fmt.Sprintf("%s->%s", ref.ID, v.source.Accessor))
	}
	if v.mapper != nil {
		return v.mapper(cc, val.value)
	}
	return literalMapper(cc, val.value)
}

// literalMapper is the default conversion for validators whose rules already
// produce directly-renderable values.
func literalMapper(_ *Context, v any) expr.Expr {
	switch t := v.(type) {
	case expr.Expr:
		return t
	case string:
		return expr.Literal(t)
	case int64:
		return expr.Int(t)
	case float64:
		return expr.Float(t)
	case bool:
		return expr.Bool(t)
	default:
		// Rules are total over their accepted shapes; reaching this is a
		// programming error in the validator definition.
		panic(fmt.Sprintf("validate: no literal form for %T", v))
	}
}

// anyOf composes rules with one-of semantics: each rule is tried in order
// and the first success wins. Range and unknown-reference failures are
// definitive (the value matched a shape but was unusable) and propagate
// immediately; pure shape mismatches fall through to the next rule. If
// nothing matches, the error lists the union of accepted shapes.
func anyOf(shapes []string, rules ...Rule) Rule {
	return func(cc *Context, raw cty.Value, path cty.Path) (any, error) {
		for _, rule := range rules {
			val, err := rule(cc, raw, path)
			if err == nil {
				return val, nil
			}
			if isDefinitive(err) {
				return nil, err
			}
		}
		return nil, &ShapeMismatchError{Path: path, Got: describeValue(raw), Accepted: shapes}
	}
}
