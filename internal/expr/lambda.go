package expr

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Lambda is an inline code expression authored directly in the configuration.
// The source text is kept verbatim for pass-through emission; the parsed form
// is retained so later stages can inspect references if they need to.
type Lambda struct {
	Source string
	Expr   hclsyntax.Expression
}

// lambdaCapsule lets a Lambda travel inside a cty.Value alongside ordinary
// scalars, so validators see a single raw-input type.
var lambdaCapsule = cty.Capsule("lambda", reflect.TypeOf(Lambda{}))

// ParseLambda syntax-checks an inline expression and wraps it in a capsule
// value suitable as validator input. The error carries HCL's own diagnostic
// text, which already names the offending token.
func ParseLambda(src string) (cty.Value, error) {
	parsed, diags := hclsyntax.ParseExpression([]byte(src), "<lambda>", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("invalid inline expression: %s", diags.Error())
	}
	return cty.CapsuleVal(lambdaCapsule, &Lambda{Source: src, Expr: parsed}), nil
}

// Variables returns the canonical names of the variables the expression
// references, e.g. "theme.accent", sorted for deterministic output. Useful
// for diagnostics; the generator itself emits the source verbatim.
func (l Lambda) Variables() []string {
	if l.Expr == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, traversal := range l.Expr.Variables() {
		seen[string(hclwrite.TokensForTraversal(traversal).Bytes())] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AsLambda unwraps a capsule value produced by ParseLambda. The second return
// is false for any other value.
func AsLambda(v cty.Value) (Lambda, bool) {
	if v.IsNull() || !v.Type().Equals(lambdaCapsule) {
		return Lambda{}, false
	}
	return *v.EncapsulatedValue().(*Lambda), true
}
