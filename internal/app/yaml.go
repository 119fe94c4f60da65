package app

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/vk/widgengo/internal/expr"
)

// yamlToCty converts a parsed YAML node into the cty value model the
// validators consume. The custom !lambda tag wraps its scalar content into
// an inline-expression capsule; everything else maps structurally.
func yamlToCty(node *yaml.Node) (cty.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return cty.NilVal, fmt.Errorf("expected a single YAML document")
		}
		return yamlToCty(node.Content[0])

	case yaml.ScalarNode:
		return yamlScalarToCty(node)

	case yaml.MappingNode:
		attrs := make(map[string]cty.Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return cty.NilVal, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			val, err := yamlToCty(node.Content[i+1])
			if err != nil {
				return cty.NilVal, err
			}
			attrs[key.Value] = val
		}
		if len(attrs) == 0 {
			return cty.EmptyObjectVal, nil
		}
		return cty.ObjectVal(attrs), nil

	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(node.Content))
		for i, child := range node.Content {
			val, err := yamlToCty(child)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = val
		}
		return cty.TupleVal(elems), nil

	case yaml.AliasNode:
		return yamlToCty(node.Alias)

	default:
		return cty.NilVal, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

func yamlScalarToCty(node *yaml.Node) (cty.Value, error) {
	switch node.Tag {
	case "!lambda", "!expr":
		val, err := expr.ParseLambda(node.Value)
		if err != nil {
			return cty.NilVal, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return val, nil
	case "!!null":
		return cty.NullVal(cty.DynamicPseudoType), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return cty.NilVal, fmt.Errorf("line %d: invalid boolean %q", node.Line, node.Value)
		}
		return cty.BoolVal(b), nil
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("line %d: invalid integer %q", node.Line, node.Value)
		}
		return cty.NumberIntVal(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("line %d: invalid float %q", node.Line, node.Value)
		}
		return cty.NumberFloatVal(f), nil
	case "!!str", "":
		return cty.StringVal(node.Value), nil
	default:
		return cty.NilVal, fmt.Errorf("line %d: unsupported YAML tag %s", node.Line, node.Tag)
	}
}
