package app

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/vk/widgengo/internal/ctxlog"
	"github.com/vk/widgengo/internal/entity"
	"github.com/vk/widgengo/internal/expr"
	"github.com/vk/widgengo/internal/fsutil"
	"github.com/vk/widgengo/internal/validate"
)

// propertyKinds maps widget property names to the validator kind handling
// them. Widget properties not listed here are rejected.
var propertyKinds = map[string]string{
	"angle":      "angle",
	"bg_color":   "color",
	"bg_opa":     "opacity",
	"border_w":   "pixels_or_percent",
	"duration":   "milliseconds",
	"height":     "size",
	"hidden":     "bool",
	"max_value":  "int",
	"min_value":  "int",
	"opa":        "opacity",
	"radius":     "radius",
	"rotation":   "angle",
	"text":       "text",
	"text_color": "color",
	"text_font":  "font",
	"update_on":  "bool",
	"value":      "float",
	"width":      "size",
	"x":          "pixels_or_percent",
	"y":          "pixels_or_percent",
	"zoom":       "zoom",
}

// document is the checked YAML file: entity declarations plus a list of
// widgets whose properties are run through the validators.
type document struct {
	Declare map[string]string `yaml:"declare"`
	Widgets []yaml.Node       `yaml:"widgets"`
}

// check validates every widget property in the configured file (or every
// YAML file under the configured directory) and prints the emitted
// expressions followed by the resource-usage report. All files share one
// run context: declarations accumulate and the usage report is combined.
func (a *App) check(ctx context.Context) error {
	paths, err := fsutil.FindConfigFiles(a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("locating configuration: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no YAML configuration files found under %s", a.config.ConfigPath)
	}

	cc := validate.NewContext(entity.NewRegistry())
	for _, path := range paths {
		if err := a.checkFile(ctx, cc, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	a.printUsage(cc)
	return nil
}

// checkFile validates one document against the shared run context.
func (a *App) checkFile(ctx context.Context, cc *validate.Context, path string) error {
	ctx = ctxlog.With(ctx, "file", path)
	logger := ctxlog.FromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}
	logger.Debug("Configuration parsed.", "widgets", len(doc.Widgets), "declared", len(doc.Declare))

	declared := make([]string, 0, len(doc.Declare))
	for id := range doc.Declare {
		declared = append(declared, id)
	}
	sort.Strings(declared)
	for _, id := range declared {
		kind, err := entity.ParseKind(doc.Declare[id])
		if err != nil {
			return fmt.Errorf("declare.%s: %w", id, err)
		}
		if err := cc.Entities.Declare(id, kind); err != nil {
			return fmt.Errorf("declare.%s: %w", id, err)
		}
	}

	for i := range doc.Widgets {
		if err := a.checkWidget(ctx, cc, &doc.Widgets[i], i); err != nil {
			return err
		}
	}
	return nil
}

// checkWidget validates one widget block's properties in key order.
func (a *App) checkWidget(ctx context.Context, cc *validate.Context, node *yaml.Node, index int) error {
	basePath := cty.GetAttrPath("widgets").Index(cty.NumberIntVal(int64(index)))

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: widget must be a mapping", validate.PathString(basePath))
	}

	widgetID := fmt.Sprintf("widgets[%d]", index)
	type prop struct {
		name string
		node *yaml.Node
	}
	var props []prop
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "type":
			continue
		case "id":
			widgetID = val.Value
			if err := entity.ValidateID(widgetID); err != nil {
				return fmt.Errorf("%s.id: %w", validate.PathString(basePath), err)
			}
		default:
			props = append(props, prop{name: key.Value, node: val})
		}
	}

	for _, p := range props {
		kind, ok := propertyKinds[p.name]
		if !ok {
			return fmt.Errorf("%s.%s: unknown widget property", validate.PathString(basePath), p.name)
		}
		validator, ok := validate.ByName(kind)
		if !ok {
			return fmt.Errorf("%s.%s: no validator for kind %q", validate.PathString(basePath), p.name, kind)
		}

		raw, err := yamlToCty(p.node)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", validate.PathString(basePath), p.name, err)
		}

		path := basePath.GetAttr(p.name)
		if l, ok := expr.AsLambda(raw); ok {
			ctxlog.FromContext(ctx).Debug("Inline expression.", "path", validate.PathString(path), "references", l.Variables())
		}
		validated, err := validator.Validate(ctx, cc, raw, path)
		if err != nil {
			return err
		}
		emitted := validator.Emit(ctx, cc, validated)
		fmt.Fprintf(a.out, "%s.%s = %s\n", widgetID, p.name, emitted.Render())
	}
	return nil
}

// printUsage reports what the emitted expressions require at link time.
func (a *App) printUsage(cc *validate.Context) {
	if fonts := cc.Usage.BuiltinFonts(); len(fonts) > 0 {
		fmt.Fprintf(a.out, "builtin fonts: %v\n", fonts)
	}
	if assets := cc.Usage.FontAssets(); len(assets) > 0 {
		fmt.Fprintf(a.out, "font assets: %v\n", assets)
	}
	if comps := cc.Usage.Components(); len(comps) > 0 {
		fmt.Fprintf(a.out, "required components: %v\n", comps)
	}
}
