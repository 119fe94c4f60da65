// Package usage accumulates the external resources a compilation run ends up
// depending on: built-in fonts, declared font assets, and optional companion
// components. The downstream emitter reads it to decide what to link in.
//
// A Context is created fresh per compilation run and passed explicitly
// through every validator call; there is no package-level state to leak
// between runs.
package usage

import "sort"

// Context is the append-only resource record for one compilation run.
// It is not safe for concurrent use; parallel compilation of independent
// subtrees should use one Context per task and Merge the results.
type Context struct {
	builtinFonts map[string]struct{}
	fontAssets   map[string]struct{}
	components   map[string]struct{}
}

// New creates an empty Context.
func New() *Context {
	return &Context{
		builtinFonts: make(map[string]struct{}),
		fontAssets:   make(map[string]struct{}),
		components:   make(map[string]struct{}),
	}
}

// AddBuiltinFont records a built-in font referenced by name. Recording the
// same name twice is a no-op.
func (c *Context) AddBuiltinFont(name string) {
	c.builtinFonts[name] = struct{}{}
}

// AddFontAsset records a declared font asset referenced by identifier.
func (c *Context) AddFontAsset(id string) {
	c.fontAssets[id] = struct{}{}
}

// RequireComponent records an optional companion component the emitted code
// will need at runtime, e.g. "font" or "color".
func (c *Context) RequireComponent(name string) {
	c.components[name] = struct{}{}
}

// BuiltinFonts returns the referenced built-in font names, sorted.
func (c *Context) BuiltinFonts() []string {
	return sortedKeys(c.builtinFonts)
}

// FontAssets returns the referenced font asset identifiers, sorted.
func (c *Context) FontAssets() []string {
	return sortedKeys(c.fontAssets)
}

// Components returns the required companion component names, sorted.
func (c *Context) Components() []string {
	return sortedKeys(c.components)
}

// Merge folds another Context's records into this one. Intended for
// combining per-task contexts should compilation ever become parallel.
func (c *Context) Merge(other *Context) {
	for k := range other.builtinFonts {
		c.builtinFonts[k] = struct{}{}
	}
	for k := range other.fontAssets {
		c.fontAssets[k] = struct{}{}
	}
	for k := range other.components {
		c.components[k] = struct{}{}
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
