// Package app wires the validation core into a runnable tool: it loads a
// YAML document of widget properties, runs each value through its validator,
// and prints the emitted expressions and the resource-usage report. It also
// exposes the validators' documentation mode.
package app
