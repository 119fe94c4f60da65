package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/widgengo/internal/ctxlog"
	"github.com/vk/widgengo/internal/validate"
)

// App runs one tool invocation against the validation core.
type App struct {
	out    io.Writer
	config *Config
}

// NewApp creates an App writing its report to out.
func NewApp(out io.Writer, config *Config) *App {
	return &App{out: out, config: config}
}

// Run executes the configured mode. The returned error is already
// user-presentable; the CLI layer only decides the exit code.
func (a *App) Run(ctx context.Context) error {
	logger := newLogger(a.config.LogLevel, a.config.LogFormat, io.Discard)
	if a.config.LogLevel == "debug" {
		logger = newLogger(a.config.LogLevel, a.config.LogFormat, a.out)
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	switch a.config.Mode {
	case ModeDescribe:
		return a.describe()
	case ModeCheck:
		return a.check(ctx)
	default:
		return fmt.Errorf("unknown mode %q", a.config.Mode)
	}
}

// describe prints the accepted shapes of one or all property kinds. This is
// the documentation-mode surface; it never validates anything.
func (a *App) describe() error {
	names := validate.Names()
	if a.config.Property != "" {
		if _, ok := validate.ByName(a.config.Property); !ok {
			return fmt.Errorf("unknown property kind %q; known kinds: %v", a.config.Property, names)
		}
		names = []string{a.config.Property}
	}

	for _, name := range names {
		v, _ := validate.ByName(name)
		fmt.Fprintf(a.out, "%s (%s):\n", name, v.Target())
		for _, shape := range v.Describe() {
			fmt.Fprintf(a.out, "  - %s\n", shape)
		}
	}
	return nil
}
