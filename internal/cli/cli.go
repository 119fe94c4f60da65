package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/widgengo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("widgengo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
widgengo - validates declarative widget properties and emits their
runtime expressions.

Usage:
  widgengo [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a YAML document with entity declarations and widget properties.

Options:
`)
		flagSet.PrintDefaults()
	}

	checkFlag := flagSet.String("check", "", "Path to the YAML document to validate.")
	describeFlag := flagSet.Bool("describe", false, "Print accepted shapes instead of validating.")
	propertyFlag := flagSet.String("property", "", "Limit -describe to one property kind.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *describeFlag {
		config, err := app.NewConfig(app.Config{
			Mode:      app.ModeDescribe,
			Property:  *propertyFlag,
			LogFormat: logFormat,
			LogLevel:  logLevel,
		})
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		return config, false, nil
	}

	path := *checkFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		Mode:       app.ModeCheck,
		ConfigPath: path,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
