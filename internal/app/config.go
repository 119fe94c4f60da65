package app

import "errors"

// Mode selects what an App invocation does.
type Mode string

const (
	// ModeCheck validates a YAML property document and prints the emitted
	// expressions.
	ModeCheck Mode = "check"
	// ModeDescribe prints the accepted shapes of one or all property kinds.
	ModeDescribe Mode = "describe"
)

// Config holds everything an App instance needs to run.
type Config struct {
	Mode       Mode
	ConfigPath string // check mode: the YAML document to validate
	Property   string // describe mode: one property kind, or "" for all

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Mode {
	case ModeCheck:
		if cfg.ConfigPath == "" {
			return nil, errors.New("check mode requires a configuration file path")
		}
	case ModeDescribe:
		// Property may be empty, meaning all.
	default:
		return nil, errors.New("mode must be check or describe")
	}
	return &cfg, nil
}
