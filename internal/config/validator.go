package config

import (
	"fmt"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the full configuration
func (v *Validator) Validate(cfg *Config) error {
	if err := v.ValidateStrategy(cfg.Queue.Strategy); err != nil {
		return err
	}
	if err := v.ValidateClasses(cfg.Queue.Classes); err != nil {
		return err
	}
	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ValidateStrategy validates a queue strategy name
func (v *Validator) ValidateStrategy(strategy string) error {
	switch strategy {
	case "bucket", "heap":
		return nil
	default:
		return fmt.Errorf("unknown queue strategy %q (must be bucket or heap)", strategy)
	}
}

// ValidateClasses validates the ordered priority class list
func (v *Validator) ValidateClasses(classes []string) error {
	if len(classes) == 0 {
		return fmt.Errorf("priority class list cannot be empty")
	}

	seen := make(map[string]bool, len(classes))
	for _, class := range classes {
		if strings.TrimSpace(class) == "" {
			return fmt.Errorf("priority class name cannot be blank")
		}
		if seen[class] {
			return fmt.Errorf("duplicate priority class %q", class)
		}
		seen[class] = true
	}

	return nil
}

// ValidateLogLevel validates a log level name
func (v *Validator) ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", level)
	}
}
