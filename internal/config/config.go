package config

// Config represents the main ctrlq configuration
type Config struct {
	// Queue
	Queue QueueConfig `json:"queue" mapstructure:"queue"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Metrics
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`
}

// QueueConfig holds command queue configuration
type QueueConfig struct {
	Strategy string   `json:"strategy" mapstructure:"strategy"` // bucket, heap
	Classes  []string `json:"classes" mapstructure:"classes"`   // ordered, highest rank first
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// MetricsConfig holds the metrics endpoint configuration
type MetricsConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Host    string `json:"host" mapstructure:"host"`
	Port    int    `json:"port" mapstructure:"port"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Queue: QueueConfig{
			Strategy: "bucket",
			Classes:  []string{"HIGH", "NORMAL"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			Pretty:  true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    9290,
		},
	}
}
