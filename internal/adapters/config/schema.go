package config

// SupportedVersion is the only config schema version understood by the loader.
const SupportedVersion = "1"

// Bookfile represents the structure of the scorebook.yaml configuration file.
type Bookfile struct {
	Version string   `yaml:"version"`
	Book    string   `yaml:"book"`
	Log     LogDTO   `yaml:"log"`
	Flush   FlushDTO `yaml:"flush"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	JSON  bool   `yaml:"json"`
	Level string `yaml:"level"`
}

// FlushDTO represents the flush section of the configuration.
type FlushDTO struct {
	Concurrency int `yaml:"concurrency"`
}
