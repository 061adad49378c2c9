package config

import (
	"embed"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed config.toml
var configFile embed.FS

type Project struct {
	Root  string `toml:"root"`
	Entry string `toml:"entry"`
}

type Interpreter struct {
	Path         string `toml:"path"`
	FaultHandler bool   `toml:"fault_handler"`
	Unbuffered   bool   `toml:"unbuffered"`
}

type Run struct {
	Pause    bool `toml:"pause"`
	FailFast bool `toml:"fail_fast"`
}

type Config struct {
	Project     Project           `toml:"project"`
	Interpreter Interpreter       `toml:"interpreter"`
	Env         map[string]string `toml:"env"`
	Run         Run               `toml:"run"`
}

func LoadEmbeddedConfig() Config {
	var config Config
	data, err := configFile.ReadFile("config.toml")
	if err != nil {
		log.Fatalf("Failed to read embedded config: %v", err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		log.Fatalf("Failed to parse embedded config: %v", err)
	}
	return config
}

// LoadConfigFromFile reads filePath on top of the embedded defaults, so a
// partial file keeps the default interpreter switches and the pause gate.
func LoadConfigFromFile(filePath string) Config {
	config := LoadEmbeddedConfig()
	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}
	return config
}

// Resolve fills in platform defaults and makes the project root absolute.
// The absolute root doubles as the PYTHONPATH value handed to the child.
func (c *Config) Resolve() error {
	if c.Project.Root == "" {
		c.Project.Root = "."
	}
	if c.Project.Entry == "" {
		c.Project.Entry = "main.py"
	}
	if c.Interpreter.Path == "" {
		c.Interpreter.Path = defaultInterpreter
	}

	absRoot, err := filepath.Abs(c.Project.Root)
	if err != nil {
		return err
	}
	c.Project.Root = absRoot
	return nil
}
