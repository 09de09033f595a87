package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dawglabs/dawglog/formatter"
	"github.com/dawglabs/dawglog/sink"
)

// DefaultAppName identifies the application when no name is configured
const DefaultAppName = "DawgLog"

// Config holds the logger settings loaded from a configuration file.
// A Config is always fully populated: any missing or unparseable field
// resolves to its default, never to a partially invalid state.
type Config struct {
	Sink    sink.Type
	Format  formatter.Type
	AppName string
}

// Default returns the built-in configuration: console sink, text
// format, app name "DawgLog"
func Default() Config {
	return Config{
		Sink:    sink.Console,
		Format:  formatter.Text,
		AppName: DefaultAppName,
	}
}

// rawConfig mirrors the on-disk file shape. All keys are optional.
type rawConfig struct {
	Sink    string `json:"sink" yaml:"sink"`
	Format  string `json:"format" yaml:"format"`
	AppName string `json:"app_name" yaml:"app_name"`
}

// Load reads logger configuration from the file at path. JSON is the
// primary format; files ending in .yaml or .yml are decoded as YAML
// with the same keys. A missing or unparseable file yields the full
// default Config, with a diagnostic printed to stderr — never through
// the logging system itself, which may not exist yet.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dawglog: failed to open config file %s: %v\n", path, err)
		fmt.Fprintln(os.Stderr, "dawglog: using default settings (sink=console, format=text, app_name=DawgLog)")
		return Default()
	}

	var raw rawConfig
	if isYAML(path) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dawglog: failed to parse config file %s: %v\n", path, err)
		fmt.Fprintln(os.Stderr, "dawglog: using default settings (sink=console, format=text, app_name=DawgLog)")
		return Default()
	}

	cfg := Default()
	if raw.Sink != "" {
		cfg.Sink = sink.ParseType(raw.Sink)
	}
	if raw.Format != "" {
		cfg.Format = formatter.ParseType(raw.Format)
	}
	if raw.AppName != "" {
		cfg.AppName = raw.AppName
	}
	return cfg
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
