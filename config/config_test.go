package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawglabs/dawglog/formatter"
	"github.com/dawglabs/dawglog/sink"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := Load("/nonexistent/dawglog.json")

	assert.Equal(t, Config{
		Sink:    sink.Console,
		Format:  formatter.Text,
		AppName: "DawgLog",
	}, cfg)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"sink":"syslog","format":"json","app_name":"MyService"}`)

	cfg := Load(path)

	assert.Equal(t, sink.Syslog, cfg.Sink)
	assert.Equal(t, formatter.JSON, cfg.Format)
	assert.Equal(t, "MyService", cfg.AppName)
}

func TestLoad_PartialJSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"format":"json"}`)

	cfg := Load(path)

	assert.Equal(t, sink.Console, cfg.Sink)
	assert.Equal(t, formatter.JSON, cfg.Format)
	assert.Equal(t, "DawgLog", cfg.AppName)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"sink": "console",`)

	cfg := Load(path)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownEnumValues(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"sink":"carrier-pigeon","format":"xml","app_name":"App"}`)

	cfg := Load(path)

	assert.Equal(t, sink.Console, cfg.Sink)
	assert.Equal(t, formatter.Text, cfg.Format)
	assert.Equal(t, "App", cfg.AppName)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "sink: syslog\nformat: json\napp_name: YamlApp\n")

	cfg := Load(path)

	assert.Equal(t, sink.Syslog, cfg.Sink)
	assert.Equal(t, formatter.JSON, cfg.Format)
	assert.Equal(t, "YamlApp", cfg.AppName)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "cfg.yml", "sink: [unclosed\n")

	cfg := Load(path)

	assert.Equal(t, Default(), cfg)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, sink.Console, cfg.Sink)
	assert.Equal(t, formatter.Text, cfg.Format)
	assert.Equal(t, DefaultAppName, cfg.AppName)
}
