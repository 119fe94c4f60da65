package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a YAML document into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runApp(t *testing.T, config Config) (string, error) {
	t.Helper()
	cfg, err := NewConfig(config)
	require.NoError(t, err)

	var out bytes.Buffer
	err = NewApp(&out, cfg).Run(context.Background())
	return out.String(), err
}

func TestCheckEmitsExpressions(t *testing.T) {
	path := writeConfig(t, `
declare:
  temp: sensor
  accent: color
  heading: font
widgets:
  - type: label
    id: greeting
    text: "hello"
    text_color: accent
    text_font: heading
    width: size_content
    height: 50%
  - type: meter
    value: temp
    opa: 0.5
    text_font: montserrat_14
`)

	out, err := runApp(t, Config{Mode: ModeCheck, ConfigPath: path, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)

	assert.Contains(t, out, `greeting.text = "hello"`)
	assert.Contains(t, out, "greeting.text_color = lv_color_from(accent)")
	assert.Contains(t, out, "greeting.text_font = heading_engine->get_lv_font()")
	assert.Contains(t, out, "greeting.width = LV_SIZE_CONTENT")
	assert.Contains(t, out, "greeting.height = lv_pct(50)")
	assert.Contains(t, out, "widgets[1].value = temp->get_state()")
	assert.Contains(t, out, "widgets[1].opa = 127")
	assert.Contains(t, out, "widgets[1].text_font = &lv_font_montserrat_14")

	assert.Contains(t, out, "builtin fonts: [montserrat_14]")
	assert.Contains(t, out, "font assets: [heading]")
	assert.Contains(t, out, "required components: [color font]")
}

func TestCheckDirectorySharesOneRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01_declare.yaml"), []byte(`
declare:
  accent: color
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02_widgets.yaml"), []byte(`
widgets:
  - type: label
    text_color: accent
`), 0o644))

	out, err := runApp(t, Config{Mode: ModeCheck, ConfigPath: dir, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	assert.Contains(t, out, "lv_color_from(accent)")
	assert.Contains(t, out, "required components: [color]")
}

func TestCheckRejectsBadValue(t *testing.T) {
	path := writeConfig(t, `
widgets:
  - type: label
    width: abc
`)

	_, err := runApp(t, Config{Mode: ModeCheck, ConfigPath: path, LogLevel: "info", LogFormat: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets[0].width")
	assert.Contains(t, err.Error(), "size_content")
}

func TestCheckRejectsUnknownProperty(t *testing.T) {
	path := writeConfig(t, `
widgets:
  - type: label
    sparkle: 3
`)

	_, err := runApp(t, Config{Mode: ModeCheck, ConfigPath: path, LogLevel: "info", LogFormat: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown widget property")
}

func TestCheckRejectsUnknownReference(t *testing.T) {
	path := writeConfig(t, `
widgets:
  - type: label
    text_font: nonexistent_font
`)

	_, err := runApp(t, Config{Mode: ModeCheck, ConfigPath: path, LogLevel: "info", LogFormat: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent_font")
}

func TestCheckFormatText(t *testing.T) {
	path := writeConfig(t, `
declare:
  temp: sensor
widgets:
  - type: label
    text:
      format: "%.1f deg"
      args: [temp]
`)

	out, err := runApp(t, Config{Mode: ModeCheck, ConfigPath: path, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	assert.Contains(t, out, `str_sprintf("%.1f deg", temp).c_str()`)
}

func TestCheckLambdaColor(t *testing.T) {
	path := writeConfig(t, `
widgets:
  - type: label
    text_color: !lambda current_theme.accent
`)

	out, err := runApp(t, Config{Mode: ModeCheck, ConfigPath: path, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	assert.Contains(t, out, "widgets[0].text_color = current_theme.accent")
}

func TestDescribeAll(t *testing.T) {
	out, err := runApp(t, Config{Mode: ModeDescribe, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	assert.Contains(t, out, "opacity (uint32):")
	assert.Contains(t, out, "size (uint32):")
	assert.Contains(t, out, "  - size_content")
}

func TestDescribeSingleProperty(t *testing.T) {
	out, err := runApp(t, Config{Mode: ModeDescribe, Property: "zoom", LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	assert.Contains(t, out, "zoom (uint32):")
	assert.NotContains(t, out, "opacity")
}

func TestDescribeUnknownProperty(t *testing.T) {
	_, err := runApp(t, Config{Mode: ModeDescribe, Property: "glitter", LogLevel: "info", LogFormat: "text"})
	assert.ErrorContains(t, err, "unknown property kind")
}

func TestNewConfigValidation(t *testing.T) {
	_, err := NewConfig(Config{Mode: ModeCheck})
	assert.Error(t, err)

	_, err = NewConfig(Config{Mode: "compile"})
	assert.Error(t, err)

	cfg, err := NewConfig(Config{Mode: ModeDescribe})
	require.NoError(t, err)
	assert.Equal(t, ModeDescribe, cfg.Mode)
}
