package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDescribe(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []string{"-describe"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "opacity (uint32):")
}

func TestRunCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
widgets:
  - type: label
    text: "hi"
`), 0o644))

	var out bytes.Buffer
	err := run(&out, []string{path})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `widgets[0].text = "hi"`)
}

func TestRunNoArgsIsClean(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
widgets:
  - type: label
    width: abc
`), 0o644))

	var out bytes.Buffer
	err := run(&out, []string{path})
	assert.Error(t, err)
}
