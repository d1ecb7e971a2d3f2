package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/jenkins-x-apps/jacoco-cobertura/internal/convert"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	result := filepath.Join(t.TempDir(), "site", "cobertura.xml")

	out, err := execute(t, "--source", "testdata/jacoco.xml", "--result", result, "--path", "/src/main/java/")
	require.NoError(t, err)

	assert.Contains(t, out, "com.example.app")
	assert.Contains(t, out, "Total coverage: 73%")

	data, err := ioutil.ReadFile(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<class name="com.example.app.Greeter" filename="com/example/app/Greeter.java"`)
	assert.Contains(t, string(data), `<source>/src/main/java/</source>`)
}

func TestConvertCommandWithoutSummary(t *testing.T) {
	result := filepath.Join(t.TempDir(), "cobertura.xml")

	out, err := execute(t, "--source", "testdata/jacoco.xml", "--result", result, "--summary=false", "--extension", ".kt")
	require.NoError(t, err)

	assert.Empty(t, out)
	data, err := ioutil.ReadFile(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `filename="com/example/app/Greeter.kt"`)
}

func TestConvertCommandPropertiesFile(t *testing.T) {
	dir := t.TempDir()
	result := filepath.Join(dir, "cobertura.xml")
	properties := filepath.Join(dir, "cobertura.properties")
	require.NoError(t, ioutil.WriteFile(properties, []byte("source=testdata/jacoco.xml\nresult="+result+"\nsummary=false\n"), 0644))

	_, err := execute(t, "--config", properties)
	require.NoError(t, err)

	_, err = ioutil.ReadFile(result)
	assert.NoError(t, err)
}

func TestConvertCommandMissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--source", filepath.Join(dir, "missing.xml"), "--result", filepath.Join(dir, "cobertura.xml"))

	require.Error(t, err)
	var ioErr *convert.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestConvertCommandRejectsArguments(t *testing.T) {
	_, err := execute(t, "jacoco.xml")
	assert.Error(t, err)
}
