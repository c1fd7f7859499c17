package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modkit/internal/plugin"
	"github.com/vk/modkit/internal/registry"
	"github.com/vk/modkit/internal/testutil"
)

type gauss struct {
	plugin.SortablePlugin
	Radius float64 `param:"" label:"Radius" min:"0" max:"50" step:"0.5"`
	Mode   string  `param:"" choices:"fast,exact"`
}

type broken struct {
	plugin.SortablePlugin
	Level int `param:"" choices:"low,high"`
}

type partial struct {
	plugin.SortablePlugin
	Good   float64 `param:"" label:"Good" max:"9"`
	hidden int     `param:""`
}

type testModules struct{ withBroken, withPartial bool }

func (m testModules) Register(r *registry.Registry) {
	g := plugin.InfoFor[gauss]("blur.gauss", "Gauss")
	g.Priority = plugin.VeryHigh
	g.MenuPath = "Process > Filters"
	r.RegisterModule(g)
	if m.withBroken {
		r.RegisterModule(plugin.InfoFor[broken]("broken", "Broken"))
	}
	if m.withPartial {
		r.RegisterModule(plugin.InfoFor[partial]("partial", "Partial"))
	}
}

func execute(t *testing.T, mods testModules, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(mods)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPluginsCommand(t *testing.T) {
	out, _, err := execute(t, testModules{}, "plugins")
	require.NoError(t, err)
	assert.Contains(t, out, "blur.gauss")
	assert.Contains(t, out, "very-high")
	assert.Contains(t, out, "Process > Filters")

	out, _, err = execute(t, testModules{}, "plugins", "--kind", plugin.KindService)
	require.NoError(t, err)
	assert.Contains(t, out, "No plugins registered.")
}

func TestParamsCommand(t *testing.T) {
	out, _, err := execute(t, testModules{}, "params", "blur.gauss")
	require.NoError(t, err)
	assert.Contains(t, out, "Radius")
	assert.Contains(t, out, "50")
	assert.Contains(t, out, "fast, exact")

	out, _, err = execute(t, testModules{}, "params", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "Radius (float64):")
	assert.Contains(t, out, "Label:")

	_, _, err = execute(t, testModules{}, "params", "nope")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "unknown module 'nope'")
}

func TestParamsCommandListsValidItemsOfBrokenModule(t *testing.T) {
	out, errOut, err := execute(t, testModules{withPartial: true}, "params")

	assert.Contains(t, out, "blur.gauss", "other modules are still listed")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "9")
	assert.Contains(t, errOut, "module 'partial', parameter 'hidden'")
	assert.Contains(t, errOut, "must be exported")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "partial")
}

func TestParamsCommandShowsManifestOverrides(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"gauss.hcl": `
module "blur.gauss" {
  parameter "Radius" {
    max = 8
  }
}
`})

	out, _, err := execute(t, testModules{}, "--manifests", dir, "params", "blur.gauss")
	require.NoError(t, err)
	assert.Contains(t, out, "8")
	assert.NotContains(t, out, "50")
}

func TestScriptsCommand(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"Image_Tools/Auto_Level.py": "",
		"ignored.py":                "",
	})

	out, _, err := execute(t, testModules{}, "scripts", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Image Tools")
	assert.Contains(t, out, "Auto Level")
	assert.Contains(t, out, "Python")
	assert.NotContains(t, out, "ignored")

	out, _, err = execute(t, testModules{}, "scripts", filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Contains(t, out, "No scripts found.")
}

func TestValidateCommand(t *testing.T) {
	out, _, err := execute(t, testModules{}, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "All 1 modules are valid.")

	_, errOut, err := execute(t, testModules{withBroken: true}, "validate")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "Level")
	assert.Contains(t, errOut, "Validation failed.")
}

func TestInvalidConfigExitsWithUsageCode(t *testing.T) {
	_, _, err := execute(t, testModules{}, "--log-level", "loud", "plugins")
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log level")
}
