package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modkit/internal/ctxlog"
	"github.com/vk/modkit/internal/plugin"
	"github.com/vk/modkit/internal/registry"
	"github.com/vk/modkit/internal/testutil"
)

type counter struct {
	plugin.SortablePlugin
	Count int `param:"" min:"0" max:"10"`
}

type counterModule struct{}

func (counterModule) Register(r *registry.Registry) {
	r.RegisterModule(plugin.InfoFor[counter]("counter", "Counter"))
}

func TestNewAppRegistersCoreModules(t *testing.T) {
	a, logs := SetupAppTest(t, Config{})

	for _, id := range []string{"print", "env_vars", "threshold.float", "threshold.int"} {
		_, ok := a.Registry().Module(id)
		assert.True(t, ok, "module %s", id)
	}
	require.NoError(t, a.Validate())
	assert.Contains(t, logs.String(), "All Go modules registered.")
	assert.Same(t, ctxlog.FromContext(a.Context()), a.logger)
}

func TestNewAppAppliesManifests(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"counter.hcl": `
module "counter" {
  title = "Tally"
  parameter "Count" {
    max = 3
  }
}
`})

	a, _ := SetupAppTest(t, Config{ManifestsPath: dir}, counterModule{})

	info, ok := a.Registry().Plugin("counter")
	require.True(t, ok)
	assert.Equal(t, "Tally", info.Title)

	mi, ok := a.Registry().Module("counter")
	require.True(t, ok)
	item, err := mi.Item("Count")
	require.NoError(t, err)
	hi, err := item.MaximumValue()
	require.NoError(t, err)
	assert.Equal(t, 3, hi)
}

func TestNewAppFailsOnBrokenManifest(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"bad.hcl": `module "counter" {`})

	cfg, err := NewConfig(Config{ManifestsPath: dir})
	require.NoError(t, err)
	_, err = NewApp(t.Context(), &testutil.SafeBuffer{}, cfg, counterModule{})
	assert.ErrorContains(t, err, "failed to load manifests")
}

func TestScripts(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"plain/Top.py":                 "",
		"plain/Analyze/Count_Cells.py": "",
		"plain/Analyze/Measure.ijm":    "",
		"extra/Tidy.py":                "",
	})
	plain := filepath.Join(root, "plain")
	extra := filepath.Join(root, "extra")

	a, _ := SetupAppTest(t, Config{
		ScriptDirs:       []string{plain, extra},
		ScriptExtensions: []string{".py"},
		MenuPrefixes:     map[string]string{extra: "Plugins > Extra"},
	})

	scripts, err := a.Scripts()
	require.NoError(t, err)

	menus := make([]string, 0, len(scripts))
	for _, s := range scripts {
		menus = append(menus, s.MenuPath.String())
	}
	assert.Equal(t, []string{"Analyze > Count Cells", "Plugins > Extra > Tidy"}, menus)

	scripts, err = a.Scripts(plain)
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, "Count Cells", scripts[0].Title())
}

func TestBundledManifests(t *testing.T) {
	a, _ := SetupAppTest(t, Config{ManifestsPath: filepath.Join("..", "..", "modules")})
	require.NoError(t, a.Validate())

	info, ok := a.Registry().Plugin("print")
	require.True(t, ok)
	assert.Equal(t, "Print Values", info.Title)

	mi, ok := a.Registry().Module("threshold.float")
	require.True(t, ok)
	level, err := mi.Item("Level")
	require.NoError(t, err)
	step, err := level.StepSize()
	require.NoError(t, err)
	assert.Equal(t, "0.25", step.Text('g', -1))

	pm, ok := a.Registry().Module("print")
	require.True(t, ok)
	indent, err := pm.Item("Indent")
	require.NoError(t, err)
	hi, err := indent.MaximumValue()
	require.NoError(t, err)
	assert.Equal(t, 8, hi)
	unit, ok := indent.Get("unit")
	assert.True(t, ok)
	assert.Equal(t, "spaces", unit)
}
