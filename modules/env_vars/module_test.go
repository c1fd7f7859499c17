package env_vars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modkit/internal/registry"
)

func TestRun(t *testing.T) {
	t.Setenv("MODKIT_TEST_ALPHA", "1")
	t.Setenv("MODKIT_TEST_BETA", "two=2")

	e := &EnvVars{Prefix: "MODKIT_TEST_"}
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, map[string]string{"MODKIT_TEST_ALPHA": "1", "MODKIT_TEST_BETA": "two=2"}, e.All)

	e.StripName = true
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, "two=2", e.All["BETA"])
}

func TestRegistration(t *testing.T) {
	r := registry.New()
	r.RegisterAll(&Module{})
	require.NoError(t, r.ValidateRegistry(context.Background()))

	mi, ok := r.Module("env_vars")
	require.True(t, ok)
	all, err := mi.Item("All")
	require.NoError(t, err)
	assert.True(t, all.IsOutput())
	assert.True(t, all.Is("readonly"))
}
