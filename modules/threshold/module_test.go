package threshold

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modkit/internal/plugin"
	"github.com/vk/modkit/internal/registry"
)

func TestLevelTypePerVariant(t *testing.T) {
	r := registry.New()
	r.RegisterAll(&Module{})
	require.NoError(t, r.ValidateRegistry(context.Background()))

	testCases := []struct {
		id       string
		wantType reflect.Type
		wantMax  any
	}{
		{"threshold.float", reflect.TypeFor[float64](), 255.0},
		{"threshold.int", reflect.TypeFor[int](), 255},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			mi, ok := r.Module(tc.id)
			require.True(t, ok)

			level, err := mi.Item("Level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, level.Type())

			hi, err := level.MaximumValue()
			require.NoError(t, err)
			assert.Equal(t, tc.wantMax, hi)

			background, err := mi.Item("Background")
			require.NoError(t, err)
			assert.False(t, background.IsRequired())

			method, err := mi.Item("Method")
			require.NoError(t, err)
			choices, err := method.Choices()
			require.NoError(t, err)
			assert.Equal(t, []any{Fixed, Percent}, choices)
		})
	}

	assert.Equal(t, []string{"threshold.float", "threshold.int"}, []string{
		r.Plugins(plugin.KindModule)[0].ID,
		r.Plugins(plugin.KindModule)[1].ID,
	})
}

func TestRun(t *testing.T) {
	f := &Float{}
	f.Level = 2.5
	f.Data = []float64{1, 2, 3, 4}
	require.NoError(t, f.Run(context.Background()))
	assert.Equal(t, []bool{false, false, true, true}, f.Mask)

	i := &Int{}
	i.Level = 50
	i.Method = Percent
	i.Data = []float64{4, 1, 3, 2}
	require.NoError(t, i.Run(context.Background()))
	assert.Equal(t, []bool{true, false, false, false}, i.Mask)

	assert.ErrorContains(t, (&Float{}).Run(context.Background()), "not set")
}

func TestLevelChangedThroughItem(t *testing.T) {
	r := registry.New()
	r.RegisterAll(&Module{})

	p, err := r.Instantiate("threshold.int")
	require.NoError(t, err)
	mi, _ := r.Module("threshold.int")
	level, err := mi.Item("Level")
	require.NoError(t, err)

	require.NoError(t, level.SetValue(p, 128))
	assert.Error(t, level.SetValue(p, 0.5), "float is not an int level")

	th := p.(*Int)
	th.LevelChanged()
	assert.Equal(t, "level set to 128", th.Status)
}
