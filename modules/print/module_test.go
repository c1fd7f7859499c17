package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modkit/internal/registry"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name string
		p    Print
		want string
	}{
		{"nil map", Print{}, "(null)\n"},
		{"sorted", Print{Value: map[string]string{"b": "2", "a": "1"}}, "a = 1\nb = 2\n"},
		{"quoted with indent", Print{Value: map[string]string{"k": "v"}, Indent: 2, Quote: true, Prefix: "> "}, "  > k = \"v\"\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.p.Run(context.Background(), &buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRegisteredParameters(t *testing.T) {
	r := registry.New()
	r.RegisterAll(&Module{})
	require.NoError(t, r.ValidateRegistry(context.Background()))

	mi, ok := r.Module("print")
	require.True(t, ok)
	indent, err := mi.Item("Indent")
	require.NoError(t, err)

	hi, err := indent.MaximumValue()
	require.NoError(t, err)
	assert.Equal(t, 12, hi)
	assert.Equal(t, 2, indent.ColumnCount())
	assert.False(t, indent.IsRequired())

	value, err := mi.Item("Value")
	require.NoError(t, err)
	assert.True(t, value.IsRequired())
}
