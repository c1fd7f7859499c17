package typeres

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ranged struct {
	Value  any            `param:"" typevar:"T"`
	Marks  []any          `param:"" typevar:"T"`
	Lookup map[string]any `param:"" typevar:"T"`
	Ref    *any           `param:"" typevar:"T"`
	Plain  int            `param:""`
	Bad    int            `param:"" typevar:"T"`
	Empty  any            `param:"" typevar:""`
}

type floatRanged struct{ ranged }

func (floatRanged) TypeArgs() map[string]reflect.Type {
	return map[string]reflect.Type{"T": reflect.TypeFor[float64]()}
}

type intRanged struct{ ranged }

func (intRanged) TypeArgs() map[string]reflect.Type {
	return map[string]reflect.Type{"T": reflect.TypeFor[int]()}
}

type stringOverInt struct{ intRanged }

func (stringOverInt) TypeArgs() map[string]reflect.Type {
	return map[string]reflect.Type{"T": reflect.TypeFor[string]()}
}

type viaPointer struct{ *floatRanged }

type Number interface{ Float() float64 }

type Meters float64

func (m Meters) Float() float64 { return float64(m) }

type Feet float64

func (f Feet) Float() float64 { return float64(f) }

type measured struct {
	Length Number `param:"" typevar:"U"`
}

type boundedMeasure struct{ measured }

func (boundedMeasure) TypeBounds() map[string][]reflect.Type {
	return map[string][]reflect.Type{
		"U": {reflect.TypeFor[any](), reflect.TypeFor[string](), reflect.TypeFor[Meters](), reflect.TypeFor[Feet]()},
	}
}

type feetMeasure struct{ boundedMeasure }

func (feetMeasure) TypeArgs() map[string]reflect.Type {
	return map[string]reflect.Type{"U": reflect.TypeFor[Feet]()}
}

type wrongMeasure struct{ measured }

func (wrongMeasure) TypeArgs() map[string]reflect.Type {
	return map[string]reflect.Type{"U": reflect.TypeFor[string]()}
}

func fieldOf[T any](t *testing.T, name string) (reflect.StructField, reflect.Type) {
	t.Helper()
	owner := reflect.TypeFor[T]()
	f, ok := owner.FieldByName(name)
	require.True(t, ok, "no field %s in %s", name, owner)
	return f, owner
}

func TestResolveBoundArguments(t *testing.T) {
	testCases := []struct {
		name        string
		field       string
		wantType    reflect.Type
		wantGeneric reflect.Type
	}{
		{"whole field", "Value", reflect.TypeFor[float64](), reflect.TypeFor[float64]()},
		{"slice element", "Marks", reflect.TypeFor[[]any](), reflect.TypeFor[[]float64]()},
		{"map value", "Lookup", reflect.TypeFor[map[string]any](), reflect.TypeFor[map[string]float64]()},
		{"pointer element", "Ref", reflect.TypeFor[*any](), reflect.TypeFor[*float64]()},
		{"no type variable", "Plain", reflect.TypeFor[int](), reflect.TypeFor[int]()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, owner := fieldOf[floatRanged](t, tc.field)

			got, err := Resolve(f, owner)
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, got)

			generic, err := ResolveGeneric(f, owner)
			require.NoError(t, err)
			assert.Equal(t, tc.wantGeneric, generic)
		})
	}
}

func TestResolveOuterBindingWins(t *testing.T) {
	f, owner := fieldOf[intRanged](t, "Value")
	got, err := Resolve(f, owner)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[int](), got)

	f, owner = fieldOf[stringOverInt](t, "Value")
	got, err = Resolve(f, owner)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[string](), got)
}

func TestResolveThroughNilEmbeddedPointer(t *testing.T) {
	f, owner := fieldOf[viaPointer](t, "Value")
	got, err := Resolve(f, owner)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[float64](), got)
}

func TestResolveBounds(t *testing.T) {
	t.Run("first resolvable declared bound", func(t *testing.T) {
		// any is skipped as unresolvable and string does not fit the slot.
		f, owner := fieldOf[boundedMeasure](t, "Length")
		got, err := Resolve(f, owner)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[Meters](), got)
	})

	t.Run("explicit argument beats bounds", func(t *testing.T) {
		f, owner := fieldOf[feetMeasure](t, "Length")
		got, err := Resolve(f, owner)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[Feet](), got)
	})

	t.Run("slot interface is the implicit bound", func(t *testing.T) {
		f, owner := fieldOf[measured](t, "Length")
		got, err := Resolve(f, owner)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[Number](), got)
	})
}

func TestResolveErrors(t *testing.T) {
	testCases := []struct {
		name   string
		field  string
		owner  reflect.Type
		reason string
	}{
		{"unbound empty interface", "Value", reflect.TypeFor[ranged](), "no argument bound"},
		{"concrete declared type", "Bad", reflect.TypeFor[floatRanged](), "no interface slot"},
		{"empty variable name", "Empty", reflect.TypeFor[floatRanged](), "empty typevar tag"},
		{"argument violates slot", "Length", reflect.TypeFor[wrongMeasure](), "does not implement"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, ok := tc.owner.FieldByName(tc.field)
			require.True(t, ok)

			_, err := Resolve(f, tc.owner)
			require.Error(t, err)

			var tre *TypeResolutionError
			require.True(t, errors.As(err, &tre))
			assert.Equal(t, tc.field, tre.Field)
			assert.Equal(t, tc.owner, tre.Owner)
			assert.Contains(t, tre.Reason, tc.reason)
			assert.Contains(t, err.Error(), tc.owner.String())

			_, err = ResolveGeneric(f, tc.owner)
			assert.Error(t, err)
		})
	}
}
