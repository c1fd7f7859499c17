// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package coerce converts literal strings, as declared in parameter metadata,
// into values of a target Go type.
//
// An empty literal means "not specified" and coerces to nil rather than to a
// zero value. Primitive kinds (bool, integers, floats, strings, named or not)
// go through go-cty: the literal is converted to the target's implied cty type
// and decoded with gocty, which rejects fractions for integer targets and
// values out of the target's range. Other types are reached through
// registered parse functions, the param.Enumerated interface or
// encoding.TextUnmarshaler.
package coerce

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/vk/modkit/internal/param"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ParseFunc parses a literal into a value of the type it was registered for.
type ParseFunc func(literal string) (any, error)

// Coercer converts literals to typed values. It is safe for concurrent use.
type Coercer struct {
	mu      sync.RWMutex
	parsers map[reflect.Type]ParseFunc
}

// New returns a Coercer with the default parse functions registered.
func New() *Coercer {
	c := &Coercer{parsers: make(map[reflect.Type]ParseFunc)}
	c.Register(reflect.TypeFor[time.Duration](), func(s string) (any, error) {
		return time.ParseDuration(s)
	})
	return c
}

// Register installs fn as the parser for t, replacing any previous one.
// Registered parsers take precedence over every other coercion path.
func (c *Coercer) Register(t reflect.Type, fn ParseFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parsers[t] = fn
}

func (c *Coercer) parser(t reflect.Type) (ParseFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.parsers[t]
	return fn, ok
}

// Default is the Coercer used by the package-level functions.
var Default = New()

// Coerce converts literal with the Default coercer.
func Coerce(literal string, target reflect.Type) (any, error) {
	return Default.Coerce(literal, target)
}

// CoerceNumber converts literal to an arbitrary-precision number.
func CoerceNumber(literal string) (*big.Float, error) {
	return Default.CoerceNumber(literal)
}

// Coerce converts literal to a value of type target. An empty literal yields
// (nil, nil). Pointer targets receive a pointer to a freshly coerced value.
func (c *Coercer) Coerce(literal string, target reflect.Type) (any, error) {
	if literal == "" {
		return nil, nil
	}
	if target == nil {
		return nil, &CoercionError{Literal: literal, Err: errors.New("no target type")}
	}
	v, err := c.value(literal, target)
	if err != nil {
		return nil, &CoercionError{Literal: literal, Target: target, Err: err}
	}
	return v.Interface(), nil
}

// CoerceNumber converts literal to a number independent of any concrete
// numeric Go type. An empty literal yields (nil, nil).
func (c *Coercer) CoerceNumber(literal string) (*big.Float, error) {
	if literal == "" {
		return nil, nil
	}
	val, err := cty.ParseNumberVal(literal)
	if err != nil {
		return nil, &CoercionError{Literal: literal, Target: numberType, Err: err}
	}
	return val.AsBigFloat(), nil
}

var (
	numberType          = reflect.TypeFor[*big.Float]()
	stringType          = reflect.TypeFor[string]()
	enumeratedType      = reflect.TypeFor[param.Enumerated]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func (c *Coercer) value(literal string, t reflect.Type) (reflect.Value, error) {
	if fn, ok := c.parser(t); ok {
		return c.parsed(fn, literal, t)
	}

	if t.Kind() == reflect.Pointer {
		elem, err := c.value(literal, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(elem)
		return p, nil
	}

	if names, ok := enumValues(t); ok {
		return enumValue(literal, t, names)
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		p := reflect.New(t)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(literal)); err != nil {
			return reflect.Value{}, err
		}
		return p.Elem(), nil
	}

	switch t.Kind() {
	case reflect.Interface:
		if stringType.Implements(t) {
			return reflect.ValueOf(literal), nil
		}
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return primitive(literal, t)
	}

	return reflect.Value{}, fmt.Errorf("no coercion path from a string literal to %s", t)
}

func (c *Coercer) parsed(fn ParseFunc, literal string, t reflect.Type) (reflect.Value, error) {
	out, err := fn(literal)
	if err != nil {
		return reflect.Value{}, err
	}
	v := reflect.ValueOf(out)
	switch {
	case !v.IsValid():
		return reflect.Value{}, fmt.Errorf("parser for %s returned nil", t)
	case v.Type() == t:
		return v, nil
	case v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("parser for %s returned %s", t, v.Type())
}

// primitive coerces through cty so that number syntax, bool spelling and
// range checks match what HCL manifests accept.
func primitive(literal string, t reflect.Type) (reflect.Value, error) {
	ty, err := gocty.ImpliedType(reflect.Zero(t).Interface())
	if err != nil {
		return reflect.Value{}, err
	}
	val, err := convert.Convert(cty.StringVal(literal), ty)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(t)
	if err := gocty.FromCtyValue(val, out.Interface()); err != nil {
		return reflect.Value{}, err
	}
	// gocty narrows float64 into float32 without a range check.
	if t.Kind() == reflect.Float32 && math.IsInf(out.Elem().Float(), 0) {
		return reflect.Value{}, fmt.Errorf("value out of range for %s", t)
	}
	return out.Elem(), nil
}

func enumValues(t reflect.Type) ([]string, bool) {
	if t.Kind() == reflect.Interface {
		return nil, false
	}
	switch {
	case t.Implements(enumeratedType):
		return reflect.Zero(t).Interface().(param.Enumerated).EnumValues(), true
	case reflect.PointerTo(t).Implements(enumeratedType):
		return reflect.New(t).Interface().(param.Enumerated).EnumValues(), true
	}
	return nil, false
}

func enumValue(literal string, t reflect.Type, names []string) (reflect.Value, error) {
	idx := slices.Index(names, literal)
	if idx < 0 {
		return reflect.Value{}, fmt.Errorf("must be one of %q", names)
	}
	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(literal)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(int64(idx))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		out.SetUint(uint64(idx))
	default:
		return reflect.Value{}, fmt.Errorf("enumerated type %s must be string or integer backed", t)
	}
	return out, nil
}
