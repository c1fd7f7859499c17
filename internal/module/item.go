// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package module

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/vk/modkit/internal/param"
	"github.com/vk/modkit/internal/typeres"
)

// Item describes one parameter of a module.
type Item struct {
	info    *Info
	field   reflect.StructField
	meta    param.Metadata
	typ     reflect.Type
	generic reflect.Type
}

func (m *Info) newItem(f reflect.StructField) (*Item, error) {
	meta, _, err := param.FromField(f)
	if err != nil {
		return nil, m.fieldError(f.Name, err)
	}
	if o, ok := m.overrides[f.Name]; ok {
		meta = meta.Overlay(o)
	}
	if !f.IsExported() {
		return nil, m.fieldError(f.Name, errors.New("parameter fields must be exported"))
	}

	typ, err := typeres.Resolve(f, m.Type)
	if err != nil {
		return nil, m.fieldError(f.Name, err)
	}
	generic, err := typeres.ResolveGeneric(f, m.Type)
	if err != nil {
		return nil, m.fieldError(f.Name, err)
	}

	return &Item{info: m, field: f, meta: meta, typ: typ, generic: generic}, nil
}

// Info returns the module the item belongs to.
func (i *Item) Info() *Info { return i.info }

// Name returns the declared Go field name, unique within the module.
func (i *Item) Name() string { return i.field.Name }

// Field returns the struct field, with Index relative to the module type.
func (i *Item) Field() reflect.StructField { return i.field }

// Metadata returns a copy of the effective metadata.
func (i *Item) Metadata() param.Metadata { return i.meta.Overlay(param.Override{}) }

// Type returns the concrete runtime type of the parameter, with any type
// variable bound.
func (i *Item) Type() reflect.Type { return i.typ }

// GenericType returns the fully parameterized type, e.g. []float64 for a
// field declared as []any bound to float64.
func (i *Item) GenericType() reflect.Type { return i.generic }

func (i *Item) IOType() param.IO             { return i.meta.IO }
func (i *Item) Visibility() param.Visibility { return i.meta.Visibility }
func (i *Item) IsAutoFill() bool             { return i.meta.AutoFill }
func (i *Item) IsPersisted() bool            { return i.meta.Persist }
func (i *Item) PersistKey() string           { return i.meta.PersistKey }
func (i *Item) Initializer() string          { return i.meta.Initializer }
func (i *Item) Callback() string             { return i.meta.Callback }
func (i *Item) WidgetStyle() string          { return i.meta.Style }
func (i *Item) ColumnCount() int             { return i.meta.Columns }
func (i *Item) Label() string                { return i.meta.Label }
func (i *Item) Description() string          { return i.meta.Description }

// IsInput reports whether values flow into the module through this item.
func (i *Item) IsInput() bool { return i.meta.IO == param.Input || i.meta.IO == param.Both }

// IsOutput reports whether the module produces a value through this item.
func (i *Item) IsOutput() bool { return i.meta.IO == param.Output || i.meta.IO == param.Both }

// IsRequired reports whether a value must be supplied. Items whose type
// implements param.Optional are never required.
func (i *Item) IsRequired() bool {
	return i.meta.Required && !param.IsOptional(i.typ)
}

// Is reports whether the item carries the named free-form attribute.
func (i *Item) Is(key string) bool { return i.meta.Attrs.Is(key) }

// Get returns the value of the named free-form attribute.
func (i *Item) Get(key string) (string, bool) { return i.meta.Attrs.Get(key) }

// MinimumValue returns the declared minimum coerced to Type, or nil when no
// minimum is declared.
func (i *Item) MinimumValue() (any, error) {
	return i.coerce(i.meta.Min)
}

// MaximumValue returns the declared maximum coerced to Type, or nil when no
// maximum is declared.
func (i *Item) MaximumValue() (any, error) {
	return i.coerce(i.meta.Max)
}

// StepSize returns the declared step size as a number independent of Type,
// or nil when none is declared.
func (i *Item) StepSize() (*big.Float, error) {
	n, err := i.info.coercer().CoerceNumber(i.meta.StepSize)
	if err != nil {
		return nil, i.info.fieldError(i.Name(), err)
	}
	return n, nil
}

// Choices returns the declared choices coerced to Type, in declaration order.
// It returns an empty slice when no choices are declared and stops at the
// first choice that cannot be coerced.
func (i *Item) Choices() ([]any, error) {
	out := make([]any, 0, len(i.meta.Choices))
	for _, c := range i.meta.Choices {
		v, err := i.coerce(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (i *Item) coerce(literal string) (any, error) {
	v, err := i.info.coercer().Coerce(literal, i.typ)
	if err != nil {
		return nil, i.info.fieldError(i.Name(), err)
	}
	return v, nil
}

// Validate coerces every declared literal and checks that the named
// initializer and callback methods exist, returning all problems found.
func (i *Item) Validate() error {
	var errs []error
	for _, fn := range []func() error{
		func() error { _, err := i.MinimumValue(); return err },
		func() error { _, err := i.MaximumValue(); return err },
		func() error { _, err := i.StepSize(); return err },
		func() error { _, err := i.Choices(); return err },
	} {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}

	ptr := reflect.PointerTo(i.info.Type)
	for _, method := range []struct{ kind, name string }{
		{"initializer", i.meta.Initializer},
		{"callback", i.meta.Callback},
	} {
		if method.name == "" {
			continue
		}
		if _, ok := ptr.MethodByName(method.name); !ok {
			errs = append(errs, i.info.fieldError(i.Name(), fmt.Errorf("%s method %s not found on %s", method.kind, method.name, ptr)))
		}
	}
	return errors.Join(errs...)
}

// Value reads the parameter from a module instance, which may be a value or
// a pointer of the module type.
func (i *Item) Value(instance any) (any, error) {
	v, err := i.target(instance, false)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// SetValue stores v into the parameter of the module instance, which must be
// a pointer. A nil v resets the field to its zero value. Values of another
// type with the same kind as Type are converted first.
func (i *Item) SetValue(instance any, v any) error {
	dst, err := i.target(instance, true)
	if err != nil {
		return err
	}
	if v == nil {
		dst.SetZero()
		return nil
	}

	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(i.typ) && val.Kind() == i.typ.Kind() && val.CanConvert(i.typ) {
		val = val.Convert(i.typ)
	}
	if !val.Type().AssignableTo(i.typ) || !val.Type().AssignableTo(dst.Type()) {
		return i.info.fieldError(i.Name(), fmt.Errorf("cannot assign %s to a parameter of type %s", val.Type(), i.typ))
	}
	dst.Set(val)
	return nil
}

func (i *Item) target(instance any, settable bool) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("module '%s': nil instance", i.info.Name)
		}
		v = v.Elem()
	} else if settable {
		return reflect.Value{}, fmt.Errorf("module '%s': instance must be a pointer to %s", i.info.Name, i.info.Type)
	}
	if !v.IsValid() || v.Type() != i.info.Type {
		return reflect.Value{}, fmt.Errorf("module '%s': instance is %T, not %s", i.info.Name, instance, i.info.Type)
	}
	return v.FieldByIndex(i.field.Index), nil
}
