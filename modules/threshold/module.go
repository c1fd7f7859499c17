// Package threshold provides binarization modules whose level parameter is
// typed per variant: a float64 level for continuous data and an int level for
// 8-bit data.
package threshold

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/vk/modkit/internal/ctxlog"
	"github.com/vk/modkit/internal/param"
	"github.com/vk/modkit/internal/plugin"
	"github.com/vk/modkit/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Method selects how the level is interpreted.
type Method string

const (
	Fixed   Method = "fixed"
	Percent Method = "percent"
)

func (Method) EnumValues() []string { return []string{string(Fixed), string(Percent)} }

// Threshold holds the parameters shared by every variant. Level is bound to a
// concrete type by the embedding struct.
type Threshold struct {
	plugin.SortablePlugin

	Level      any                `param:"" typevar:"T" label:"Level" min:"0" max:"255" step:"1" callback:"LevelChanged"`
	Method     Method             `param:"" label:"Method" choices:"fixed,percent" style:"radio"`
	Background param.Opt[float64] `param:"" label:"Background"`
	Data       []float64          `param:"invisible" label:"Samples"`
	Mask       []bool             `param:"output" label:"Mask"`
	Status     string             `param:"output,message,nopersist"`
}

// LevelChanged is the callback of the Level parameter.
func (t *Threshold) LevelChanged() {
	t.Status = fmt.Sprintf("level set to %v", t.Level)
}

// Run computes Mask from Data.
func (t *Threshold) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	level, err := t.level()
	if err != nil {
		return err
	}
	if t.Method == Percent {
		level = percentile(t.Data, level)
	}
	logger.Debug("Applying threshold", "level", level, "samples", len(t.Data))

	t.Mask = make([]bool, len(t.Data))
	for i, v := range t.Data {
		t.Mask[i] = v > level
	}
	return nil
}

func (t *Threshold) level() (float64, error) {
	switch v := t.Level.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case nil:
		return 0, fmt.Errorf("threshold level is not set")
	default:
		return 0, fmt.Errorf("unsupported threshold level type %T", v)
	}
}

// percentile returns the value below which p percent of data falls, using the
// nearest-rank method.
func percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := append([]float64(nil), data...)
	slices.Sort(sorted)
	rank := int(p / 100 * float64(len(sorted)))
	rank = max(0, min(rank, len(sorted)-1))
	return sorted[rank]
}

// Float thresholds continuous data.
type Float struct{ Threshold }

func (Float) TypeArgs() map[string]reflect.Type {
	return map[string]reflect.Type{"T": reflect.TypeFor[float64]()}
}

// Int thresholds 8-bit data.
type Int struct{ Threshold }

func (Int) TypeArgs() map[string]reflect.Type {
	return map[string]reflect.Type{"T": reflect.TypeFor[int]()}
}

// Register registers the module with the registry.
func (m *Module) Register(r *registry.Registry) {
	f := plugin.InfoFor[Float]("threshold.float", "Threshold (float)")
	f.MenuPath = "Process > Binary > Threshold"
	f.Priority = plugin.High
	r.RegisterModule(f)

	i := plugin.InfoFor[Int]("threshold.int", "Threshold (8-bit)")
	i.MenuPath = "Process > Binary > Threshold"
	r.RegisterModule(i)
}
