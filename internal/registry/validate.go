package registry

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/vk/modkit/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between manifests and Go
// code, then checks that every parameter of every module can be introspected
// and that its declared constraints coerce to the parameter's type.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	ids := make([]string, 0, len(r.manifests))
	for id := range r.manifests {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if _, ok := r.plugins[id]; !ok {
			errs = append(errs, fmt.Sprintf("manifest %s declares module '%s' which is not registered", r.manifests[id].Source, id))
		}
	}

	for _, mi := range r.Modules() {
		items, err := mi.Items()
		errs = append(errs, messages(err)...)

		if len(items) == 0 && err == nil {
			logger.Debug("Module declares no parameters.", "module", mi.Name)
		}

		for _, item := range items {
			if item.Type().Kind() == reflect.Interface && item.Type().NumMethod() > 0 {
				logger.Warn("Parameter has an interface type, so literal constraints cannot be coerced. Bind a concrete type argument.", "module", mi.Name, "parameter", item.Name(), "type", item.Type().String())
			}
			errs = append(errs, messages(item.Validate())...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// messages flattens joined errors into one message per failure.
func messages(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, messages(e)...)
		}
		return out
	}
	return []string{err.Error()}
}
