package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/modkit/internal/ctxlog"
	"github.com/vk/modkit/internal/fsutil"
	"github.com/vk/modkit/internal/module"
	"github.com/vk/modkit/internal/schema"
)

// LoadManifestsRecursively parses every .hcl file below manifestsPath and
// overlays the module blocks onto the registered plugins. Manifests for
// modules that are not registered are kept so that validation can report
// them.
func (r *Registry) LoadManifestsRecursively(ctx context.Context, manifestsPath string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading manifests from path...", "path", manifestsPath)

	filePaths, err := fsutil.FindFilesByExtension(manifestsPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory", "path", manifestsPath, "error", err)
		return err
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", manifestsPath)
		return nil
	}

	logger.Debug("Found HCL files to load", "files", filePaths)

	parser := hclparse.NewParser()
	loaded := 0

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		manifests, diags := schema.ParseFile(ctx, hclFile, filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		for _, m := range manifests {
			if err := r.applyManifest(m); err != nil {
				return fmt.Errorf("failed to apply manifest in %s: %w", filePath, err)
			}
			loaded++
		}
		logger.Debug("Successfully loaded manifests from HCL file", "file", filePath)
	}

	logger.Info("Registry loaded manifests successfully.", "module_manifests_loaded", loaded)
	return nil
}

func (r *Registry) applyManifest(m *schema.Module) error {
	if prev, exists := r.manifests[m.ID]; exists {
		return fmt.Errorf("module '%s' already has a manifest in %s", m.ID, prev.Source)
	}
	r.manifests[m.ID] = m

	info, ok := r.plugins[m.ID]
	if !ok {
		return nil
	}
	if err := m.Apply(info); err != nil {
		return err
	}

	if _, isModule := r.modules[m.ID]; !isModule {
		if len(m.Parameters) > 0 {
			return fmt.Errorf("plugin '%s' is not a module but its manifest declares parameters", m.ID)
		}
		return nil
	}
	overrides, err := m.Overrides()
	if err != nil {
		return err
	}
	mi, err := module.NewInfo(info.ID, info.Type, overrides)
	if err != nil {
		return err
	}
	r.modules[m.ID] = mi
	return nil
}
