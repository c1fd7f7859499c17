package schema

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/modkit/internal/ctxlog"
)

// ParseFile decodes the module blocks of a parsed manifest file.
func ParseFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Module, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing module manifests from file", "file_path", filePath)

	if hclFile == nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
			Detail:   "Manifest file " + filePath + " was not parsed.",
		}}
	}

	var parsed ManifestFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}

	for _, m := range parsed.Modules {
		m.Source = filePath
	}
	logger.Debug("Decoded module manifests", "file_path", filePath, "count", len(parsed.Modules))
	return parsed.Modules, nil
}
