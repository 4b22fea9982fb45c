package hclcfg

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/waveflow/internal/config"
	"github.com/vk/waveflow/internal/ctxlog"
)

// LoadError reports a configuration file that is missing or unparseable.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config file %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads one HCL file and returns its top-level attributes as a
// ParameterSet, in declaration order. The file must contain only attributes;
// blocks are rejected as unparseable. No filtering or schema validation is
// applied.
func (l *Loader) Load(ctx context.Context, path string) (*config.ParameterSet, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, &LoadError{Path: path, Err: diags}
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, &LoadError{Path: path, Err: diags}
	}

	// JustAttributes returns a map; recover declaration order from source
	// positions.
	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	params := config.NewParameterSet()
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, &LoadError{Path: path, Err: diags}
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("attribute %q: %w", attr.Name, err)}
		}
		params.Set(attr.Name, native)
	}

	logger.Debug("HCL loading complete.", "path", path, "keys", params.Len())
	return params, nil
}
