// Package app composes storefront feature modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/burjmall/storefront/internal/services/storefront/module"
)

// ComposeInput carries the modules to mount and their shared dependencies.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Composer wires module mounts into a root mux.
type Composer struct{}

// Compose builds a root HTTP handler from modules. Every prefix and exact
// path may be claimed by a single module.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, patterns, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		for _, pattern := range patterns {
			if previous, ok := seen[pattern]; ok {
				return nil, fmt.Errorf("module %q duplicates path %q owned by module %q", feature.ID(), pattern, previous)
			}
			seen[pattern] = feature.ID()
			root.Handle(pattern, mount.Handler)
		}
	}
	return root, nil
}

// resolveMount returns the mux patterns a module claims. A subtree prefix
// also claims its bare path, so "/products/" serves "/products" without a
// redirect.
func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, []string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return module.Mount{}, nil, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}

	var patterns []string
	if prefix := normalizePrefix(mount.Prefix); prefix != "" {
		patterns = append(patterns, prefix)
		if bare := strings.TrimSuffix(prefix, "/"); bare != "" {
			patterns = append(patterns, bare)
		}
	}
	for _, path := range mount.Paths {
		path = normalizePath(path)
		if path == "" {
			return module.Mount{}, nil, fmt.Errorf("mount module %q: empty path", feature.ID())
		}
		patterns = append(patterns, path)
	}
	if len(patterns) == 0 {
		return module.Mount{}, nil, fmt.Errorf("mount module %q: prefix or paths are required", feature.ID())
	}
	return mount, patterns, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
