package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Adapter Errors (A001-A099)
	// ============================================

	"A001": {
		Category:   CategoryAdapter,
		Message:    "Non-wrapped or non-vdom element passed to GetAttributes",
		Detail:     "The element is neither a rendered component nor a host node carrying a stashed attribute bag.",
		Suggestion: "Wrap rendered nodes with adapter.WrapRootNode or adapter.WrapNode",
	},
	"A002": {
		Category:   CategoryAdapter,
		Message:    "GetChildren called on a non-wrapped rendered node",
		Detail:     "The element matches neither the component nor the host-node variant. This is usually a bug in the calling assertion library.",
		Suggestion: "Only pass values returned by WrapRootNode, WrapNode or GetChildren",
	},

	// ============================================
	// Render Errors (R001-R099)
	// ============================================

	"R001": {
		Category: CategoryRender,
		Message:  "Unsupported vnode type",
		Detail:   "A vnode's Type must be a tag string, a *vdom.Class or a function component.",
	},
	"R002": {
		Category: CategoryRender,
		Message:  "Raw HTML could not be mounted",
	},

	// ============================================
	// Config Errors (C001-C099)
	// ============================================

	"C001": {
		Category:   CategoryConfig,
		Message:    "Config file could not be read",
		Suggestion: "Check the path passed to --config",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// ============================================
	// CLI Errors (X001-X099)
	// ============================================

	"X001": {
		Category: CategoryCLI,
		Message:  "Fixture could not be parsed",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
