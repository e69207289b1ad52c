package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Invariant Errors (R001-R009)
	// ============================================

	"R001": {
		Category: CategoryInvariant,
		Message:  "Index out of range",
		Detail:   "Positions must lie within [-1, length].",
		DocURL:   "https://reflow.dev/docs/errors/R001",
	},
	"R002": {
		Category: CategoryInvariant,
		Message:  "Child not found",
		Detail:   "The host node is not a child of the parent it claims. The host tree was modified outside the renderer.",
		DocURL:   "https://reflow.dev/docs/errors/R002",
	},
	"R003": {
		Category: CategoryInvariant,
		Message:  "Unknown node kind",
		Detail:   "The renderer was given a node whose kind it does not handle.",
		DocURL:   "https://reflow.dev/docs/errors/R003",
	},

	// ============================================
	// Misuse Errors (R010-R019)
	// ============================================

	"R010": {
		Category: CategoryMisuse,
		Message:  "Unsupported key access",
		Detail:   "Properties can be read from maps, slices, arrays, strings and structs. The key must match the container.",
		DocURL:   "https://reflow.dev/docs/errors/R010",
	},
	"R011": {
		Category: CategoryMisuse,
		Message:  "Write through read-only value",
		Detail:   "Writable projections need a writable parent: an input value, an input property or a sorted view of one.",
		DocURL:   "https://reflow.dev/docs/errors/R011",
	},
	"R012": {
		Category: CategoryMisuse,
		Message:  "Bound property has the wrong type",
		Detail:   "The event target property cannot be assigned to the bound value. Pass a transform function.",
		DocURL:   "https://reflow.dev/docs/errors/R012",
	},

	// ============================================
	// Diagnostics Errors (R020-R029)
	// ============================================

	"R020": {
		Category: CategoryDiagnostics,
		Message:  "Value changed from a foreign goroutine",
		Detail:   "Values belong to the goroutine that first changed them. Propagation is synchronous and unlocked.",
		DocURL:   "https://reflow.dev/docs/errors/R020",
	},

	// ============================================
	// Config Errors (R100-R109)
	// ============================================

	"R100": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No reflow.json was found.",
		DocURL:   "https://reflow.dev/docs/errors/R100",
	},
	"R101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "reflow.json contains a value outside its allowed range.",
		DocURL:   "https://reflow.dev/docs/errors/R101",
	},
	"R102": {
		Category: CategoryConfig,
		Message:  "Config parse error",
		Detail:   "reflow.json could not be read or parsed.",
		DocURL:   "https://reflow.dev/docs/errors/R102",
	},

	// ============================================
	// CLI Errors (R110-R119)
	// ============================================

	"R110": {
		Category: CategoryCLI,
		Message:  "Unknown bench scenario",
		Detail:   "The requested scenario is not one of the built-in list workloads.",
		DocURL:   "https://reflow.dev/docs/errors/R110",
	},
	"R111": {
		Category: CategoryCLI,
		Message:  "Invalid diff input",
		Detail:   "Lists are given as comma-separated items, e.g. 1,2,3.",
		DocURL:   "https://reflow.dev/docs/errors/R111",
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

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
