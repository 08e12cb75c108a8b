package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
}

// Codes used across the tool. Every non-config code is recovered locally and
// logged; config codes abort before any scanning starts.
const (
	CodeClassification = "E001"
	CodeWalk           = "E002"
	CodeGeneration     = "E003"
	CodeWatchSpawn     = "E004"
	CodeWatchSubscribe = "E005"
	CodeConfigInvalid  = "E020"
	CodeConfigRead     = "E021"
	CodeManifest       = "E030"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Scan and generation (E001-E019)
	// ============================================

	CodeClassification: {
		Category: CategoryClassify,
		Message:  "Route module classification failed",
	},
	CodeWalk: {
		Category: CategoryWalk,
		Message:  "Route directory walk failed",
	},
	CodeGeneration: {
		Category: CategoryGenerate,
		Message:  "Route generation failed",
	},
	CodeWatchSpawn: {
		Category: CategoryWatch,
		Message:  "Regeneration process failed",
	},
	CodeWatchSubscribe: {
		Category: CategoryWatch,
		Message:  "File watcher subscription failed",
	},

	// ============================================
	// Configuration (E020-E029)
	// ============================================

	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Configuration file could not be read",
	},

	// ============================================
	// Project files (E030-E039)
	// ============================================

	CodeManifest: {
		Category: CategoryManifest,
		Message:  "package.json update failed",
	},
}
