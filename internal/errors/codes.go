// Package errors provides the structured error type for loadsheet's
// CLI-facing failures.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: preset/configuration errors
//   - 2XX: load input errors
//   - 3XX: envelope/solver errors
//   - 4XX: logbook and output I/O errors
//
// The core model (internal/wb) uses plain sentinel errors; this package
// wraps them at the CLI boundary with a code and a suggestion.
package errors

// Category classifies errors for logging.
type Category string

const (
	// CategoryPreset indicates aircraft preset errors.
	CategoryPreset Category = "PRESET"
	// CategoryInput indicates per-flight load input errors.
	CategoryInput Category = "INPUT"
	// CategoryEnvelope indicates solver/envelope errors.
	CategoryEnvelope Category = "ENVELOPE"
	// CategoryIO indicates logbook and file output errors.
	CategoryIO Category = "IO"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Preset errors (100-199)
	CodePresetNotFound = "ERR_101_PRESET_NOT_FOUND"
	CodePresetInvalid  = "ERR_102_PRESET_INVALID"

	// Input errors (200-299)
	CodeBadLoad = "ERR_201_BAD_LOAD"
	CodeBadFuel = "ERR_202_BAD_FUEL"

	// Envelope errors (300-399)
	CodeOutsideEnvelope = "ERR_301_OUTSIDE_ENVELOPE"
	CodeNoSolution      = "ERR_302_NO_SOLUTION"

	// IO errors (400-499)
	CodeLogbook   = "ERR_401_LOGBOOK"
	CodeWriteFile = "ERR_402_WRITE_FILE"
)

// categoryFromCode derives the category from the numeric block.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryPreset
	case '2':
		return CategoryInput
	case '3':
		return CategoryEnvelope
	case '4':
		return CategoryIO
	default:
		return CategoryInternal
	}
}
