package docModel

import "errors"

// Error taxonomy. Every stage before assembly degrades to a deterministic
// fallback; only ErrRequest, ErrAssembly and ErrNotFound ever reach a caller.
var (
	// ErrRequest: bad doc_type/language/scenario. 4xx, no retry.
	ErrRequest = errors.New("invalid request")

	// ErrExtraction: AI metadata call failed or required fields missing.
	// Recoverable via partial metadata with defaults filled in.
	ErrExtraction = errors.New("metadata extraction failed")

	// ErrGeneration: AI content call failed. Recoverable via deterministic
	// template fallback.
	ErrGeneration = errors.New("content generation failed")

	// ErrValidationExhausted: repair budget hit. Recoverable via forced
	// placeholder substitution; logged as a warning.
	ErrValidationExhausted = errors.New("validation repair budget exhausted")

	// ErrAssembly: could not produce the binary artifact. Fatal for the
	// request, 5xx.
	ErrAssembly = errors.New("document assembly failed")

	// ErrNotFound: download of an unknown or expired artifact.
	ErrNotFound = errors.New("artifact not found")
)

// ErrorKind maps an error to its taxonomy name for API responses.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrRequest):
		return "RequestError"
	case errors.Is(err, ErrExtraction):
		return "ExtractionError"
	case errors.Is(err, ErrGeneration):
		return "GenerationError"
	case errors.Is(err, ErrValidationExhausted):
		return "ValidationExhausted"
	case errors.Is(err, ErrAssembly):
		return "AssemblyError"
	case errors.Is(err, ErrNotFound):
		return "NotFoundError"
	default:
		return "InternalError"
	}
}
