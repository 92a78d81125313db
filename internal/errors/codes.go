// Package errors provides structured error handling for gitignore-gen.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (cache files, output document)
//   - 3XX: Network errors (catalog listing, template download)
//   - 4XX: Validation errors (names, queries, modes)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates cache and output file I/O errors.
	CategoryIO Category = "IO"
	// CategoryNetwork indicates remote template source errors.
	CategoryNetwork Category = "NETWORK"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but the run can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigInvalid = "ERR_101_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeCacheRead     = "ERR_201_CACHE_READ"
	ErrCodeCacheWrite    = "ERR_202_CACHE_WRITE"
	ErrCodeOutputWrite   = "ERR_203_OUTPUT_WRITE"
	ErrCodeCacheCorrupt  = "ERR_204_CACHE_CORRUPT"
	ErrCodeCacheDirSetup = "ERR_205_CACHE_DIR_SETUP"

	// Network errors (300-399)
	ErrCodeListingFailed  = "ERR_301_LISTING_FAILED"
	ErrCodeDownloadFailed = "ERR_302_DOWNLOAD_FAILED"
	ErrCodeCatalogEmpty   = "ERR_303_CATALOG_EMPTY"

	// Validation errors (400-499)
	ErrCodeNoTemplates    = "ERR_401_NO_TEMPLATES"
	ErrCodeUnknownName    = "ERR_402_UNKNOWN_NAME"
	ErrCodeAmbiguousName  = "ERR_403_AMBIGUOUS_NAME"
	ErrCodeInvalidMode    = "ERR_404_INVALID_MODE"
	ErrCodeCancelled      = "ERR_405_CANCELLED"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryNetwork
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// Network and cache failures are recoverable by design: the catalog
// build leaves the affected section empty and the caches fall through
// to a fresh fetch, so they rate warnings rather than errors.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeListingFailed, ErrCodeDownloadFailed,
		ErrCodeCacheRead, ErrCodeCacheWrite, ErrCodeCacheCorrupt:
		return SeverityWarning
	}
	return SeverityError
}

// isRetryableCode checks if an error code represents a retryable error.
func isRetryableCode(code string) bool {
	switch code {
	case ErrCodeListingFailed, ErrCodeDownloadFailed:
		return true
	}
	return false
}
