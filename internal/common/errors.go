package common

import (
	"errors"
	"fmt"
)

// ErrorCode tags a pipeline error with its terminal/retryable category.
type ErrorCode string

const (
	// CodeProviderUnavailable covers timeouts, rate limits and 5xx from the
	// AI provider. Retryable up to the chain's attempt budget.
	CodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	// CodeStructuralValidation covers missing required extracted fields and
	// schema mismatches. Terminal.
	CodeStructuralValidation ErrorCode = "STRUCTURAL_VALIDATION"
	// CodeSourceNotFound means the original bytes are gone from object
	// storage. Terminal; the owner must re-upload.
	CodeSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	// CodeUnsupportedType means classification produced a type with no
	// registered extractor. Terminal.
	CodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
	// CodeInternal covers everything else (DB failures, bad metadata).
	CodeInternal ErrorCode = "INTERNAL"
)

// PipelineError is the single tagged error value used across stages.
// Retryable decides whether the queue re-attempts the stage or the file is
// failed immediately.
type PipelineError struct {
	Code      ErrorCode
	Retryable bool
	Message   string
	Cause     error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// UserMessage is the human-readable text persisted on a failed file.
func (e *PipelineError) UserMessage() string {
	if e.Code == CodeSourceNotFound {
		return "the original file is no longer available; please re-upload"
	}
	return e.Message
}

func NewTransientError(message string, cause error) *PipelineError {
	return &PipelineError{Code: CodeProviderUnavailable, Retryable: true, Message: message, Cause: cause}
}

func NewValidationError(message string, cause error) *PipelineError {
	return &PipelineError{Code: CodeStructuralValidation, Retryable: false, Message: message, Cause: cause}
}

func NewSourceNotFoundError(path string, cause error) *PipelineError {
	return &PipelineError{Code: CodeSourceNotFound, Retryable: false, Message: fmt.Sprintf("source object missing: %s", path), Cause: cause}
}

func NewUnsupportedTypeError(docType string) *PipelineError {
	return &PipelineError{Code: CodeUnsupportedType, Retryable: false, Message: fmt.Sprintf("no extractor registered for type %q", docType)}
}

func NewInternalError(message string, cause error) *PipelineError {
	return &PipelineError{Code: CodeInternal, Retryable: false, Message: message, Cause: cause}
}

// IsRetryable reports whether err (anywhere in its chain) is a retryable
// PipelineError. Unclassified errors are treated as terminal.
func IsRetryable(err error) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// CodeOf extracts the ErrorCode from err, or CodeInternal when untagged.
func CodeOf(err error) ErrorCode {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeInternal
}

// DuplicateSignal is raised when uploaded bytes hash to a file the owner
// already has. It is not a failure: the orchestrator resolves it as a
// short-circuit success against the existing file.
type DuplicateSignal struct {
	ExistingFileID string
	HashHex        string
}

func (s *DuplicateSignal) Error() string {
	return fmt.Sprintf("duplicate upload of file %s (hash %s)", s.ExistingFileID, s.HashHex)
}

// ErrInvalidInput rejects uploads the intake cannot accept; the gateway
// maps it to a 400.
var ErrInvalidInput = errors.New("invalid input")
