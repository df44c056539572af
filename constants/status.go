package constants

// FileStatus is the canonical status for rows in uploaded_files.
type FileStatus string

// Stable values (store these exact strings in DB).
const (
	FileStatusPending    FileStatus = "PENDING"    // created, chain not started
	FileStatusProcessing FileStatus = "PROCESSING" // chain in flight
	FileStatusCompleted  FileStatus = "COMPLETED"  // terminal success
	FileStatusFailed     FileStatus = "FAILED"     // terminal failure
)

// FileCategory is the coarse upload category chosen by the uploader.
// It selects the stage topology for the chain.
type FileCategory string

const (
	CategoryReceipt  FileCategory = "receipt"
	CategoryDocument FileCategory = "document"
)

// Stage names for the processing chain. The ordered topology per category
// lives in the chain package; these are the stable identifiers carried in
// queue messages.
const (
	StageClassify = "classify"
	StageExtract  = "extract"
	StageFinalize = "finalize"
)

// AnalysisOutcome is the recorded result of a classify or extract pass,
// kept for offline quality analysis.
type AnalysisOutcome string

const (
	OutcomeOK               AnalysisOutcome = "OK"
	OutcomeUnknownType      AnalysisOutcome = "UNKNOWN_TYPE"
	OutcomeLowConfidence    AnalysisOutcome = "LOW_CONFIDENCE"
	OutcomeValidationFailed AnalysisOutcome = "VALIDATION_FAILED"
	OutcomeUnsupportedType  AnalysisOutcome = "UNSUPPORTED_TYPE"
	OutcomeProviderError    AnalysisOutcome = "PROVIDER_ERROR"
)
