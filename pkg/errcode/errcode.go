package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Config errors
	ConfigLoadError
	ConfigGenerateError

	// Ingest errors
	ResultsDirError
	ResultsEmptyError
	ParseFileError
	ParseRowError
	ParseQueryIDError
	AggregationError

	// Metadata errors
	MetadataReadError
	MetadataHeaderError
	MetadataRunColumnError

	// Join errors
	JoinKeyError

	// Views errors
	ViewColumnError
	ViewFieldError

	// Report errors
	ReportRenderError
	ReportWriteError

	// Export errors
	ExportOpenError
	ExportSchemaError
	ExportInsertError
)
