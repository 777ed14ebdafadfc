package pdf

import "errors"

var (
	ErrSourceNotFound    = errors.New("pdf source not found")
	ErrExtractionFailure = errors.New("pdf text extraction failed")
	ErrWriteFailure      = errors.New("pdf write failed")
)
