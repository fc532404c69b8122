package apperr

import (
	"errors"
)

// Failure categories shared between services and handlers. Handlers map
// these onto HTTP status codes with errors.Is.
var (
	// ErrUnsupportedFormat indicates a file extension this service does not accept.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed indicates the document library could not decode the file.
	ErrExtractionFailed = errors.New("document extraction failed")

	// ErrGatewayFailed indicates the Gemini call itself failed.
	ErrGatewayFailed = errors.New("gemini generation failed")
)
