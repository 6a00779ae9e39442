package ingestion

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	httperr "github.com/aevon-lab/contact-ledger/internal/core/errors"
	"github.com/aevon-lab/contact-ledger/internal/normalize"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgPersistFailed   = "Failed to persist events"
	msgBodyTooLarge    = "Request body exceeds maximum allowed size"
	msgUnknownPlatform = "Unknown platform"
)

// ingestionError carries the structured HTTP error shape from a helper back to the handler.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// ImportHandler ingests a JSONL body as one batch for the :platform path parameter.
// The batch is all-or-nothing, same as a file source. Contacts pick the new events up
// on the next read since they are recomputed from the store.
func (s *Service) ImportHandler(c *gin.Context) {
	platform := c.Param("platform")

	body, ierr := s.readBody(c)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	result, err := s.WithLogger(s.logger.With("remote_addr", c.ClientIP())).
		IngestReader(c.Request.Context(), platform, "http", bytes.NewReader(body))
	if err != nil {
		writeError(c, classify(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// readBody enforces the body size limit.
func (s *Service) readBody(c *gin.Context) ([]byte, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	body, err := io.ReadAll(limitedBody)
	if err != nil {
		s.logger.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(body)) > maxBytes {
		s.logger.Warn("[Ingestion] Request body exceeds maximum size", "size", len(body), "max", maxBytes)
		return nil, &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidRequestError,
			message:    msgBodyTooLarge,
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}
	return body, nil
}

// classify maps an ingestion failure to its HTTP shape.
func classify(err error) *ingestionError {
	var lineErr *LineError
	var mapErr *normalize.MappingError

	switch {
	case errors.Is(err, normalize.ErrUnknownPlatform):
		return &ingestionError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpUnknownPlatformError,
			message:    msgUnknownPlatform,
		}
	case errors.As(err, &lineErr):
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    err.Error(),
			details:    map[string]interface{}{"line": lineErr.Line},
		}
	case errors.As(err, &mapErr):
		return &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpMappingError,
			message:    err.Error(),
			details:    mapErr.Details(),
		}
	default:
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
