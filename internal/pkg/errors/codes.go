package errors

import "net/http"

const (
	CodeNodeNotFound         = "NODE_NOT_FOUND"
	CodeWayNotFound          = "WAY_NOT_FOUND"
	CodeNoPathFound          = "NO_PATH_FOUND"
	CodeMalformedGeometry    = "MALFORMED_GEOMETRY"
	CodeSerializationFailure = "SERIALIZATION_FAILURE"
	CodeInvalidInput         = "INVALID_INPUT"
)

var (
	ErrNodeNotFound = New(
		CodeNodeNotFound,
		"No graph node within search radius",
		http.StatusNotFound,
	)

	ErrWayNotFound = New(
		CodeWayNotFound,
		"Unknown segment",
		http.StatusNotFound,
	)

	ErrNoPathFound = New(
		CodeNoPathFound,
		"No route found",
		http.StatusOK,
	)

	ErrMalformedGeometry = New(
		CodeMalformedGeometry,
		"Malformed geometry text",
		http.StatusInternalServerError,
	)

	ErrSerializationFailure = New(
		CodeSerializationFailure,
		"Geometry could not be serialized",
		http.StatusInternalServerError,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidWayIDs = New(
		"INVALID_WAY_IDS",
		"Invalid way identifiers",
		http.StatusBadRequest,
	)

	ErrInvalidScore = New(
		"INVALID_SCORE",
		"Score must be between 0 and 1",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrStreamError = New(
		"STREAM_ERROR",
		"Stream operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
