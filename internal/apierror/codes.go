package apierror

// Problem type URIs, used as the "type" field of every error response
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:pawlog:error:validation"

	// TypeBadRequest indicates a malformed request body or query (400)
	TypeBadRequest = "urn:pawlog:error:bad_request"

	// TypeInvalidID indicates a path id that is not a positive integer (400)
	TypeInvalidID = "urn:pawlog:error:invalid_id"

	// TypeNotFound indicates the requested record does not exist (404)
	TypeNotFound = "urn:pawlog:error:not_found"

	// TypeConflict indicates a duplicate catalog entry (409)
	TypeConflict = "urn:pawlog:error:conflict"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:pawlog:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:pawlog:error:internal"

	// TypeUnavailable indicates the event store cannot be reached (503)
	TypeUnavailable = "urn:pawlog:error:unavailable"
)

const (
	TitleValidation  = "Validation Error"
	TitleBadRequest  = "Bad Request"
	TitleInvalidID   = "Invalid Identifier"
	TitleNotFound    = "Resource Not Found"
	TitleConflict    = "Resource Conflict"
	TitleRateLimit   = "Rate Limit Exceeded"
	TitleInternal    = "Internal Server Error"
	TitleUnavailable = "Service Unavailable"
)
