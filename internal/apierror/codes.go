package apierror

// Error type URIs following the urn:studypulse:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:studypulse:error:validation"

	// TypeBadRequest indicates a malformed request (400)
	TypeBadRequest = "urn:studypulse:error:bad_request"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:studypulse:error:not_found"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:studypulse:error:internal"
)

// Problem titles paired with the type URIs above.
const (
	TitleValidation = "Validation Failed"
	TitleBadRequest = "Bad Request"
	TitleNotFound   = "Resource Not Found"
	TitleInternal   = "Internal Server Error"
)
