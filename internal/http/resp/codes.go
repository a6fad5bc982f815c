package resp

// Error codes carried in dto.ErrorResponse. Successful requests return 204
// with no body, so there is no success code.
const (
	CodeBadRequest    = 40000
	CodeProviderError = 50200
	CodeInternalError = 50000
)
