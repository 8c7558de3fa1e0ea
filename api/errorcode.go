package api

import "github.com/openamr/surveillance-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this username or email has been taken",
		1101: store.ErrUserNotFound.Error(),
		1102: "user role is not allowed to perform this action",
		1103: "unknown user role",

		1200: store.ErrInvalidReference.Error(),
		1201: store.ErrFacilityNotFound.Error(),
		1202: "empty report batch",

		1300: store.ErrAlertNotFound.Error(),

		1400: "unknown aggregation dimension",
		1401: "unknown pathogen",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUserTaken       = errorJSON(1100)
	errorUserNotFound    = errorJSON(1101)
	errorRoleNotAllowed  = errorJSON(1102)
	errorUnknownUserRole = errorJSON(1103)

	errorInvalidReference = errorJSON(1200)
	errorFacilityNotFound = errorJSON(1201)
	errorEmptyBatch       = errorJSON(1202)

	errorAlertNotFound = errorJSON(1300)

	errorUnknownDimension = errorJSON(1400)
	errorUnknownPathogen  = errorJSON(1401)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
