package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	CityNotFoundCode               = 2001
	CityNotFoundMessage            = "city not found"
	PointOfInterestNotFoundCode    = 2002
	PointOfInterestNotFoundMessage = "point of interest not found"
	MalformedPatchCode             = 2003
	MalformedPatchMessage          = "malformed patch document"
	InvalidCredentialsCode         = 2004
	InvalidCredentialsMessage      = "invalid credentials"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case CityNotFoundCode:
		errorStruct.ErrorCode = CityNotFoundCode
		errorStruct.ErrorMessage = CityNotFoundMessage
	case PointOfInterestNotFoundCode:
		errorStruct.ErrorCode = PointOfInterestNotFoundCode
		errorStruct.ErrorMessage = PointOfInterestNotFoundMessage
	case MalformedPatchCode:
		errorStruct.ErrorCode = MalformedPatchCode
		errorStruct.ErrorMessage = MalformedPatchMessage
	case InvalidCredentialsCode:
		errorStruct.ErrorCode = InvalidCredentialsCode
		errorStruct.ErrorMessage = InvalidCredentialsMessage
	}

	return errorStruct
}
