package model

// ErrorBody is the uniform wire error payload. ErrorCode is -1 when no
// domain-specific code applies; ErrorMsg is never empty on the wire.
type ErrorBody struct {
	ErrorCode int    `json:"errorCode"`
	ErrorMsg  string `json:"errorMsg"`
}

// ErrorEnvelope wraps an ErrorBody under "error" for statuses >= 400.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// SuccessEnvelope wraps a body under "success" for statuses < 400.
type SuccessEnvelope struct {
	Success ErrorBody `json:"success"`
}

// CredentialError is the 401 body for failed logins. It uses a "message" key
// rather than "errorMsg"; the shape is fixed by the client contract.
type CredentialError struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// CredentialErrorEnvelope wraps a CredentialError under "error".
type CredentialErrorEnvelope struct {
	Error CredentialError `json:"error"`
}
