package errors

// FailBody is the denial envelope returned with a 200 status for
// authorization and business-rule failures. The status code stays 200 on
// purpose: clients of the original API key off the body, not the code.
type FailBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Fail builds the standard FAIL body.
func Fail(message string) FailBody {
	return FailBody{Status: "FAIL", Message: message}
}

// StoreError is the 500-status shape carrying the underlying error text.
type StoreError struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// NewStoreError builds a StoreError from a message and the causing error.
func NewStoreError(message string, err error) StoreError {
	return StoreError{Message: message, Err: err.Error()}
}

// Envelope is the catch-all error shape for unmatched routes and uncaught
// handler errors.
type Envelope struct {
	Error Body `json:"error"`
}

// Body is the inner error payload of Envelope.
type Body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewEnvelope builds the catch-all envelope.
func NewEnvelope(status int, message string) Envelope {
	return Envelope{Error: Body{Status: status, Message: message}}
}
