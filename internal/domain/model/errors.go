package model

// ValidationError reports malformed or missing client input. Handlers map it
// to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DatastoreError reports a failed datastore query or mutation, including the
// zero-rows case of a single-row expectation. The message is passed through
// to the response verbatim. Handlers map it to 500.
type DatastoreError struct {
	Message string
}

func (e *DatastoreError) Error() string {
	return e.Message
}

// ConfigurationError reports absent or unusable datastore configuration.
// Handlers map it to 503.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}
