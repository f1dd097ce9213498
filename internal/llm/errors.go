package llm

import "fmt"

// The external analysis boundary has four terminal failure kinds. None of
// them is retried; a single failed attempt surfaces to the caller.

// ConfigError reports a missing or unusable credential. It is returned
// before any network attempt is made.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("analysis client configuration error: %s", e.Message)
}

// TransportError reports a failed HTTP exchange with the generation endpoint.
type TransportError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("analysis endpoint returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("analysis endpoint request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError reports a successful exchange that carried no usable
// text payload.
type EmptyResponseError struct {
	Message string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("analysis endpoint returned no content: %s", e.Message)
}

// DecodeError reports reply text from which no valid JSON object matching
// the expected shape could be decoded.
type DecodeError struct {
	Raw   string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode analysis reply: %v", e.Cause)
	}
	return "failed to decode analysis reply: no JSON object found"
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
