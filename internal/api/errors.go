package api

import "fmt"

// APIError is a transport-level failure: the backend answered with a non-2xx
// status. The message comes from the structured error body when present.
type APIError struct {
	Status   int
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, e.Message, e.Status)
}

// ContractError is a successful response whose body does not conform to the
// declared contract for its endpoint. It is distinguishable from transport
// failures so callers can treat it as a backend bug, not a retryable error.
type ContractError struct {
	Endpoint string
	Detail   string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: response violates contract: %s", e.Endpoint, e.Detail)
}
