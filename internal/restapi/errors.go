package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// GenericMessage replaces the server message when a failure carries none.
const GenericMessage = "Server error!"

// APIError is a failed request. Status is zero for transport failures.
type APIError struct {
	Op      Op
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return GenericMessage
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// Detail includes the operation, status and cause; Error is only the
// operator-facing message.
func (e *APIError) Detail() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, " status=%d", e.Status)
	}
	fmt.Fprintf(&b, ": %s", e.Error())
	if e.Err != nil {
		fmt.Fprintf(&b, " (%v)", e.Err)
	}
	return b.String()
}

func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

type failureBody struct {
	Message string `json:"message"`
}

func failureMessage(data []byte) string {
	var fb failureBody
	if err := json.Unmarshal(data, &fb); err != nil {
		return GenericMessage
	}
	if msg := strings.TrimSpace(fb.Message); msg != "" {
		return msg
	}
	return GenericMessage
}
