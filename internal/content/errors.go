package content

import (
	"errors"
	"fmt"
)

// FallbackMessage is shown when a failure carries no server-provided message.
const FallbackMessage = "Something went wrong. Please try again."

// Error is every failure the content client returns: transport errors,
// non-2xx responses, {success:false} envelopes and undecodable payloads.
type Error struct {
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("content %s: %d %s", e.Path, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("content %s: status %d", e.Path, e.Status)
	case e.Message != "":
		return fmt.Sprintf("content %s: %s", e.Path, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("content %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("content %s: request failed", e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// Message collapses any error into the string shown to visitors.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ce *Error
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return FallbackMessage
}
