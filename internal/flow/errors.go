package flow

import (
	"errors"
	"fmt"

	"github.com/Jupiter-DevRel/go-examples/internal/jupiter"
)

// RemoteError is a failed call to a remote service: transport failure
// or a non-success HTTP status.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string { return fmt.Sprintf("%s: remote call failed: %v", e.Op, e.Err) }
func (e *RemoteError) Unwrap() error { return e.Err }

// ParseError is a response body that did not match the expected schema.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: unexpected response: %v", e.Op, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// DecodeError is a transaction payload that could not be decoded from
// its wire encoding.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decoding transaction: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// SigningError is a missing/invalid key or a transaction the local
// keypair cannot sign (for example no matching signer slot).
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string { return fmt.Sprintf("signing transaction: %v", e.Err) }
func (e *SigningError) Unwrap() error { return e.Err }

// SubmissionError is a rejection at submission time: RPC node errors,
// execute-endpoint failures, and domain rejections such as orders below
// the minimum size.
type SubmissionError struct {
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Reason != "" {
		return "submission rejected: " + e.Reason
	}
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// wrapAPIError classifies a Jupiter client error: schema mismatches
// become ParseError, everything else (transport, HTTP status) is a
// RemoteError.
func wrapAPIError(op string, err error) error {
	var pe *jupiter.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Op: op, Err: err}
	}
	return &RemoteError{Op: op, Err: err}
}
