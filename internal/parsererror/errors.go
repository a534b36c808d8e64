// Package parsererror defines the typed errors raised while decoding a
// transcript. Both error kinds abort the whole batch: a transcript that
// fails structural validation is treated as a hard input-contract
// violation, never partially recovered.
package parsererror

import "fmt"

// InvalidFormatError reports a transcript that does not look like a
// chat export at all (undecodable JSON, missing "messages" key).
type InvalidFormatError struct {
	FilePath string
	Msg      string
	Err      error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid transcript format in '%s': %s: %v", e.FilePath, e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid transcript format in '%s': %s", e.FilePath, e.Msg)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// InvalidTimestampError reports a message whose date field cannot be
// parsed as an ISO-8601 timestamp.
type InvalidTimestampError struct {
	Value string
	Err   error
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid message timestamp '%s': %v", e.Value, e.Err)
}

func (e *InvalidTimestampError) Unwrap() error {
	return e.Err
}
