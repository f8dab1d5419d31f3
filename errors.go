package compio

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfStream is returned once the input has been fully consumed and
	// no token remains. Every call after that returns it again; a Reader
	// never comes back from the end of its stream. Match with errors.Is.
	ErrEndOfStream = errors.New("end of stream")
)

// ParseError reports a token whose characters do not form a valid literal of
// the requested type. The offending token has already been consumed, so the
// next accessor call moves on to the token after it. Match with errors.As.
type ParseError struct {
	Token string // the token as it appeared in the input
	Type  string // the requested type, eg "int32"
	Err   error  // the underlying strconv failure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Token, e.Type)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(tok []byte, typ string, err error) error {
	return &ParseError{Token: string(tok), Type: typ, Err: err}
}
