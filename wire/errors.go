package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind enumerates the data errors the decoder can surface. These are
// always carried as a typed error value with tag/path info, never as a
// panic or a generic opaque error.
type ErrorKind int

const (
	ErrTruncatedKey      ErrorKind = iota // varint key does not fit in the remaining window
	ErrUnknownWireKind                    // low 3 bits of key are 6, 7, or out of range
	ErrTruncatedVarint                    // varint value payload runs past the buffer
	ErrTruncatedFixed                     // I32/I64 payload shorter than 4/8 bytes
	ErrTruncatedLen                       // LEN-declared length exceeds remaining bytes
	ErrUnterminatedGroup                  // SGROUP never reached a matching EGROUP
	ErrDepthExceeded                      // recursion depth limit hit
	ErrKindConflict                       // strict-mode-only: a merge would have silently dropped a field
	ErrTruncatedPayload                   // buffer ran out on a key that is not an EGROUP closing an enclosing group
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTruncatedKey:
		return "truncated key"
	case ErrUnknownWireKind:
		return "unknown wire kind"
	case ErrTruncatedVarint:
		return "truncated varint"
	case ErrTruncatedFixed:
		return "truncated fixed-width value"
	case ErrTruncatedLen:
		return "truncated length-delimited payload"
	case ErrUnterminatedGroup:
		return "unterminated group"
	case ErrDepthExceeded:
		return "recursion depth exceeded"
	case ErrKindConflict:
		return "conflicting kind for existing tag"
	case ErrTruncatedPayload:
		return "truncated payload"
	default:
		return "unknown decode error"
	}
}

// DecodeError is the decoder's sole error type. Path records the chain of
// tag numbers from the root down to the field being decoded when the
// error occurred: a dotted path of tag numbers rather than field names,
// since no schema is available to resolve names.
type DecodeError struct {
	Kind ErrorKind
	Tag  int64   // tag of the field being decoded when the error occurred
	Path []int64 // tags of enclosing fields, root-to-parent order
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("tag %d: %s", e.Tag, e.Kind)
	}

	parts := make([]string, len(e.Path)+1)
	for i, t := range e.Path {
		parts[i] = strconv.FormatInt(t, 10)
	}
	parts[len(e.Path)] = strconv.FormatInt(e.Tag, 10)

	return fmt.Sprintf("error at tag path %s: %s", strings.Join(parts, "."), e.Kind)
}

// Is implements errors.Is for compatibility: two DecodeErrors are
// considered equal for Is purposes if they carry the same Kind.
func (e *DecodeError) Is(target error) bool {
	de, ok := target.(*DecodeError)
	return ok && de.Kind == e.Kind
}

// wrapWithTag prepends tag to err's Path as the error propagates up
// through a recursive decode call.
func wrapWithTag(err error, tag int64) error {
	if err == nil {
		return nil
	}

	de, ok := err.(*DecodeError)
	if !ok {
		return err
	}

	return &DecodeError{
		Kind: de.Kind,
		Tag:  de.Tag,
		Path: append([]int64{tag}, de.Path...),
	}
}
