package chanx

import "fmt"

// Status is the closed set of outcomes an operation on a Channel or a
// call to Select can report. It mirrors the taxonomy in the source
// specification's error handling design: a normal completion, a
// channel-state condition, and a programmer error, kept distinct so
// callers can branch on them directly.
type Status int

const (
	// Success means the operation completed and its postconditions
	// hold: a value was transferred, or the channel transitioned to
	// closed.
	Success Status = iota
	// WouldBlock is returned only by non-blocking Send/Receive/Select
	// probes: the operation could not complete without suspension, and
	// no state changed.
	WouldBlock
	// Closed means the channel is closed. For Send/Receive it means no
	// value was transferred; for Close it means the channel was
	// already closed.
	Closed
	// DestroyError means Destroy was called on a channel that is not
	// yet closed. No state changed.
	DestroyError
	// OtherError covers invalid arguments: a nil channel, an empty
	// select entry list, or similar programmer error. No state
	// changed.
	OtherError
)

// String renders the status the way the teacher's own plainError
// values are rendered: a short, lower-case, punctuation-free phrase.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case WouldBlock:
		return "would block"
	case Closed:
		return "closed"
	case DestroyError:
		return "destroy error"
	case OtherError:
		return "other error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Error lets a bare Status satisfy the error interface, so sentinel
// comparisons like errors.Is(err, chanx.Closed) work against the
// *Error values operations actually return.
func (s Status) Error() string {
	return s.String()
}

// Error adapts a Status into the standard error interface, carrying
// the operation name and (for Select) the offending entry index so
// callers can report exactly what failed without string-matching
// error text.
type Error struct {
	Op     string // "send", "receive", "close", "destroy", "select"
	Status Status
	Index  int // meaningful only when Op == "select"; index of the
	// entry whose status is reported.
}

func (e *Error) Error() string {
	if e.Op == "select" {
		return fmt.Sprintf("chanx: select: entry %d: %s", e.Index, e.Status)
	}
	return fmt.Sprintf("chanx: %s: %s", e.Op, e.Status)
}

// Is reports whether target is the same Status, so callers can write
// errors.Is(err, chanx.Closed) instead of type-asserting *Error.
func (e *Error) Is(target error) bool {
	s, ok := target.(Status)
	return ok && e.Status == s
}

// statusError builds the *Error a non-Success status is reported as.
// Success itself is never wrapped in an error; callers get (Success,
// nil).
func statusError(op string, status Status, index int) error {
	if status == Success {
		return nil
	}
	return &Error{Op: op, Status: status, Index: index}
}
