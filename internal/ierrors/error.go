// Package ierrors implements the single domain-error kind described in
// §7: a human-readable message, distinguished from other errors only by
// that message, never by a distinct Go type per category.
//
// It is grounded on github.com/jcorbin/gothird's internal/panicerr: a
// typed error that survives a recovered panic and prints a stack trace
// under "%+v", minus panicerr's goroutine-recovery indirection, since this
// interpreter is single-threaded and recovers in place.
package ierrors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Error is the interpreter's one domain-error type.
type Error struct {
	msg   string
	stack []byte
}

// New builds an Error from a printf-style message.
func New(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.msg }

// Format supports "%+v" to additionally print any captured panic stack.
func (e *Error) Format(f fmt.State, c rune) {
	fmt.Fprint(f, e.msg)
	if c == 'v' && f.Flag('+') && len(e.stack) > 0 {
		fmt.Fprintf(f, "\npanic stack: %s", e.stack)
	}
}

// Recover runs fn, converting any panic it raises into an error: an
// existing *Error panic value is returned as-is, anything else is wrapped
// with its message and the recovered stack trace.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(*Error); ok {
			err = e
			return
		}
		err = &Error{msg: fmt.Sprint(r), stack: debug.Stack()}
	}()
	fn()
	return nil
}

// Is reports whether err is (or wraps) an *Error.
func Is(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// Stack returns the recovered panic's stack trace, if err carries one.
func Stack(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return string(e.stack)
	}
	return ""
}
