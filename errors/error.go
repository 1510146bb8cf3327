package errors

import (
	stderr "errors"
	"fmt"
	"io"
)

var Is = stderr.Is
var As = stderr.As
var Join = stderr.Join

type errString string

func (e errString) Error() string {
	return string(e)
}

// traced is an error with the stack trace of the New/Newf call site.
// Any error passed as a formatting argument to Newf is kept in wraps,
// so Is and As see through the formatted message.
type traced struct {
	msg   errString
	wraps []error
	Tracer
}

func (t *traced) Error() string {
	return string(t.msg)
}

func (t *traced) Unwrap() []error {
	return t.wraps
}

func (t *traced) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = fmt.Fprintf(f, "Error: %s\nTrace:\n", t.msg)
			t.StackTrace(f)
			return
		}
		_, _ = io.WriteString(f, t.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", t.Error())
	default:
		_, _ = io.WriteString(f, t.Error())
	}
}

var _ error = (*traced)(nil)
var _ fmt.Formatter = (*traced)(nil)

// Newf returns an error with a formatted message and the caller's stack
// trace. Error values among the arguments are wrapped in addition to being
// rendered, so Is(Newf("%s: %s", ErrFoo, cause), ErrFoo) holds.
func Newf(format string, a ...any) error {
	err := &traced{
		msg:    errString(fmt.Sprintf(format, a...)),
		Tracer: GetTrace(3),
	}
	for _, arg := range a {
		if wrapped, ok := arg.(error); ok {
			err.wraps = append(err.wraps, wrapped)
		}
	}
	return err
}

// New returns an error with the given text and the caller's stack trace.
func New(text string) error {
	return &traced{
		msg:    errString(text),
		Tracer: GetTrace(3),
	}
}
