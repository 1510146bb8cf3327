package errors

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
)

// Tracer represents a captured stack trace.
type Tracer interface {
	StackTrace(fd io.Writer)
	fmt.Stringer
}

// depth caps how many frames a trace captures.
const depth = 1 << 5

// trace is a slice of program counters recorded at capture time.
type trace []uintptr

var _ Tracer = (*trace)(nil)

// String implements fmt.Stringer.
func (t trace) String() string {
	buf := &bytes.Buffer{}
	t.StackTrace(buf)
	return buf.String()
}

// StackTrace writes one "function / file:line" pair per captured frame.
func (t trace) StackTrace(fd io.Writer) {
	fs := runtime.CallersFrames(t)
	for {
		frame, ok := fs.Next()
		if frame.Function != "" {
			_, _ = fmt.Fprintf(fd, "    %s(...)\n", frame.Function)
			_, _ = fmt.Fprintf(fd, "         %s:%d\n", frame.File, frame.Line)
		}
		if !ok {
			return
		}
	}
}

// GetTrace captures the calling goroutine's stack, skipping `skip` frames.
func GetTrace(skip int) Tracer {
	pcs := make(trace, depth)
	count := runtime.Callers(skip, pcs[:])
	return pcs[:count]
}
