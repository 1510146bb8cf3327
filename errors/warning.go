package errors

import (
	"fmt"
	"io"
	"os"
)

var (
	// disableWarning silences the warning channel globally.
	disableWarning bool

	// warningPrefix is prepended (with ": ") to every warning line when set.
	warningPrefix = ""

	// warningOutput receives warning lines, os.Stderr by default.
	warningOutput io.Writer = os.Stderr
)

// DisableWarning silences all subsequent warnings.
func DisableWarning() {
	disableWarning = true
}

// SetWarningOutput redirects warning lines to output.
func SetWarningOutput(output io.Writer) {
	warningOutput = output
}

// SetWarningPrefix sets the prefix prepended to warning lines.
// An empty prefix writes the message bare.
func SetWarningPrefix(prefix string) {
	warningPrefix = prefix
}

func warn(msg string) {
	if warningPrefix != "" {
		_, _ = io.WriteString(warningOutput, warningPrefix)
		_, _ = io.WriteString(warningOutput, ": ")
	}
	_, _ = io.WriteString(warningOutput, msg)
	_, _ = warningOutput.Write([]byte{'\n'})
}

// Warning writes one warning line built from a. Errors among the arguments
// are rendered via Error(). Does nothing when warnings are disabled or no
// arguments are given.
func Warning(a ...any) {
	if disableWarning || len(a) == 0 || (len(a) == 1 && a[0] == nil) {
		return
	}
	for i := range a {
		if e, ok := a[i].(error); ok {
			a[i] = e.Error()
		}
	}
	warn(fmt.Sprint(a...))
}

// Warningf writes one formatted warning line.
func Warningf(format string, a ...any) {
	if disableWarning {
		return
	}
	warn(fmt.Sprintf(format, a...))
}
