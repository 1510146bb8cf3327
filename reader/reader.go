// Package reader turns a newline-delimited text stream into a sequence of
// 32-bit signed integers, skipping malformed lines instead of giving up.
package reader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/stkali/vecmin/errors"
	"github.com/stkali/vecmin/log"
)

// diagnostic emitted once per line that does not parse as an int32.
const diagnostic = "What did I say about numbers?"

// ErrUnreadableStream reports that the underlying stream failed mid-read.
// Values accumulated before the failure are still returned.
var ErrUnreadableStream = errors.New("unreadable input stream")

// LineNumberReader reads a stream line by line until end-of-input.
type LineNumberReader struct {
	scanner *bufio.Scanner
}

// New returns a LineNumberReader over r. The reader owns r until ReadAll
// returns; no other consumer may read from it meanwhile.
func New(r io.Reader) *LineNumberReader {
	return &LineNumberReader{scanner: bufio.NewScanner(r)}
}

// ReadAll consumes the stream to end-of-input and returns every line that
// parsed as a base-10 int32, in read order. Each line is trimmed of
// surrounding whitespace first. A line that is empty, non-numeric, or out of
// the int32 range emits a warning and is skipped; reading always continues
// with the next line. A stream-level read failure stops the loop and returns
// the accumulated values together with an error matching ErrUnreadableStream.
func (r *LineNumberReader) ReadAll() ([]int32, error) {
	var numbers []int32
	lineno := 0
	for r.scanner.Scan() {
		lineno++
		text := strings.TrimSpace(r.scanner.Text())
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			log.Debugf("line %d: %q is not an int32: %s", lineno, text, err)
			errors.Warning(diagnostic)
			continue
		}
		numbers = append(numbers, int32(n))
	}
	if err := r.scanner.Err(); err != nil {
		return numbers, errors.Newf("%s: %s", ErrUnreadableStream, err)
	}
	return numbers, nil
}
