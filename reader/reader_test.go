package reader

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stkali/vecmin/errors"
)

// captureWarnings redirects the warning channel into a buffer for the
// duration of the test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	errors.SetWarningOutput(&buf)
	t.Cleanup(func() {
		errors.SetWarningOutput(os.Stderr)
	})
	return &buf
}

func TestReadAll(t *testing.T) {

	cases := []struct {
		name     string
		input    string
		expect   []int32
		warnings int
	}{
		{
			"sample with junk",
			"18\n5\nabc\n7\n\n9\n27\n",
			[]int32{18, 5, 7, 9, 27},
			2,
		},
		{
			"all valid",
			"1\n2\n3\n",
			[]int32{1, 2, 3},
			0,
		},
		{
			"whitespace trimmed",
			"  42  \n\t-7\n",
			[]int32{42, -7},
			0,
		},
		{
			"no trailing newline",
			"5",
			[]int32{5},
			0,
		},
		{
			"out of range skipped",
			"2147483648\n2147483647\n-2147483649\n-2147483648\n",
			[]int32{2147483647, -2147483648},
			2,
		},
		{
			"only junk",
			"one\ntwo\n",
			nil,
			2,
		},
		{
			"empty stream",
			"",
			nil,
			0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := captureWarnings(t)
			numbers, err := New(strings.NewReader(c.input)).ReadAll()
			require.NoError(t, err)
			require.Equal(t, c.expect, numbers)
			require.Equal(t, c.warnings, strings.Count(buf.String(), "\n"))
		})
	}
}

func TestReadAllDiagnosticText(t *testing.T) {
	buf := captureWarnings(t)
	_, err := New(strings.NewReader("oops\n")).ReadAll()
	require.NoError(t, err)
	require.Equal(t, "What did I say about numbers?\n", buf.String())
}

// brokenReader yields its data and then fails.
type brokenReader struct {
	data []byte
	err  error
}

func (b *brokenReader) Read(p []byte) (int, error) {
	if len(b.data) == 0 {
		return 0, b.err
	}
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, nil
}

func TestReadAllUnreadableStream(t *testing.T) {
	captureWarnings(t)
	broken := &brokenReader{
		data: []byte("18\n5\n"),
		err:  errors.New("connection reset"),
	}
	numbers, err := New(broken).ReadAll()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnreadableStream)
	require.Equal(t, []int32{18, 5}, numbers)
}
