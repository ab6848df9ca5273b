package printer

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder is a channel that keeps every write separately and counts flushes.
type recorder struct {
	writes  []string
	flushes int

	failOn string
	err    error
}

func (r *recorder) Write(p []byte) (int, error) {
	if r.err != nil && string(p) == r.failOn {
		return 0, r.err
	}

	r.writes = append(r.writes, string(p))

	return len(p), nil
}

func (r *recorder) Flush() error {
	r.flushes++
	return nil
}

func (r *recorder) text() string {
	return strings.Join(r.writes, "")
}

// flushTwice flushes the channel two times.
type flushTwice struct{}

func (flushTwice) Flush(w io.Writer) error {
	if err := (NativeFlush{}).Flush(w); err != nil {
		return err
	}

	return NativeFlush{}.Flush(w)
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w

	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}
