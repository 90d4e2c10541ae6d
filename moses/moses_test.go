package moses

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder lays out a shell script and moses.ini so Decoder sees a
// complete installation.
func fakeDecoder(t *testing.T, script string) *Decoder {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "moses")
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "moses.ini"), []byte("# fixture\n"), 0o644))
	return NewDecoder(bin, dir)
}

func TestDecoder_Unavailable(t *testing.T) {
	d := NewDecoder("", "")
	assert.False(t, d.Available())

	_, err := d.Translate(context.Background(), "hello")
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestDecoder_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "moses")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\ncat\n"), 0o755))

	d := NewDecoder(bin, dir)
	assert.False(t, d.Available(), "no moses.ini in model dir")
}

func TestDecoder_Translate(t *testing.T) {
	d := fakeDecoder(t, "#!/bin/sh\ncat\n")
	require.True(t, d.Available())

	out, err := d.Translate(context.Background(), "le chat")
	require.NoError(t, err)
	assert.Equal(t, "le chat", out)
}

func TestDecoder_Timeout(t *testing.T) {
	d := fakeDecoder(t, "#!/bin/sh\nsleep 5\n")
	d.Timeout = 50 * time.Millisecond

	_, err := d.Translate(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

type stubTranslator struct {
	available bool
	out       string
	err       error
}

func (s *stubTranslator) Available() bool {
	return s.available
}

func (s *stubTranslator) Translate(ctx context.Context, text string) (string, error) {
	return s.out, s.err
}

func TestFallback(t *testing.T) {
	local := func(text string) string { return "local:" + text }

	t.Run("external wins when it works", func(t *testing.T) {
		f := &Fallback{
			External: &stubTranslator{available: true, out: "external"},
			Local:    local,
		}
		out, err := f.Translate(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "external", out)
	})

	t.Run("unavailable external falls back", func(t *testing.T) {
		f := &Fallback{
			External: &stubTranslator{available: false},
			Local:    local,
		}
		out, err := f.Translate(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "local:hello", out)
	})

	t.Run("failing external falls back", func(t *testing.T) {
		f := &Fallback{
			External: &stubTranslator{available: true, err: ErrUnavailable},
			Local:    local,
		}
		out, err := f.Translate(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "local:hello", out)
	})

	t.Run("nil external falls back", func(t *testing.T) {
		f := &Fallback{Local: local}
		assert.True(t, f.Available())
		out, err := f.Translate(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "local:hello", out)
	})
}
