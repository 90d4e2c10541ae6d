// Package moses bridges to an externally installed Moses-style SMT decoder.
// The binary is an opaque collaborator: it either translates or is
// "unavailable", and unavailability is an expected condition the evaluation
// pipeline recovers from, never a crash.
package moses

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrUnavailable reports that the external decoder is missing, misconfigured,
// or failed. Callers test with errors.Is and fall back to the toy decoder.
var ErrUnavailable = errors.New("moses: decoder unavailable")

// DefaultTimeout bounds one external decode call.
const DefaultTimeout = 30 * time.Second

// configFile is the decoder configuration expected inside the model directory.
const configFile = "moses.ini"

// Translator is the capability interface the evaluation pipeline depends on.
type Translator interface {
	Available() bool
	Translate(ctx context.Context, text string) (string, error)
}

// Decoder invokes a Moses-style decoder binary over a trained model
// directory.
type Decoder struct {
	BinaryPath string
	ModelDir   string
	Timeout    time.Duration // zero means DefaultTimeout
}

// NewDecoder creates a decoder for an explicit binary and model directory.
// Availability is checked per call, not here, since either may appear later.
func NewDecoder(binaryPath, modelDir string) *Decoder {
	return &Decoder{BinaryPath: binaryPath, ModelDir: modelDir}
}

// Detect locates a decoder installation from the MOSES_DECODER and
// MOSES_MODEL environment variables, common install locations, and $PATH.
// The returned decoder may not be Available; that is not an error.
func Detect() *Decoder {
	return NewDecoder(detectBinary(), detectModelDir())
}

func detectBinary() string {
	if path := os.Getenv("MOSES_DECODER"); path != "" && exists(path) {
		return path
	}
	home, _ := os.UserHomeDir()
	candidates := []string{
		"/usr/local/bin/moses",
		"/usr/bin/moses",
		filepath.Join(home, "mosesdecoder", "bin", "moses"),
		filepath.Join(home, "moses", "bin", "moses"),
	}
	for _, path := range candidates {
		if exists(path) {
			return path
		}
	}
	if path, err := exec.LookPath("moses"); err == nil {
		return path
	}
	return ""
}

func detectModelDir() string {
	if dir := os.Getenv("MOSES_MODEL"); dir != "" && exists(filepath.Join(dir, configFile)) {
		return dir
	}
	home, _ := os.UserHomeDir()
	candidates := []string{
		filepath.Join(home, "moses-models"),
		"moses-model",
		"model",
	}
	for _, dir := range candidates {
		if exists(filepath.Join(dir, configFile)) {
			return dir
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Available reports whether the binary and a model directory holding
// moses.ini are both present.
func (d *Decoder) Available() bool {
	if d == nil || d.BinaryPath == "" || d.ModelDir == "" {
		return false
	}
	return exists(d.BinaryPath) && exists(filepath.Join(d.ModelDir, configFile))
}

// Translate pipes text through the external decoder and returns its output
// line. Every failure mode, including timeout, wraps ErrUnavailable.
func (d *Decoder) Translate(ctx context.Context, text string) (string, error) {
	if !d.Available() {
		return "", ErrUnavailable
	}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, d.BinaryPath, "-f", filepath.Join(d.ModelDir, configFile))
	cmd.Stdin = strings.NewReader(text + "\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(ErrUnavailable, "run %s: %v (%s)", d.BinaryPath, err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Fallback tries an external translator first and falls back to a local
// translate function on any failure. It is always Available.
type Fallback struct {
	External Translator
	Local    func(text string) string
}

// Available always reports true: the local path never refuses.
func (f *Fallback) Available() bool {
	return true
}

// Translate returns the external translation when the collaborator is
// configured and succeeds, and the local translation otherwise.
func (f *Fallback) Translate(ctx context.Context, text string) (string, error) {
	if f.External != nil && f.External.Available() {
		if out, err := f.External.Translate(ctx, text); err == nil {
			return out, nil
		}
	}
	return f.Local(text), nil
}
