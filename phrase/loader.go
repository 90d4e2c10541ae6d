package phrase

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads a phrase table resource: a JSON object keyed by source phrase,
// each value an ordered list of {"phrase": ..., "prob": ...} candidates.
// Malformed entries are hard errors, not silently dropped.
func Load(r io.Reader) (*Table, error) {
	var raw map[string][]Candidate
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "phrase: decode table")
	}

	t := New()
	for source, cands := range raw {
		if len(cands) == 0 {
			return nil, errors.Errorf("phrase: source %q has no candidates", source)
		}
		for _, c := range cands {
			if err := t.Add(source, c.Phrase, c.Prob); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "phrase: open table")
	}
	defer f.Close()
	return Load(f)
}
