package dictionary

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// translations accepts both resource forms: a single string or a list of
// strings ordered most common first.
type translations []string

func (t *translations) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = translations{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = translations(many)
	return nil
}

// Load reads a bilingual dictionary resource: a JSON object keyed by source
// word, each value either one translation or a list of them.
func Load(r io.Reader) (*Dictionary, error) {
	var raw map[string]translations
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "dictionary: decode")
	}

	d := New()
	for source, targets := range raw {
		if source == "" {
			return nil, errors.New("dictionary: empty source word")
		}
		for _, target := range targets {
			d.Add(source, target)
		}
	}
	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dictionary: open")
	}
	defer f.Close()
	return Load(f)
}
