package language

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// resource is the JSON language-model document: per-order counts keyed by
// space-joined token tuples, plus the smoothing parameters.
type resource struct {
	Unigrams       map[string]int `json:"unigrams"`
	Bigrams        map[string]int `json:"bigrams"`
	Trigrams       map[string]int `json:"trigrams"`
	VocabularySize int            `json:"vocabulary_size"`
	KSmoothing     float64        `json:"k_smoothing"`
}

// Load reads a language model resource. Malformed keys and invalid smoothing
// parameters are hard errors at load time.
func Load(r io.Reader) (*Model, error) {
	var res resource
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "language: decode model")
	}
	if res.VocabularySize <= 0 {
		return nil, errors.Errorf("language: vocabulary_size %d, must be > 0", res.VocabularySize)
	}
	if res.KSmoothing < 0 {
		return nil, errors.Errorf("language: k_smoothing %g, must be >= 0", res.KSmoothing)
	}

	unigrams := make(map[string]int, len(res.Unigrams))
	for key, count := range res.Unigrams {
		words, err := splitKey(key, 1)
		if err != nil {
			return nil, err
		}
		unigrams[words[0]] = count
	}

	bigrams := make(map[[2]string]int, len(res.Bigrams))
	for key, count := range res.Bigrams {
		words, err := splitKey(key, 2)
		if err != nil {
			return nil, err
		}
		bigrams[[2]string{words[0], words[1]}] = count
	}

	trigrams := make(map[[3]string]int, len(res.Trigrams))
	for key, count := range res.Trigrams {
		words, err := splitKey(key, 3)
		if err != nil {
			return nil, err
		}
		trigrams[[3]string{words[0], words[1], words[2]}] = count
	}

	return NewModel(unigrams, bigrams, trigrams, res.VocabularySize, res.KSmoothing), nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "language: open model")
	}
	defer f.Close()
	return Load(f)
}

func splitKey(key string, order int) ([]string, error) {
	words := strings.Fields(key)
	if len(words) != order {
		return nil, errors.Errorf("language: %d-gram key %q has %d words", order, key, len(words))
	}
	return words, nil
}
