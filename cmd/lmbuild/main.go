// Command lmbuild counts n-grams over a text corpus and writes a trigram
// language model resource as JSON. Input is one sentence per line, tokens
// separated by whitespace; casing and punctuation are normalized.
package main

import (
	"bufio"
	"fmt"
	"os"

	arg "github.com/alexflint/go-arg"

	"github.com/ieee0824/mteval-go/language"
	"github.com/ieee0824/mteval-go/tokenize"
)

type args struct {
	In  string  `arg:"-i,--in" default:"-" help:"corpus file, one sentence per line (- for stdin)"`
	Out string  `arg:"-o,--out" default:"-" help:"output JSON file (- for stdout)"`
	K   float64 `arg:"-k" default:"0.5" help:"add-k smoothing constant"`
}

func (args) Description() string {
	return "build a trigram language model from a text corpus"
}

func main() {
	var a args
	arg.MustParse(&a)

	in := os.Stdin
	if a.In != "-" {
		f, err := os.Open(a.In)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		in = f
	}

	b := language.NewBuilder(a.K)
	sentences := 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		words := tokenize.Clean(sc.Text())
		if len(words) == 0 {
			continue
		}
		b.AddSentence(words)
		sentences++
	}
	if err := sc.Err(); err != nil {
		fatal(err)
	}
	if sentences == 0 {
		fatal(fmt.Errorf("no sentences in input"))
	}

	out := os.Stdout
	if a.Out != "-" {
		f, err := os.Create(a.Out)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := b.WriteJSON(out); err != nil {
		fatal(err)
	}

	m := b.Model()
	fmt.Fprintf(os.Stderr, "%d sentences, vocabulary %d, k=%g\n", sentences, m.VocabSize, a.K)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
