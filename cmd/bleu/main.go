// Command bleu scores candidate translations against references. Inputs are
// plain text files, one sentence per line; each reference file is
// line-aligned with the candidate file.
package main

import (
	"bufio"
	"fmt"
	"os"

	arg "github.com/alexflint/go-arg"

	"github.com/ieee0824/mteval-go/bleu"
)

type args struct {
	Candidate   string   `arg:"-c,--candidate,required" help:"candidate file, one sentence per line (- for stdin)"`
	Refs        []string `arg:"-r,--ref,required,separate" help:"reference file, line-aligned with the candidate (repeatable)"`
	MaxOrder    int      `arg:"-n,--max-order" default:"4" help:"highest n-gram order"`
	Smooth      bool     `arg:"-s,--smooth" help:"floor zero precisions instead of zeroing the score"`
	PerSentence bool     `arg:"--per-sentence" help:"also print a score per line"`
}

func (args) Description() string {
	return "compute corpus-level BLEU"
}

func main() {
	var a args
	arg.MustParse(&a)

	candidates, err := readLines(a.Candidate)
	if err != nil {
		fatal(err)
	}

	references := make([][]string, len(candidates))
	for _, path := range a.Refs {
		lines, err := readLines(path)
		if err != nil {
			fatal(err)
		}
		if len(lines) != len(candidates) {
			fatal(fmt.Errorf("%s: %d lines, candidate has %d", path, len(lines), len(candidates)))
		}
		for i, line := range lines {
			references[i] = append(references[i], line)
		}
	}

	opts := bleu.Options{MaxOrder: a.MaxOrder, Smooth: a.Smooth}

	if a.PerSentence {
		for i, cand := range candidates {
			res, err := bleu.Score(cand, references[i], opts)
			if err != nil {
				fatal(err)
			}
			fmt.Printf("%d\t%.4f\n", i+1, res.Score)
		}
	}

	res, err := bleu.ScoreCorpus(candidates, references, opts)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("BLEU = %.4f\n", res.Score)
	fmt.Printf("BP = %.4f (candidate %d, reference %d)\n",
		res.BrevityPenalty, res.CandidateLength, res.ReferenceLength)
	for _, st := range res.Stats {
		fmt.Printf("p%d = %.4f (%d/%d)\n", st.N, st.Precision, st.Clipped, st.Total)
	}
}

func readLines(path string) ([]string, error) {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
