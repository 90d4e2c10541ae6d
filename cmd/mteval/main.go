// Command mteval translates text with the phrase-based decoder, the greedy
// decoder, or the word-for-word baseline. Without model flags it runs on the
// built-in English-to-French sample system.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	arg "github.com/alexflint/go-arg"

	mteval "github.com/ieee0824/mteval-go"
	"github.com/ieee0824/mteval-go/bleu"
	"github.com/ieee0824/mteval-go/decoder"
	"github.com/ieee0824/mteval-go/dictionary"
	"github.com/ieee0824/mteval-go/moses"
)

type args struct {
	Table    string   `arg:"-t,--table" help:"phrase table JSON (default: built-in sample)"`
	LM       string   `arg:"-l,--lm" help:"language model JSON (default: built-in sample)"`
	Dict     string   `arg:"-d,--dict" help:"word dictionary JSON for word mode"`
	Mode     string   `arg:"-m,--mode" default:"beam" help:"beam, greedy, or word"`
	Beam     int      `arg:"--beam" default:"10" help:"beam width"`
	LMWeight float64  `arg:"--lm-weight" default:"0.5" help:"language model weight"`
	Moses    bool     `arg:"--moses" help:"try an external Moses decoder first"`
	Refs     []string `arg:"-r,--ref,separate" help:"reference translation to score against (repeatable)"`
	Smooth   bool     `arg:"-s,--smooth" help:"smoothed BLEU when scoring"`
	Verbose  bool     `arg:"-v,--verbose" help:"print decoder scores to stderr"`
	Text     []string `arg:"positional" help:"sentence to translate (default: stdin, one per line)"`
}

func (args) Description() string {
	return "translate text with a phrase-based statistical decoder"
}

func main() {
	var a args
	arg.MustParse(&a)

	cfg := decoder.DefaultConfig()
	cfg.BeamWidth = a.Beam
	cfg.LMWeight = a.LMWeight

	opts := []mteval.Option{mteval.WithDecoderConfig(cfg)}
	if a.Dict != "" {
		d, err := dictionary.LoadFile(a.Dict)
		if err != nil {
			fatal(err)
		}
		opts = append(opts, mteval.WithDictionary(d))
	}
	if a.Moses {
		opts = append(opts, mteval.WithExternalTranslator(moses.Detect()))
	}

	var sys *mteval.System
	if a.Table != "" || a.LM != "" {
		if a.Table == "" || a.LM == "" {
			fatal(fmt.Errorf("-table and -lm must be given together"))
		}
		var err error
		sys, err = mteval.NewSystem(a.Table, a.LM, opts...)
		if err != nil {
			fatal(err)
		}
	} else {
		sys = mteval.NewSampleSystem(opts...)
	}

	if len(a.Text) > 0 {
		translate(sys, a, strings.Join(a.Text, " "))
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		translate(sys, a, sc.Text())
	}
	if err := sc.Err(); err != nil {
		fatal(err)
	}
}

func translate(sys *mteval.System, a args, text string) {
	var out string
	switch a.Mode {
	case "beam":
		if a.Verbose {
			res := sys.TranslateWithScore(text)
			fmt.Fprintf(os.Stderr, "score=%.4f tm=%.4f lm=%.4f complete=%v\n",
				res.Score, res.TMScore, res.LMScore, res.Complete)
			out = res.Text
			break
		}
		out = sys.Translate(context.Background(), text)
	case "greedy":
		out = sys.TranslateGreedy(text)
	case "word":
		out = sys.TranslateWordByWord(text)
	default:
		fatal(fmt.Errorf("unknown mode %q (want beam, greedy, or word)", a.Mode))
	}
	fmt.Println(out)

	if len(a.Refs) > 0 {
		res, err := bleu.Score(out, a.Refs, bleu.Options{Smooth: a.Smooth})
		if err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "BLEU=%.4f BP=%.4f\n", res.Score, res.BrevityPenalty)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
