// Command evalserver exposes the translation and scoring pipeline over HTTP.
//
//	POST /api/translate     {"text": "...", "mode": "beam|greedy|word"}
//	POST /api/bleu          {"candidate": "...", "references": ["..."], "smooth": true}
//	POST /api/bleu/corpus   {"candidates": ["..."], "references": [["..."]], "smooth": true}
//	GET  /api/health
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/gorilla/mux"

	mteval "github.com/ieee0824/mteval-go"
	"github.com/ieee0824/mteval-go/bleu"
	"github.com/ieee0824/mteval-go/dictionary"
	"github.com/ieee0824/mteval-go/moses"
)

type args struct {
	Addr  string `arg:"-a,--addr" default:":8080" help:"listen address"`
	Table string `arg:"-t,--table" help:"phrase table JSON (default: built-in sample)"`
	LM    string `arg:"-l,--lm" help:"language model JSON (default: built-in sample)"`
	Dict  string `arg:"-d,--dict" help:"word dictionary JSON"`
	Moses bool   `arg:"--moses" help:"try an external Moses decoder first"`
}

func (args) Description() string {
	return "HTTP server for translation and BLEU scoring"
}

func main() {
	var a args
	arg.MustParse(&a)

	var opts []mteval.Option
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

	srv := &server{sys: sys}

	r := mux.NewRouter()
	r.HandleFunc("/api/translate", srv.handleTranslate).Methods(http.MethodPost)
	r.HandleFunc("/api/bleu", srv.handleBLEU).Methods(http.MethodPost)
	r.HandleFunc("/api/bleu/corpus", srv.handleBLEUCorpus).Methods(http.MethodPost)
	r.HandleFunc("/api/health", srv.handleHealth).Methods(http.MethodGet)

	log.Printf("listening on %s", a.Addr)
	httpSrv := &http.Server{
		Addr:         a.Addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		fatal(err)
	}
}

type server struct {
	sys *mteval.System
}

type translateRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type translateResponse struct {
	Translation string   `json:"translation"`
	Score       *float64 `json:"score,omitempty"`
	Complete    *bool    `json:"complete,omitempty"`
}

func (s *server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var resp translateResponse
	switch req.Mode {
	case "", "beam":
		res := s.sys.TranslateWithScore(req.Text)
		resp.Translation = res.Text
		resp.Score = &res.Score
		resp.Complete = &res.Complete
	case "greedy":
		resp.Translation = s.sys.TranslateGreedy(req.Text)
	case "word":
		resp.Translation = s.sys.TranslateWordByWord(req.Text)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown mode %q", req.Mode))
		return
	}
	writeJSON(w, resp)
}

type bleuRequest struct {
	Candidate  string   `json:"candidate"`
	References []string `json:"references"`
	MaxOrder   int      `json:"max_order"`
	Smooth     bool     `json:"smooth"`
}

func (s *server) handleBLEU(w http.ResponseWriter, r *http.Request) {
	var req bleuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.References) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("references must not be empty"))
		return
	}

	res, err := bleu.Score(req.Candidate, req.References, bleu.Options{
		MaxOrder: req.MaxOrder,
		Smooth:   req.Smooth,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, res)
}

type bleuCorpusRequest struct {
	Candidates []string   `json:"candidates"`
	References [][]string `json:"references"`
	MaxOrder   int        `json:"max_order"`
	Smooth     bool       `json:"smooth"`
}

func (s *server) handleBLEUCorpus(w http.ResponseWriter, r *http.Request) {
	var req bleuCorpusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := bleu.ScoreCorpus(req.Candidates, req.References, bleu.Options{
		MaxOrder: req.MaxOrder,
		Smooth:   req.Smooth,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, res)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "ok",
		"phrases": s.sys.Table.Len(),
		"vocab":   s.sys.LM.VocabSize,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
