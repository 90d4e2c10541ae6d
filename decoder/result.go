package decoder

// Result is the outcome of one decode.
type Result struct {
	Text     string   // space-joined target tokens
	Tokens   []string // target tokens
	TMScore  float64  // accumulated phrase log-probability
	LMScore  float64  // language model log-probability of the full output
	Score    float64  // log-linear total used for selection
	Complete bool     // every source position covered
}
