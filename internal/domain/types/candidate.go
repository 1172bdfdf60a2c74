package types

// Candidate is one decoded attempt produced by a brute-force sweep.
//
// Label names the cipher and, for dictionary sweeps, the key that was tried.
type Candidate struct {
	Score float64 `json:"score"`
	Text  string  `json:"text"`
	Label string  `json:"label"`
}
