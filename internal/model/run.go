package model

import "time"

// Run is one persisted solve run.
type Run struct {
	ID        string    `json:"id"`
	Label     string    `json:"label,omitempty"`
	InputFile string    `json:"input_file,omitempty"`
	SetCount  int       `json:"set_count"`
	CreatedAt time.Time `json:"created_at"`
	Results   []Result  `json:"results,omitempty"`
}

// Result is one chain set's outcome within a run. Area 0 means the chains
// could not be assembled into any valid molecule.
type Result struct {
	Seq    int      `json:"seq"`
	Chains []string `json:"chains"`
	Area   int      `json:"area"`
}
