package model

// NormalizeError records a normalization failure for a pool snapshot.
type NormalizeError struct {
	Pool  string `json:"pool"`
	Field string `json:"field"`
	Line  int    `json:"line"`
	Error string `json:"error"`
}
