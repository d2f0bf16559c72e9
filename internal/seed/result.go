// Package seed loads a demo league into the database for local development.
package seed

import "fmt"

// Result tracks counts and errors from a seeding run.
type Result struct {
	Teams       int
	Players     int
	Assignments int
	Games       int
	Dressings   int
	Stats       int
	Errors      []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seeding run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"teams=%d players=%d assignments=%d games=%d dressings=%d stats=%d errors=%d",
		r.Teams, r.Players, r.Assignments, r.Games, r.Dressings, r.Stats,
		len(r.Errors),
	)
}
