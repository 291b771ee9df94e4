package census

import (
	"fmt"
	"regexp"
)

// Filter narrows counting to files whose name matches a pattern.
type Filter struct {
	re *regexp.Regexp
}

// NewFilter compiles pattern into a Filter. A malformed pattern is a
// configuration error: the run must abort before any traversal starts.
func NewFilter(pattern string) (*Filter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling filter pattern %q: %w", pattern, err)
	}

	return &Filter{re: re}, nil
}

// Matches reports whether the entry name matches the pattern.
func (f *Filter) Matches(name string) bool {
	return f.re.MatchString(name)
}
