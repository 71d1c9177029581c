package buffer

import "regexp"

// CompilePattern builds the regular expression implementing a find request.
// Literal patterns are quoted; WholeWord and case folding are layered on top.
// Search front-ends call this to validate user patterns before searching.
func CompilePattern(pattern string, flags FindFlags) (*regexp.Regexp, error) {
	expr := pattern
	if flags&Regex == 0 {
		expr = regexp.QuoteMeta(pattern)
	}
	if flags&WholeWord != 0 {
		expr = `\b(?:` + expr + `)\b`
	}
	if flags&MatchCase == 0 {
		expr = `(?i)` + expr
	}
	return regexp.Compile(expr)
}
