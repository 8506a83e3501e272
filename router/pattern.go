package router

import (
	"fmt"
	"regexp"
	"strconv"
)

// segmentKind discriminates the two pattern segment variants.
type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segParam
)

// segment is one compiled element of a route pattern: either a literal run
// of path characters or a named parameter.
type segment struct {
	kind segmentKind

	// literal
	text string

	// parameter
	name  string
	re    *regexp.Regexp // anchored at the match start, nil when absent
	reSrc string         // regex source as written in the pattern
	multi bool
	stage int
}

// SyntaxError reports a malformed route pattern. Offset is the byte position
// in the pattern where parsing failed.
type SyntaxError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("router: invalid pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

// isNameChar reports whether c may appear in a parameter name.
func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// parsePattern compiles a route pattern into its segment sequence.
//
// Grammar:
//
//	pattern   := segment+
//	literal   := ( '\' any-char | non-special-char )+
//	parameter := ':' name ( '$' signed-int )? ( '(' balanced-regex ')' )? '*'?
//	name      := [A-Za-z0-9_]+
//
// Parameter regexes are compiled anchored at the match start. The '*' suffix
// marks a parameter as multi-segment (it may consume '/' characters); a
// multi parameter without a regex must be the final segment.
func parsePattern(pattern string) ([]segment, error) {
	fail := func(off int, reason string) ([]segment, error) {
		return nil, &SyntaxError{Pattern: pattern, Offset: off, Reason: reason}
	}

	if len(pattern) == 0 || pattern[0] != '/' {
		return fail(0, "pattern must start with '/'")
	}

	var segs []segment
	i := 0

	for i < len(pattern) {
		if pattern[i] == ':' {
			start := i
			i++

			nameStart := i
			for i < len(pattern) && isNameChar(pattern[i]) {
				i++
			}
			if i == nameStart {
				return fail(start, "parameter name must not be empty")
			}

			seg := segment{kind: segParam, name: pattern[nameStart:i]}

			if i < len(pattern) && pattern[i] == '$' {
				i++
				numStart := i
				if i < len(pattern) && pattern[i] == '-' {
					i++
				}
				for i < len(pattern) && pattern[i] >= '0' && pattern[i] <= '9' {
					i++
				}
				stage, err := strconv.Atoi(pattern[numStart:i])
				if err != nil {
					return fail(numStart, "'$' must be followed by an integer stage")
				}
				seg.stage = stage
			}

			if i < len(pattern) && pattern[i] == '(' {
				reStart := i
				i++
				depth := 1
				var src []byte
				for i < len(pattern) && depth > 0 {
					c := pattern[i]
					switch c {
					case '\\':
						if i+1 >= len(pattern) {
							return fail(i, "trailing escape in regex")
						}
						src = append(src, c, pattern[i+1])
						i += 2
						continue
					case '(':
						depth++
					case ')':
						depth--
						if depth == 0 {
							i++
							continue
						}
					}
					src = append(src, c)
					i++
				}
				if depth != 0 {
					return fail(reStart, "unterminated regex")
				}
				if len(src) == 0 {
					return fail(reStart, "empty regex")
				}
				seg.reSrc = string(src)
				re, err := regexp.Compile(`\A(?:` + seg.reSrc + `)`)
				if err != nil {
					return fail(reStart, fmt.Sprintf("bad regex: %v", err))
				}
				seg.re = re
			}

			if i < len(pattern) && pattern[i] == '*' {
				seg.multi = true
				i++
			}

			if len(segs) == 0 {
				return fail(start, "pattern must not start with a parameter")
			}
			if prev := segs[len(segs)-1]; prev.kind == segParam && prev.re == nil {
				return fail(start, "adjacent parameters require a regex on the left one")
			}

			segs = append(segs, seg)
			continue
		}

		// literal run
		litStart := i
		var text []byte
		for i < len(pattern) && pattern[i] != ':' {
			c := pattern[i]
			if c == '\\' {
				if i+1 >= len(pattern) {
					return fail(i, "trailing escape")
				}
				text = append(text, pattern[i+1])
				i += 2
				continue
			}
			text = append(text, c)
			i++
		}
		if len(text) == 0 {
			return fail(litStart, "empty literal segment")
		}

		segs = append(segs, segment{kind: segLiteral, text: string(text)})
	}

	for i, s := range segs {
		if s.kind == segParam && s.multi && s.re == nil && i != len(segs)-1 {
			return fail(len(pattern), "multi parameter without a regex must end the pattern")
		}
	}

	return segs, nil
}
