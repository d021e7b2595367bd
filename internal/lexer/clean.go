package lexer

import "strings"

// Clean normalizes raw source text into the logical-line form the lexer
// expects: line endings collapsed to "\n", backslash line-continuations
// joined, comments stripped, and blank lines removed.
//
// Order matters: continuations are joined before comment stripping so a
// continued line is treated as a single logical line when looking for the
// last '#' and the last '"'.
func Clean(src string) string {
	src = normalizeNewlines(src)
	src = joinContinuations(src)

	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = stripComment(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// normalizeNewlines rewrites "\r\n" and bare "\r" to "\n".
func normalizeNewlines(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return src
}

// joinContinuations deletes every "\\\n" occurrence, merging the following
// line into the current one.
func joinContinuations(src string) string {
	return strings.ReplaceAll(src, "\\\n", "")
}

// stripComment removes a full-line comment (first non-whitespace rune is
// '#') or truncates the line at a trailing in-line comment: a '#' counts as
// a comment starter only when it occurs after the last '"' on the line, so
// a '#' inside a string literal is never treated as a comment.
func stripComment(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}

	lastHash := strings.LastIndexByte(line, '#')
	if lastHash < 0 {
		return line
	}
	lastQuote := strings.LastIndexByte(line, '"')
	if lastHash > lastQuote {
		return line[:lastHash]
	}
	return line
}
