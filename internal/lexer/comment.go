package lexer

import "strings"

// FirstCommentDescription scans raw SOL25 source text for the first
// double-quoted comment run ("...") outside a single-quoted string literal
// and returns its content XML-attribute-
// escaped, with every newline then replaced by the literal sequence
// "&nbsp;" (applied after escaping, so the sequence's own "&" is never
// re-escaped to "&amp;nbsp;"). The returned bool is false if the source
// contains no comment, or the first comment is never closed (in which
// case the caller will also observe a lexical error from the main token
// stream).
//
// This is a single scan over the source text, independent of tokenization,
// so that the XML emitter's description attribute does not depend on how
// far the lexer/parser got before failing.
func FirstCommentDescription(src string) (string, bool) {
	start := -1
	inString := false
	for i := 0; i < len(src) && start == -1; i++ {
		switch {
		case inString && src[i] == '\\':
			i++ // skip the escaped character
		case src[i] == '\'':
			inString = !inString
		case !inString && src[i] == '"':
			start = i
		}
	}
	if start == -1 {
		return "", false
	}
	end := strings.IndexByte(src[start+1:], '"')
	if end == -1 {
		return "", false
	}
	content := src[start+1 : start+1+end]
	return strings.ReplaceAll(escapeAttr(content), "\n", "&nbsp;"), true
}

// escapeAttr XML-escapes text for inclusion in a double-quoted attribute
// value. A comment can never itself contain an unescaped '"' (the first
// one ends it), but '&', '<', '>', and '\'' all need escaping.
func escapeAttr(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
