package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pronoun swaps run as plain substring replacement, exactly like the
// source material this was ported from. That can touch substrings inside
// longer tokens; the behavior is kept on purpose so localized text stays
// byte-for-byte comparable with the original assistant.
var pronounReplacer = strings.NewReplacer(
	"Bạn", "Mình",
	"bạn", "mình",
	"Tôi", "Em",
	"tôi", "em",
)

// The three dialect words are replaced only as whole words, with the
// boundary checked over Unicode letters: regexp \b is ASCII-only and
// would treat a Vietnamese diacritic neighbor as a boundary.
var dialectWords = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)không`), "hông"},
	{regexp.MustCompile(`(?i)nhanh`), "lẹ"},
	{regexp.MustCompile(`(?i)nghiêm trọng`), "căng"},
}

// Localize rewrites a reply into the informal Mekong-delta register:
// formal pronouns become the local address forms and three fixed words get
// their dialect spelling. Pure text transform, idempotent on its own
// output.
func Localize(text string) string {
	if text == "" {
		return ""
	}
	text = pronounReplacer.Replace(text)
	for _, d := range dialectWords {
		text = replaceWholeWord(text, d.re, d.repl)
	}
	return strings.TrimSpace(text)
}

// replaceWholeWord substitutes every match of re whose neighbors are not
// letters. Neighbor runes are decoded directly so the boundary holds for
// the full Unicode letter range, not just ASCII.
func replaceWholeWord(text string, re *regexp.Regexp, repl string) string {
	locs := re.FindAllStringIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if letterBefore(text, start) || letterAfter(text, end) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(repl)
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

func letterBefore(s string, i int) bool {
	r, size := utf8.DecodeLastRuneInString(s[:i])
	return size > 0 && unicode.IsLetter(r)
}

func letterAfter(s string, i int) bool {
	r, size := utf8.DecodeRuneInString(s[i:])
	return size > 0 && unicode.IsLetter(r)
}
