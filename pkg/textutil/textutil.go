package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

// Preprocess normalizes whitespace and line endings in a raw transcript.
// The content itself is left untouched; speaker labels ("Name:") survive as-is.
func Preprocess(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRun.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = newlineRun.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// SplitSentences segments text into an ordered list of sentences. A sentence
// ends at '.', '!', '?' or a line break. Terminators are kept on the sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var sb strings.Builder

	flush := func() {
		s := strings.TrimSpace(sb.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		sb.Reset()
	}

	for _, r := range text {
		switch r {
		case '.', '!', '?':
			sb.WriteRune(r)
			flush()
		case '\n':
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()

	return sentences
}

// TruncateRunes cuts s to at most max bytes without splitting a UTF-8 rune;
// the cut moves backwards to the nearest rune boundary.
func TruncateRunes(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// Tokenize splits a sentence into word tokens. Tokens keep their original
// case; punctuation is dropped except for in-word apostrophes and hyphens.
func Tokenize(sentence string) []string {
	return strings.FieldsFunc(sentence, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})
}

// WordCount returns the number of word tokens in text.
func WordCount(text string) int {
	return len(Tokenize(text))
}

// stopWords is a standard English stop-word list used by the vectorizer and
// topic naming.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
		"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
		"from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
		"having", "he", "her", "here", "hers", "herself", "him", "himself",
		"his", "how", "i", "i'll", "i'm", "i've", "if", "in", "into", "is",
		"isn't", "it", "it's", "its", "itself", "just", "let's", "me", "more",
		"most", "my", "myself", "no", "nor", "not", "of", "off", "on", "once",
		"only", "or", "other", "ought", "our", "ours", "ourselves", "out",
		"over", "own", "same", "she", "should", "shouldn't", "so", "some",
		"such", "than", "that", "that's", "the", "their", "theirs", "them",
		"themselves", "then", "there", "these", "they", "they're", "this",
		"those", "through", "to", "too", "under", "until", "up", "very", "was",
		"wasn't", "we", "we're", "we've", "were", "weren't", "what", "when",
		"where", "which", "while", "who", "whom", "why", "will", "with",
		"won't", "would", "wouldn't", "you", "you'll", "you're", "you've",
		"your", "yours", "yourself", "yourselves",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the lowercased word is an English stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}
