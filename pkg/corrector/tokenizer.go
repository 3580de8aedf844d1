package corrector

import (
	"strings"
	"unicode"
)

// token is one word of the input plus the separator run that precedes it. Keeping
// the separators verbatim lets the orchestrator reassemble the corrected text with
// the exact original spacing and punctuation.
type token struct {
	sep  string
	word string
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// tokenize splits text into words and separator runs. Any rune that is not a
// letter or a digit acts as a token boundary and is preserved as separator text.
// The trailing separator run after the last word is returned separately.
func tokenize(text string) ([]token, string) {
	var tokens []token
	var sep, word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, token{sep: sep.String(), word: word.String()})
			sep.Reset()
			word.Reset()
		}
	}

	for _, r := range text {
		if isWordRune(r) {
			word.WriteRune(r)
			continue
		}
		flush()
		sep.WriteRune(r)
	}
	flush()

	return tokens, sep.String()
}

// recase transfers the casing pattern of the original token onto the lowercase
// replacement: all-caps stays all-caps, a leading capital stays a leading capital.
func recase(original, replacement string) string {
	if replacement == "" || original == "" {
		return replacement
	}

	upperCount := 0
	letterCount := 0
	for _, r := range original {
		if unicode.IsLetter(r) {
			letterCount++
			if unicode.IsUpper(r) {
				upperCount++
			}
		}
	}
	if letterCount > 1 && upperCount == letterCount {
		return strings.ToUpper(replacement)
	}

	firstRune := []rune(original)[0]
	if unicode.IsUpper(firstRune) {
		replacementRunes := []rune(replacement)
		replacementRunes[0] = unicode.ToUpper(replacementRunes[0])
		return string(replacementRunes)
	}
	return replacement
}

func hasDigit(word string) bool {
	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// tokenizeWords returns only the lowercased words of a sentence, for training.
func tokenizeWords(sentence string) []string {
	tokens, _ := tokenize(sentence)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		words = append(words, strings.ToLower(tok.word))
	}
	return words
}
