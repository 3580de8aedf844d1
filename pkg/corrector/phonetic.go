package corrector

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/spellkit-go/spellkit/pkg"
	"github.com/spellkit-go/spellkit/pkg/concurrent"
)

// PhoneticEncoder maps a word to a fixed-form code so that words pronounced
// alike share a code despite different spellings. Implementations must be
// deterministic; one encoder is selected per language at model construction and
// never switched at runtime.
type PhoneticEncoder interface {
	Encode(word string) string
}

// NewPhoneticEncoder selects the encoder for a language code.
func NewPhoneticEncoder(language string) (PhoneticEncoder, error) {
	switch language {
	case "en":
		return LatinSoundex{}, nil
	default:
		return nil, fmt.Errorf("language %q is not supported", language)
	}
}

// LatinSoundex implements the classic Soundex encoding for Latin script: the
// first letter is kept, later consonants map to confusion-class digits, vowels
// and h/w/y are dropped, adjacent duplicate digits collapse (including across
// h/w), and the code is padded or truncated to 4 characters.
type LatinSoundex struct{}

func soundexClass(r rune) byte {
	switch r {
	case 'B', 'F', 'P', 'V':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	default:
		return 0
	}
}

func (LatinSoundex) Encode(word string) string {
	runes := []rune(strings.ToUpper(word))
	if len(runes) == 0 || runes[0] < 'A' || runes[0] > 'Z' {
		return ""
	}

	var code strings.Builder
	code.WriteRune(runes[0])
	prevClass := soundexClass(runes[0])

	for _, r := range runes[1:] {
		if code.Len() == SOUNDEX_CODE_LENGTH {
			break
		}
		if !unicode.IsLetter(r) {
			continue
		}
		class := soundexClass(r)
		switch {
		case class != 0:
			if class != prevClass {
				code.WriteByte(class)
			}
			prevClass = class
		case r == 'H' || r == 'W':
			// h and w are transparent: same-class consonants around them still
			// collapse into one digit
		default:
			prevClass = 0
		}
	}

	encoded := code.String()
	for len(encoded) < SOUNDEX_CODE_LENGTH {
		encoded += "0"
	}
	return encoded
}

// PhoneticIndex groups vocabulary words by phonetic code. A lookup returns all
// words sharing the query's code; there is no distance intrinsic to this path,
// so frequency and context must disambiguate the candidates.
type PhoneticIndex struct {
	codes   map[string][]int
	encoder PhoneticEncoder
	idMap   *pkg.IDMap
}

func BuildPhoneticIndex(idMap *pkg.IDMap, termIDs []int, encoder PhoneticEncoder, workers int) *PhoneticIndex {
	idx := &PhoneticIndex{
		codes:   make(map[string][]int),
		encoder: encoder,
		idMap:   idMap,
	}

	if len(termIDs) == 0 {
		return idx
	}
	if workers < 1 {
		workers = 1
	}
	partitions := partitionTermIDs(termIDs, workers)

	buildPartial := func(part deletionPartition) map[string][]int {
		partial := make(map[string][]int)
		for _, termID := range part.termIDs {
			word := idMap.GetStr(termID)
			code := encoder.Encode(word)
			if code == "" {
				continue
			}
			partial[code] = append(partial[code], termID)
		}
		return partial
	}

	worker := concurrent.NewBackgroundWorker(workers, len(partitions), buildPartial)
	worker.Start()
	for _, part := range partitions {
		worker.TriggerProcessing(part)
	}
	worker.Close()

	for partial := range worker.Results() {
		for code, ids := range partial {
			idx.codes[code] = append(idx.codes[code], ids...)
		}
	}
	for code := range idx.codes {
		sort.Ints(idx.codes[code])
	}

	return idx
}

// Lookup returns the term IDs of every vocabulary word sharing the query's
// phonetic code, in ascending ID order.
func (idx *PhoneticIndex) Lookup(query string) []int {
	code := idx.encoder.Encode(query)
	if code == "" {
		return nil
	}
	members := idx.codes[code]
	out := make([]int, len(members))
	copy(out, members)
	return out
}

func (idx *PhoneticIndex) Len() int {
	return len(idx.codes)
}
