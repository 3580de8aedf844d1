package corrector

import (
	"sort"

	"github.com/spellkit-go/spellkit/pkg"
	"github.com/spellkit-go/spellkit/pkg/concurrent"
)

// IndexHit is one vocabulary word returned by an approximate index, with the
// true Damerau-Levenshtein distance from the query.
type IndexHit struct {
	TermID   int
	Word     string
	Distance int
}

// DeletionIndex is a SymSpell-style symmetric-delete index. Every vocabulary
// word is stored under all of its deletion variants up to the word's allowed
// edit distance; lookups generate the query's own deletion variants and probe
// the same key space. Because delete-only generation over-approximates the true
// edit distance, every probed candidate is re-verified with the full
// Damerau-Levenshtein distance before it is returned.
type DeletionIndex struct {
	entries map[string][]int
	table   distanceTable
	idMap   *pkg.IDMap
}

type deletionPartition struct {
	termIDs []int
}

// BuildDeletionIndex derives the deletion-variant map from the current
// vocabulary. The vocabulary is partitioned across workers; each worker builds
// a partial variant map and the partials are merged with plain set unions, which
// is safe because the keys are deterministic strings.
func BuildDeletionIndex(idMap *pkg.IDMap, termIDs []int, table distanceTable, workers int) *DeletionIndex {
	idx := &DeletionIndex{
		entries: make(map[string][]int),
		table:   table,
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
			maxDeletes := table.forLength(len([]rune(word)))
			for _, variant := range deleteVariants(word, maxDeletes) {
				partial[variant] = append(partial[variant], termID)
			}
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
		for variant, ids := range partial {
			idx.entries[variant] = append(idx.entries[variant], ids...)
		}
	}
	// partials arrive in nondeterministic order; sort every posting so lookups
	// stay deterministic
	for variant := range idx.entries {
		sort.Ints(idx.entries[variant])
	}

	return idx
}

func partitionTermIDs(termIDs []int, workers int) []deletionPartition {
	if workers > len(termIDs) {
		workers = len(termIDs)
	}
	partitions := make([]deletionPartition, 0, workers)
	chunkSize := (len(termIDs) + workers - 1) / workers
	for start := 0; start < len(termIDs); start += chunkSize {
		end := start + chunkSize
		if end > len(termIDs) {
			end = len(termIDs)
		}
		partitions = append(partitions, deletionPartition{termIDs: termIDs[start:end]})
	}
	return partitions
}

// deleteVariants returns every string obtainable from word by deleting between 0
// and maxDeletes characters, the word itself included so exact matches resolve
// without extra work.
func deleteVariants(word string, maxDeletes int) []string {
	seen := map[string]struct{}{word: {}}
	queue := []string{word}

	for depth := 0; depth < maxDeletes; depth++ {
		next := make([]string, 0, len(queue))
		for _, variant := range queue {
			runes := []rune(variant)
			if len(runes) <= 1 {
				continue
			}
			for i := range runes {
				shorter := string(runes[:i]) + string(runes[i+1:])
				if _, ok := seen[shorter]; ok {
					continue
				}
				seen[shorter] = struct{}{}
				next = append(next, shorter)
			}
		}
		queue = next
	}

	variants := make([]string, 0, len(seen))
	for variant := range seen {
		variants = append(variants, variant)
	}
	sort.Strings(variants)
	return variants
}

// Lookup returns every vocabulary word whose true edit distance from the query
// is within the query's allowed budget. Results are sorted by distance, then
// lexicographically, so identical model state always yields identical output.
func (idx *DeletionIndex) Lookup(query string) []IndexHit {
	maxDistance := idx.table.forLength(len([]rune(query)))

	collected := make(map[int]struct{})
	var hits []IndexHit
	for _, variant := range deleteVariants(query, maxDistance) {
		for _, termID := range idx.entries[variant] {
			if _, ok := collected[termID]; ok {
				continue
			}
			collected[termID] = struct{}{}

			word := idx.idMap.GetStr(termID)
			// mandatory re-verification: shared deletion variants can suggest a
			// proximity the true distance does not support
			distance := DamerauLevenshtein(query, word)
			if distance > maxDistance {
				continue
			}
			hits = append(hits, IndexHit{TermID: termID, Word: word, Distance: distance})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].Word < hits[j].Word
	})
	return hits
}

// MaxDistanceForLength exposes the edit-distance budget the index was built
// with, keyed by query length.
func (idx *DeletionIndex) MaxDistanceForLength(wordLength int) int {
	return idx.table.forLength(wordLength)
}

func (idx *DeletionIndex) Len() int {
	return len(idx.entries)
}
