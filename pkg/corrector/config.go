package corrector

import (
	"fmt"
	"sort"
)

// RankingWeights are the mixing weights of the composite candidate score:
// normalized inverse edit distance, normalized log-frequency, and bigram context
// probability.
type RankingWeights struct {
	Distance  float64 `msgpack:"distance"`
	Frequency float64 `msgpack:"frequency"`
	Context   float64 `msgpack:"context"`
}

// Config is the caller-tunable part of the correction engine. It is validated on
// assignment and shared read-only by every lookup while the model is frozen.
// Changing EditDistanceByLength invalidates the deletion index, which gets
// rebuilt before the next correction.
type Config struct {
	MinLengthForSpellCorrection int            `msgpack:"min_length_for_spellcorrection"`
	MaxLengthForSpellCorrection int            `msgpack:"max_length_for_spellcorrection"`
	EditDistanceByLength        map[int]int    `msgpack:"edit_distance_by_length"`
	Weights                     RankingWeights `msgpack:"weights"`
}

func DefaultConfig() Config {
	return Config{
		MinLengthForSpellCorrection: DEFAULT_MIN_WORD_LENGTH,
		MaxLengthForSpellCorrection: DEFAULT_MAX_WORD_LENGTH,
		EditDistanceByLength: map[int]int{
			3:  1,
			4:  1,
			5:  1,
			6:  2,
			7:  2,
			8:  2,
			9:  3,
			10: 3,
			11: 3,
			12: 3,
			13: 3,
			14: 3,
			15: 3,
		},
		Weights: RankingWeights{
			Distance:  DISTANCE_WEIGHT,
			Frequency: FREQUENCY_WEIGHT,
			Context:   CONTEXT_WEIGHT,
		},
	}
}

func (c Config) Validate() error {
	if c.MinLengthForSpellCorrection < 1 {
		return fmt.Errorf("min_length_for_spellcorrection must be >= 1, got %d", c.MinLengthForSpellCorrection)
	}
	if c.MaxLengthForSpellCorrection < c.MinLengthForSpellCorrection {
		return fmt.Errorf("max_length_for_spellcorrection (%d) must be >= min_length_for_spellcorrection (%d)",
			c.MaxLengthForSpellCorrection, c.MinLengthForSpellCorrection)
	}
	if len(c.EditDistanceByLength) == 0 {
		return fmt.Errorf("edit_distance_by_length must not be empty")
	}

	lengths := make([]int, 0, len(c.EditDistanceByLength))
	for length, distance := range c.EditDistanceByLength {
		if length < 1 {
			return fmt.Errorf("edit_distance_by_length has invalid word length %d", length)
		}
		if distance < 0 {
			return fmt.Errorf("edit_distance_by_length has negative distance %d for length %d", distance, length)
		}
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	// the step function must be non-decreasing in word length
	for i := 1; i < len(lengths); i++ {
		prev := c.EditDistanceByLength[lengths[i-1]]
		curr := c.EditDistanceByLength[lengths[i]]
		if curr < prev {
			return fmt.Errorf("edit_distance_by_length must be non-decreasing: length %d maps to %d but length %d maps to %d",
				lengths[i-1], prev, lengths[i], curr)
		}
	}

	w := c.Weights
	if w.Distance < 0 || w.Frequency < 0 || w.Context < 0 {
		return fmt.Errorf("ranking weights must be non-negative, got %+v", w)
	}
	if w.Distance+w.Frequency+w.Context == 0 {
		return fmt.Errorf("at least one ranking weight must be positive")
	}
	return nil
}

// Clone deep-copies the config so callers cannot mutate a frozen model through
// the shared distance map.
func (c Config) Clone() Config {
	clone := c
	clone.EditDistanceByLength = make(map[int]int, len(c.EditDistanceByLength))
	for length, distance := range c.EditDistanceByLength {
		clone.EditDistanceByLength[length] = distance
	}
	return clone
}

func (c Config) sameDistanceMap(other Config) bool {
	if len(c.EditDistanceByLength) != len(other.EditDistanceByLength) {
		return false
	}
	for length, distance := range c.EditDistanceByLength {
		if otherDistance, ok := other.EditDistanceByLength[length]; !ok || otherDistance != distance {
			return false
		}
	}
	return true
}

// distanceTable is the step function edit_distance_by_length compiled into a
// sorted lookup. Lengths below the smallest bracket use the smallest bracket's
// distance, lengths above the largest reuse the largest value.
type distanceTable struct {
	lengths   []int
	distances []int
}

func newDistanceTable(editDistanceByLength map[int]int) distanceTable {
	lengths := make([]int, 0, len(editDistanceByLength))
	for length := range editDistanceByLength {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	distances := make([]int, 0, len(lengths))
	for _, length := range lengths {
		distances = append(distances, editDistanceByLength[length])
	}
	return distanceTable{lengths: lengths, distances: distances}
}

func (t distanceTable) forLength(wordLength int) int {
	if len(t.lengths) == 0 {
		return 0
	}
	if wordLength <= t.lengths[0] {
		return t.distances[0]
	}
	// floor bracket: the largest configured length <= wordLength
	idx := sort.SearchInts(t.lengths, wordLength)
	if idx == len(t.lengths) || t.lengths[idx] != wordLength {
		idx--
	}
	return t.distances[idx]
}

// maxDistance is the largest configured edit distance, used as the pessimistic
// score for candidates found only through the phonetic index.
func (t distanceTable) maxDistance() int {
	if len(t.distances) == 0 {
		return 0
	}
	return t.distances[len(t.distances)-1]
}
