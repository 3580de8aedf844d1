package corrector

const (
	START_TOKEN = "<s>"

	// additive smoothing constant for the bigram context probability
	CONTEXT_SMOOTHING_ALPHA = 1.0

	SOUNDEX_CODE_LENGTH = 4

	BUILD_WORKERS = 4

	K_AUTOCOMPLETE = 3
)

const (
	DEFAULT_MIN_WORD_LENGTH = 3
	DEFAULT_MAX_WORD_LENGTH = 15

	DISTANCE_WEIGHT  = 0.6
	FREQUENCY_WEIGHT = 0.25
	CONTEXT_WEIGHT   = 0.15
)
