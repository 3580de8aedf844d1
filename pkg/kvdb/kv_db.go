// Package kvdb persists trained model state in a bbolt file. Only the state is
// stored; the approximate-matching indices are rebuilt from it after loading.
package kvdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spellkit-go/spellkit/pkg/compress"
	"github.com/spellkit-go/spellkit/pkg/corrector"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_META_BUCKET   = "spellkitMeta"
	BBOLTDB_TABLES_BUCKET = "spellkitTables"

	metaKey     = "meta"
	termsKey    = "terms"
	uniGramsKey = "unigrams"
	biGramsKey  = "bigrams"

	ModelFileName = "spellkit.db"
)

// modelMeta is the msgpack header of a saved model. The bulky count tables live
// under separate keys with their own codec.
type modelMeta struct {
	Language      string           `msgpack:"language"`
	Config        corrector.Config `msgpack:"config"`
	TotalWordFreq int              `msgpack:"total_word_freq"`
}

type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) *KVDB {

	return &KVDB{db,
		sync.Mutex{}}
}

func (db *KVDB) Close() error {
	return db.db.Close()
}

// SaveModel writes the full trained state in one transaction, replacing any
// previously saved model in the file.
func (db *KVDB) SaveModel(state corrector.ModelState) error {
	db.Lock()
	defer db.Unlock()

	metaBytes, err := msgpack.Marshal(modelMeta{
		Language:      state.Language,
		Config:        state.Config,
		TotalWordFreq: state.TotalWordFreq,
	})
	if err != nil {
		return fmt.Errorf("marshalling model meta: %w", err)
	}

	termsBytes, err := msgpack.Marshal(state.Terms)
	if err != nil {
		return fmt.Errorf("marshalling terms: %w", err)
	}
	termsBlock, err := compress.Compress(termsBytes)
	if err != nil {
		return fmt.Errorf("compressing terms: %w", err)
	}

	uniGramsBlock, err := compress.Compress(compress.EncodeIntList(state.UniGramCounts))
	if err != nil {
		return fmt.Errorf("compressing unigram table: %w", err)
	}
	biGramsBlock, err := compress.Compress(compress.EncodeBigramTriples(state.BiGramCounts))
	if err != nil {
		return fmt.Errorf("compressing bigram table: %w", err)
	}

	return db.db.Update(func(tx *bbolt.Tx) error {
		metaBucket, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_META_BUCKET))
		if err != nil {
			return err
		}
		tablesBucket, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_TABLES_BUCKET))
		if err != nil {
			return err
		}

		if err := metaBucket.Put([]byte(metaKey), metaBytes); err != nil {
			return err
		}
		if err := tablesBucket.Put([]byte(termsKey), termsBlock); err != nil {
			return err
		}
		if err := tablesBucket.Put([]byte(uniGramsKey), uniGramsBlock); err != nil {
			return err
		}
		return tablesBucket.Put([]byte(biGramsKey), biGramsBlock)
	})
}

// LoadModel reads a previously saved state. The state is decoded into a scratch
// value first, so a corrupt file yields an error and no partial result.
func (db *KVDB) LoadModel() (corrector.ModelState, error) {
	var (
		metaBytes     []byte
		termsBlock    []byte
		uniGramsBlock []byte
		biGramsBlock  []byte
	)

	err := db.db.View(func(tx *bbolt.Tx) error {
		metaBucket := tx.Bucket([]byte(BBOLTDB_META_BUCKET))
		tablesBucket := tx.Bucket([]byte(BBOLTDB_TABLES_BUCKET))
		if metaBucket == nil || tablesBucket == nil {
			return ErrorsKeyNotExists
		}

		// bbolt reuses page memory after the transaction closes, so every block
		// must be copied out
		metaBytes = copyBytes(metaBucket.Get([]byte(metaKey)))
		termsBlock = copyBytes(tablesBucket.Get([]byte(termsKey)))
		uniGramsBlock = copyBytes(tablesBucket.Get([]byte(uniGramsKey)))
		biGramsBlock = copyBytes(tablesBucket.Get([]byte(biGramsKey)))
		return nil
	})
	if err != nil {
		return corrector.ModelState{}, err
	}
	if metaBytes == nil || termsBlock == nil || uniGramsBlock == nil || biGramsBlock == nil {
		return corrector.ModelState{}, ErrorsKeyNotExists
	}

	var meta modelMeta
	if err := msgpack.Unmarshal(metaBytes, &meta); err != nil {
		return corrector.ModelState{}, fmt.Errorf("unmarshalling model meta: %w", err)
	}

	termsBytes, err := compress.Decompress(termsBlock)
	if err != nil {
		return corrector.ModelState{}, fmt.Errorf("decompressing terms: %w", err)
	}
	var terms []string
	if err := msgpack.Unmarshal(termsBytes, &terms); err != nil {
		return corrector.ModelState{}, fmt.Errorf("unmarshalling terms: %w", err)
	}

	uniGramsBytes, err := compress.Decompress(uniGramsBlock)
	if err != nil {
		return corrector.ModelState{}, fmt.Errorf("decompressing unigram table: %w", err)
	}
	uniGrams := compress.DecodeIntList(uniGramsBytes)

	biGramsBytes, err := compress.Decompress(biGramsBlock)
	if err != nil {
		return corrector.ModelState{}, fmt.Errorf("decompressing bigram table: %w", err)
	}
	biGrams, err := compress.DecodeBigramTriples(biGramsBytes)
	if err != nil {
		return corrector.ModelState{}, fmt.Errorf("decoding bigram table: %w", err)
	}

	return corrector.ModelState{
		Language:      meta.Language,
		Config:        meta.Config,
		Terms:         terms,
		UniGramCounts: uniGrams,
		BiGramCounts:  biGrams,
		TotalWordFreq: meta.TotalWordFreq,
	}, nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// SaveToDir creates (or overwrites the model in) <dir>/spellkit.db and returns
// the file path.
func SaveToDir(dir string, state corrector.ModelState) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(dir, ModelFileName)

	boltDB, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	db := NewKVDB(boltDB)
	defer db.Close()

	if err := db.SaveModel(state); err != nil {
		return "", err
	}
	return path, nil
}

// LoadFromPath reads the model state out of a bbolt file written by SaveToDir.
func LoadFromPath(path string) (corrector.ModelState, error) {
	boltDB, err := bbolt.Open(path, 0o600, &bbolt.Options{ReadOnly: true})
	if err != nil {
		return corrector.ModelState{}, fmt.Errorf("opening %s: %w", path, err)
	}
	db := NewKVDB(boltDB)
	defer db.Close()

	return db.LoadModel()
}
