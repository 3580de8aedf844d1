package pkg

import (
	"sort"
	"sync"
)

// IDMap assigns a stable integer ID to every term it sees. Term IDs are used as
// keys for the frequency/bigram tables instead of raw strings.
type IDMap struct {
	StrToID map[string]int
	IDToStr map[int]string
	sync.Mutex
}

func NewIDMap() *IDMap {
	return &IDMap{
		StrToID: make(map[string]int),
		IDToStr: make(map[int]string),
	}
}

func (idMap *IDMap) GetID(str string) int {
	idMap.Lock()
	defer idMap.Unlock()
	if id, ok := idMap.StrToID[str]; ok {
		return id
	}

	id := len(idMap.StrToID)
	idMap.StrToID[str] = id
	idMap.IDToStr[id] = str

	return id
}

// LookupID is the read-only variant of GetID. It never assigns a new ID, so it is
// safe to call from concurrent readers of a frozen model.
func (idMap *IDMap) LookupID(str string) (int, bool) {
	idMap.Lock()
	defer idMap.Unlock()
	id, ok := idMap.StrToID[str]
	return id, ok
}

func (idMap *IDMap) GetStr(id int) string {
	if str, ok := idMap.IDToStr[id]; ok {
		return str
	}
	return ""
}

func (idMap *IDMap) GetSortedTerms() []string {
	idMap.Lock()
	defer idMap.Unlock()
	sortedTerms := make([]string, 0, len(idMap.StrToID))
	for term := range idMap.StrToID {
		sortedTerms = append(sortedTerms, term)
	}
	sort.Strings(sortedTerms)
	return sortedTerms
}

func (idMap *IDMap) Len() int {
	idMap.Lock()
	defer idMap.Unlock()
	return len(idMap.StrToID)
}
