package race

import (
	"fmt"
	"sort"
	"sync"
)

// DuplicateBibError reports a registration attempt with a bib that is already
// taken. The registry is left unchanged when this is returned.
type DuplicateBibError struct {
	Bib string
}

func (e *DuplicateBibError) Error() string {
	return fmt.Sprintf("bib %q is already registered", e.Bib)
}

// Registry is the authoritative in-memory set of participants. It enforces
// bib uniqueness, keeps the set ordered by ascending finish time and assigns
// a contiguous 1..N rank after every insert.
//
// Register takes a write lock so hosts with concurrent callers stay correct;
// Query takes a read lock and never mutates state, so reads may run freely
// alongside each other.
type Registry struct {
	mu        sync.RWMutex
	formatter *NameFormatter
	byBib     map[string]*Participant
	ordered   []*Participant
}

// NewRegistry creates an empty registry. Names are normalized with the given
// formatter during registration.
func NewRegistry(formatter *NameFormatter) *Registry {
	return &Registry{
		formatter: formatter,
		byBib:     make(map[string]*Participant),
	}
}

// Register adds a participant. The raw name is formatted and the finish time
// text decoded during construction; the two stored time fields are never set
// independently. Returns DuplicateBibError when the bib is taken, with no
// change to registry state.
//
// A single insert may change every existing participant's rank; callers are
// expected to re-render the full result set afterwards.
func (r *Registry) Register(bib, rawName, finishText string) (*Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byBib[bib]; taken {
		return nil, &DuplicateBibError{Bib: bib}
	}

	seconds, timed := DecodeClock(finishText)
	p := &Participant{
		bib:           bib,
		name:          r.formatter.Format(rawName),
		finishTime:    finishText,
		finishSeconds: seconds,
		timed:         timed,
	}

	r.byBib[bib] = p
	r.ordered = append(r.ordered, p)
	r.rerank()
	return p, nil
}

// rerank stable-sorts by ascending finish time and reassigns rank 1..N.
// Ties keep their prior relative order, which for a freshly appended
// participant means insertion order. Participants without a decodable finish
// time sort after all timed ones.
func (r *Registry) rerank() {
	sort.SliceStable(r.ordered, func(i, j int) bool {
		a, b := r.ordered[i], r.ordered[j]
		if a.timed != b.timed {
			return a.timed
		}
		return a.timed && a.finishSeconds < b.finishSeconds
	})
	for i, p := range r.ordered {
		p.rank = i + 1
	}
}

// Query returns participants whose finish time falls in the inclusive range
// [lower, upper] seconds, in current rank order. A nil bound is unbounded on
// that side; Query(nil, nil) returns every participant. The returned slice
// is a fresh view, never the registry's own collection.
//
// An undecodable finish time is treated as +infinity: it satisfies any lower
// bound and no finite upper bound.
func (r *Registry) Query(lower, upper *int) []*Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Participant, 0, len(r.ordered))
	for _, p := range r.ordered {
		if lower != nil && p.timed && p.finishSeconds < *lower {
			continue
		}
		if upper != nil && (!p.timed || p.finishSeconds > *upper) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Lookup returns the participant registered under bib, if any.
func (r *Registry) Lookup(bib string) (*Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byBib[bib]
	return p, ok
}

// Len returns the number of registered participants.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byBib)
}
