package relations

import (
	"maps"
	"slices"
	"sync"

	"github.com/matzehuels/blockgraph/pkg/errors"
)

type idSet = map[string]struct{}

// Index is a bidirectional prerequisite index with memoised transitive
// queries. The zero value is not usable; create one with New.
type Index struct {
	mu sync.Mutex

	order          []string // registration order, for deterministic traversal
	prerequisites  map[string]idSet
	postrequisites map[string]idSet

	allPrereqs map[string]Set
	allPosts   map[string]Set
}

// New creates an empty index.
func New() *Index {
	return &Index{
		prerequisites:  make(map[string]idSet),
		postrequisites: make(map[string]idSet),
		allPrereqs:     make(map[string]Set),
		allPosts:       make(map[string]Set),
	}
}

// AddBlock registers id without relationships. Blocks that only ever appear
// in AddBlock still count toward TopologicalOrder. Registering an id twice
// is a no-op.
func (x *Index) AddBlock(id string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.register(id)
}

// AddRelationship records that dependent requires prereq.
// It returns an error with code SELF_LOOP when prereq equals dependent, and
// INVALID_INPUT when either id is empty. Adding an existing relationship is
// a no-op apart from cache invalidation.
func (x *Index) AddRelationship(prereq, dependent string) error {
	if prereq == "" || dependent == "" {
		return errors.New(errors.ErrCodeInvalidInput, "relationship %q -> %q has an empty endpoint", prereq, dependent)
	}
	if prereq == dependent {
		return errors.New(errors.ErrCodeSelfLoop, "block %q cannot be its own prerequisite", prereq)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.register(prereq)
	x.register(dependent)
	link(x.prerequisites, dependent, prereq)
	link(x.postrequisites, prereq, dependent)
	x.invalidate()
	return nil
}

// RemoveRelationship deletes the relationship prereq → dependent.
// Unknown relationships are ignored.
func (x *Index) RemoveRelationship(prereq, dependent string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	unlink(x.prerequisites, dependent, prereq)
	unlink(x.postrequisites, prereq, dependent)
	x.invalidate()
}

// RemoveBlock deletes id and every relationship that mentions it.
// Unknown ids are ignored.
func (x *Index) RemoveBlock(id string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.prerequisites[id]; !ok {
		return
	}
	for p := range x.prerequisites[id] {
		unlink(x.postrequisites, p, id)
	}
	for d := range x.postrequisites[id] {
		unlink(x.prerequisites, d, id)
	}
	delete(x.prerequisites, id)
	delete(x.postrequisites, id)
	x.order = slices.DeleteFunc(x.order, func(s string) bool { return s == id })
	x.invalidate()
}

// Prerequisites returns the blocks id directly requires.
// Unknown ids yield an empty set. The set is a snapshot: later mutations
// never change it.
func (x *Index) Prerequisites(id string) Set {
	x.mu.Lock()
	defer x.mu.Unlock()
	return newSet(x.prerequisites[id])
}

// Postrequisites returns the blocks that directly require id.
// Unknown ids yield an empty set.
func (x *Index) Postrequisites(id string) Set {
	x.mu.Lock()
	defer x.mu.Unlock()
	return newSet(x.postrequisites[id])
}

// AllPrerequisites returns every block id transitively requires, excluding
// id itself. The result is memoised until the next mutation.
func (x *Index) AllPrerequisites(id string) Set {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.closure(id, x.prerequisites, x.allPrereqs)
}

// AllPostrequisites returns every block that transitively requires id,
// excluding id itself. The result is memoised until the next mutation.
func (x *Index) AllPostrequisites(id string) Set {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.closure(id, x.postrequisites, x.allPosts)
}

// HasPath reports whether to can be reached from from by following
// prerequisite → dependent relationships. A block always reaches itself.
func (x *Index) HasPath(from, to string) bool {
	if from == to {
		return true
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.closure(from, x.postrequisites, x.allPosts).Has(to)
}

// Len returns the number of registered blocks.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.order)
}

// IDs returns the registered blocks in registration order.
func (x *Index) IDs() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return slices.Clone(x.order)
}

func (x *Index) register(id string) {
	if _, ok := x.prerequisites[id]; ok {
		return
	}
	x.prerequisites[id] = make(idSet)
	x.postrequisites[id] = make(idSet)
	x.order = append(x.order, id)
}

// link and unlink replace the member set instead of editing it, so sets
// already handed out stay unchanged.
func link(m map[string]idSet, key, member string) {
	s := maps.Clone(m[key])
	if s == nil {
		s = make(idSet)
	}
	s[member] = struct{}{}
	m[key] = s
}

func unlink(m map[string]idSet, key, member string) {
	s, ok := m[key]
	if !ok {
		return
	}
	if _, ok := s[member]; !ok {
		return
	}
	s = maps.Clone(s)
	delete(s, member)
	m[key] = s
}

func (x *Index) invalidate() {
	clear(x.allPrereqs)
	clear(x.allPosts)
}

func (x *Index) closure(id string, adj map[string]idSet, memo map[string]Set) Set {
	if s, ok := memo[id]; ok {
		return s
	}

	seen := make(idSet)
	stack := []string{id}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range adj[curr] {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			stack = append(stack, next)
		}
	}
	delete(seen, id)

	s := newSet(seen)
	memo[id] = s
	return s
}

// sortedKeys returns the members of s in ascending order so traversals are
// deterministic.
func sortedKeys(s idSet) []string {
	return slices.Sorted(maps.Keys(s))
}
