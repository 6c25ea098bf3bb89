package block

import (
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/blockgraph/pkg/errors"
)

// Wire keys for the typed fields of a block. Every other key is an extension.
const (
	KeyID            = "id"
	KeyTitle         = "title"
	KeyPrerequisites = "prerequisites"
	KeyParents       = "parents"
)

var validate = validator.New()

// Title is the localized display name of a block. Both languages are required.
type Title struct {
	DE string `json:"de" yaml:"de" validate:"required"`
	EN string `json:"en" yaml:"en" validate:"required"`
}

// Languages a Title carries.
const (
	LangDE = "de"
	LangEN = "en"
)

// In returns the title in lang. Unknown languages fall back to German.
func (t Title) In(lang string) string {
	if lang == LangEN {
		return t.EN
	}
	return t.DE
}

// Block is a node of the prerequisite/parent graph.
//
// Prerequisites and Parents hold ids of other blocks. They are not required
// to resolve: a reference to a block outside the current batch is legal and
// simply has no effect on layout.
type Block struct {
	ID            string   `validate:"required"`
	Title         Title
	Prerequisites []string `validate:"dive,required"`
	Parents       []string `validate:"dive,required"`

	// Extensions holds every field the wire format carried beyond the typed
	// ones, in input order. It may be nil.
	Extensions *Extensions
}

// Clone returns a copy of b that shares no slices or maps with it.
func (b Block) Clone() Block {
	return Block{
		ID:            b.ID,
		Title:         b.Title,
		Prerequisites: slices.Clone(b.Prerequisites),
		Parents:       slices.Clone(b.Parents),
		Extensions:    b.Extensions.Clone(),
	}
}

// HasParents reports whether the block is contained by at least one other block.
func (b Block) HasParents() bool { return len(b.Parents) > 0 }

// Validate checks that the block has an id and both title translations, and
// that every referenced id is well formed.
func (b Block) Validate() error {
	if err := validate.Struct(b); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "block %q", b.ID)
	}
	if err := errors.ValidateID(b.ID); err != nil {
		return err
	}
	if err := errors.ValidateIDs(b.Prerequisites); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "block %q prerequisites", b.ID)
	}
	if err := errors.ValidateIDs(b.Parents); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "block %q parents", b.ID)
	}
	return nil
}

// ValidateAll validates every block and returns the first failure.
func ValidateAll(blocks []Block) error {
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DuplicateIDs returns every id that occurs more than once in blocks, sorted.
// It returns nil when all ids are unique.
func DuplicateIDs(blocks []Block) []string {
	seen := make(map[string]int, len(blocks))
	for _, b := range blocks {
		seen[b.ID]++
	}
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	slices.Sort(dups)
	return dups
}

// CloneAll clones every block in blocks.
func CloneAll(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}
