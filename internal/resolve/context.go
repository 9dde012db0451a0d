package resolve

import (
	"github.com/mwatts/anyctl/internal/core/domain"
)

// Source identifies which precedence slot produced a selection.
type Source uint8

const (
	// SourceExplicit is a name passed directly by the caller, e.g. a flag.
	SourceExplicit Source = iota
	// SourceCarried is an identifier carried by an upstream pipeline value.
	SourceCarried
	// SourceDefault is the persisted default from configuration.
	SourceDefault
)

// Selection is the outcome of Context.Select: a closed set of two variants,
// a name that still needs resolving or an already-resolved ref. Inspect it
// with Resolved rather than type sniffing.
type Selection struct {
	Source Source
	// Name holds the name to resolve unless Source is SourceCarried.
	Name string
	// Ref holds the carried identity only when Source is SourceCarried.
	Ref domain.Ref
}

// Resolved reports whether the selection already carries an identifier, in
// which case the resolver and cache are bypassed for this invocation.
func (s Selection) Resolved() bool {
	return s.Source == SourceCarried
}

// Context decides which name or identifier a single invocation resolves
// without the resolver knowing about flags or pipeline state. It is
// immutable once constructed and lives for exactly one invocation.
//
// Precedence is fixed and not configurable: an explicit name wins
// unconditionally, then a carried identifier, then the persisted default.
// Callers that want a different order must construct a different context.
type Context struct {
	explicit string
	carried  domain.Ref
	fallback string
}

// NewContext builds a context from the three possible sources. Any of them
// may be empty.
func NewContext(explicit string, carried domain.Ref, fallback string) Context {
	return Context{explicit: explicit, carried: carried, fallback: fallback}
}

// Select applies the precedence chain. When no source yields a value it
// fails with domain.ErrMissingContext, a terminal user-facing error.
func (c Context) Select() (Selection, error) {
	switch {
	case c.explicit != "":
		return Selection{Source: SourceExplicit, Name: c.explicit}, nil
	case !c.carried.IsZero():
		return Selection{Source: SourceCarried, Ref: c.carried}, nil
	case c.fallback != "":
		return Selection{Source: SourceDefault, Name: c.fallback}, nil
	default:
		return Selection{}, domain.ErrMissingContext
	}
}
