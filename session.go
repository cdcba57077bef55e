package estimate

import "context"

// Session holds the current canonical model on behalf of a single active
// editor. Edits are applied strictly in invocation order, each snapshot
// being the only input to the next; the model is always replaced wholesale,
// never mutated in place, so a reader holding a snapshot never observes a
// torn update. Concurrent independent editors are not merged: last applied
// wins.
type Session struct {
	sections []Section
	closed   bool
}

// NewSession returns an empty session, ready to load a model.
func NewSession() *Session { return &Session{} }

// Load runs the loader and installs its result as the current snapshot.
// If the session was closed, or ctx cancelled, by the time the loader
// returns, the result is discarded rather than applied: the in-flight
// request itself is not cancelled, only its effect is suppressed.
func (s *Session) Load(ctx context.Context, load func() ([]Section, error)) error {
	sections, err := load()
	if s.closed || ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}
	s.sections = sections
	return nil
}

// Close marks the session as torn down. Any load still outstanding will
// have its result discarded.
func (s *Session) Close() { s.closed = true }

// Sections returns the current snapshot.
func (s *Session) Sections() []Section { return s.sections }

// Empty reports a valid-but-empty model (zero sections). Collaborators
// should present this as "no data", distinct from a load error.
func (s *Session) Empty() bool { return len(s.sections) == 0 }

// SetQty replaces the quantity of one item. Unknown ids are a no-op.
func (s *Session) SetQty(sectionID, itemID string, qty float64) {
	s.sections = UpdateQty(s.sections, sectionID, itemID, qty)
}

// SetUnitCost replaces the unit cost of one item, in decimal currency
// units. Unknown ids are a no-op.
func (s *Session) SetUnitCost(sectionID, itemID string, unitCost float64) {
	s.sections = UpdateUnitCost(s.sections, sectionID, itemID, unitCost)
}

// GrandTotal returns the grand total of the current snapshot.
func (s *Session) GrandTotal() float64 { return GrandTotal(s.sections) }
