package session

import (
	"tableflip.dev/ledger/pkg/ledger"
	"tableflip.dev/ledger/pkg/page"
)

// Fail moves the session off a page whose handler hit an IO failure or a
// selection that did not resolve.
func (s *Session) Fail(l *ledger.Ledger) {
	if s.Fallback == Legacy {
		s.Page = page.SelectAccount
		return
	}

	next, ok := retreat(s.Page)
	if !ok {
		s.Quit()
		return
	}
	for !s.Resolves(l, next) {
		next, _ = retreat(next)
	}
	s.Prune(l)
	s.Page = next
}

// retreat is one step towards the journal list: Select pages go to the
// parent's View page, everything else to the Select page of its own level.
// Only SelectJournal has nowhere to go.
func retreat(p page.Page) (page.Page, bool) {
	if p.Action() == page.Select {
		return p.Up()
	}
	return page.Of(p.Level(), page.Select), true
}
