package app

import "sync"

// Loader tags catalog loads with a sequence number per view so that a response
// for an older request can be recognised and discarded once a newer request for
// the same view has been issued.
type Loader struct {
	mu    sync.Mutex
	seq   uint64
	views map[string]*viewState
}

type viewState struct {
	latest   uint64
	inflight int
}

type Ticket struct {
	View string
	Seq  uint64
}

func NewLoader() *Loader {
	return &Loader{views: make(map[string]*viewState)}
}

func (l *Loader) Begin(view string) Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	st, ok := l.views[view]
	if !ok {
		st = &viewState{}
		l.views[view] = st
	}
	st.latest = l.seq
	st.inflight++

	return Ticket{View: view, Seq: l.seq}
}

// Finish releases the ticket and reports whether it is still the newest request
// issued for its view. Every Begin must be paired with exactly one Finish.
func (l *Loader) Finish(t Ticket) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.views[t.View]
	if !ok {
		return false
	}

	latest := st.latest == t.Seq
	st.inflight--
	if st.inflight <= 0 {
		delete(l.views, t.View)
	}
	return latest
}

// Pending returns the number of views with loads in flight.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.views)
}
