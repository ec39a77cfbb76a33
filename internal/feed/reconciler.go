package feed

// DefaultMaxRows is the window size used when none is configured.
const DefaultMaxRows = 100

// Reconciler merges a one-shot backlog and a stream of live transactions
// into a single window. It is not safe for concurrent use; a Service owns
// one per session and drives it from a single goroutine.
//
// A window moves Empty -> Seeded on Seed and to Live on the first accepted
// Ingest. Seed only has an effect while the window is Empty, so a backlog
// that resolves after live events were accepted is ignored.
type Reconciler struct {
	maxRows    int
	items      []DecodedTx
	totalCount int64
	state      State
}

// NewReconciler returns an Empty reconciler. Only WithMaxRows is relevant
// here; other options are ignored.
func NewReconciler(opts ...Option) *Reconciler {
	cfg := newConfig(opts...)
	return &Reconciler{
		maxRows: cfg.maxRows,
		items:   []DecodedTx{},
	}
}

// Seed applies the backlog. It returns false, doing nothing, unless the
// window is still Empty.
func (r *Reconciler) Seed(items []DecodedTx, totalCount int64) bool {
	if r.state != StateEmpty {
		return false
	}

	r.items = r.truncate(Deduplicate(items))
	r.totalCount = totalCount
	r.state = StateSeeded
	return true
}

// Ingest offers a live transaction to the window. A transaction is accepted
// when the window is empty, or when it is at least as high as the current
// head and is not the head itself. Accepted transactions become the new
// head. Rejections are silent.
func (r *Reconciler) Ingest(tx DecodedTx) bool {
	if tx.Hash.IsEmpty() {
		return false
	}

	if len(r.items) > 0 {
		head := r.items[0]
		if tx.Height < head.Height || tx.Hash.Equal(head.Hash) {
			return false
		}
	}

	items := make([]DecodedTx, 0, len(r.items)+1)
	items = append(items, tx)
	items = append(items, r.items...)

	r.items = r.truncate(Deduplicate(items))
	r.state = StateLive
	return true
}

// Snapshot returns a copy of the current window.
func (r *Reconciler) Snapshot() Window {
	items := make([]DecodedTx, len(r.items))
	copy(items, r.items)

	return Window{
		Items:      items,
		TotalCount: r.totalCount,
		State:      r.state,
	}
}

func (r *Reconciler) truncate(items []DecodedTx) []DecodedTx {
	if len(items) > r.maxRows {
		return items[:r.maxRows]
	}
	return items
}
