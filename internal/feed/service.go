// Package feed keeps a live, bounded window of the chain's most recent
// transactions.
//
// A session (Service) fetches a backlog once and subscribes to committed
// transactions at the same time. Both results are funneled into one loop
// goroutine that owns a Reconciler, so they are applied strictly in the
// order they resolve. After every change the loop publishes an immutable
// Window copy that any goroutine may read through Snapshot or receive
// through OnUpdate.
package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainscope/internal/pkg/x/chflow"
)

var ErrServiceAlreadyStarted = errors.New("service already started")

const eventChannelBufferSize = 64

const (
	backlogFailureTitle      = "Failed to fetch transactions"
	subscriptionFailureTitle = "Live updates interrupted"
)

// Service is one feed session.
type Service interface {
	// Start begins a new session with an Empty window.
	Start(ctx context.Context) error
	// Close ends the session. No mutation happens after it returns.
	Close()
	// Snapshot returns the last published window.
	Snapshot() Window
	// OnUpdate registers fn to receive every published window. fn runs on
	// the session goroutine (or inside Start for the first window) and must
	// not block. It must not call Close or Start either, since Close waits
	// for that goroutine; a listener that wants to end the session calls
	// Close from a new goroutine. The returned func unregisters it.
	OnUpdate(fn func(Window)) (unregister func())
	// Notice returns the latest undismissed notification.
	Notice() (Notification, bool)
	// DismissNotice clears the latest notification.
	DismissNotice()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	source  Source
	decoder Decoder

	maxRows             int
	backlogLimit        int
	backlogRetry        retry.Retry
	reconnectRetry      retry.Retry
	notificationHandler NotificationHandler
	metrics             *metrics

	stateMu    sync.RWMutex
	window     Window
	notice     *Notification
	listeners  map[int]func(Window)
	nextListen int
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var (
		wg         sync.WaitGroup
		reconciler = NewReconciler(WithMaxRows(s.maxRows))
		backlogCh  = make(chan Backlog, 1)
		eventsCh   = make(chan RawTxEvent, eventChannelBufferSize)
	)

	s.publish(reconciler.Snapshot())

	wg.Add(3)
	go func() {
		defer wg.Done()
		s.fetchBacklog(ctx, backlogCh)
	}()
	go func() {
		defer wg.Done()
		s.subscribe(ctx, eventsCh)
	}()
	go func() {
		defer wg.Done()
		s.run(ctx, reconciler, backlogCh, eventsCh)
	}()

	s.closeFunc = func() {
		cancel()
		wg.Wait()
	}

	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

func (s *service) Snapshot() Window {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.window
}

func (s *service) OnUpdate(fn func(Window)) func() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn

	return func() {
		s.stateMu.Lock()
		defer s.stateMu.Unlock()

		delete(s.listeners, id)
	}
}

func (s *service) Notice() (Notification, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	if s.notice == nil {
		return Notification{}, false
	}
	return *s.notice, true
}

func (s *service) DismissNotice() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.notice = nil
}

// publish stores w and hands it to every listener. w must not be shared
// with the reconciler.
func (s *service) publish(w Window) {
	s.stateMu.Lock()
	s.window = w
	listeners := make([]func(Window), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.stateMu.Unlock()

	for _, fn := range listeners {
		fn(w)
	}
}

func (s *service) notify(ctx context.Context, n Notification) {
	s.stateMu.Lock()
	s.notice = &n
	s.stateMu.Unlock()

	if s.notificationHandler != nil {
		s.notificationHandler(ctx, n)
	}
}

// run is the only goroutine touching reconciler. It returns when ctx is
// done, dropping anything that resolves afterwards.
func (s *service) run(ctx context.Context, reconciler *Reconciler, backlogCh <-chan Backlog, eventsCh <-chan RawTxEvent) {
	for {
		select {
		case <-ctx.Done():
			return

		case backlog := <-backlogCh:
			if ctx.Err() != nil {
				return
			}

			if !reconciler.Seed(backlog.Items, backlog.TotalCount) {
				logger.Debug(ctx, "backlog ignored, feed already live", "feed.backlog.size", len(backlog.Items))
				continue
			}

			w := reconciler.Snapshot()
			s.metrics.recordSeed(ctx, len(w.Items))
			s.publish(w)

		case ev := <-eventsCh:
			if ctx.Err() != nil {
				return
			}

			tx := s.decoder.Decode(ev)
			accepted := reconciler.Ingest(tx)
			if !accepted {
				s.metrics.recordIngest(ctx, false, 0)
				logger.Debug(ctx, "live transaction rejected", "tx.hash", tx.Hash, "tx.height", tx.Height)
				continue
			}

			w := reconciler.Snapshot()
			s.metrics.recordIngest(ctx, true, len(w.Items))
			s.publish(w)
		}
	}
}

func (s *service) fetchBacklog(ctx context.Context, backlogCh chan<- Backlog) {
	var (
		backlog Backlog
		params  = BacklogParams{Order: NewestFirst, Limit: s.backlogLimit}
	)

	op := func() error {
		b, err := s.source.FetchBacklog(ctx, params)
		if err != nil {
			return err
		}

		backlog = b
		return nil
	}

	var err error
	if s.backlogRetry != nil {
		err = s.backlogRetry.Execute(ctx, op)
	} else {
		err = op()
	}

	if err != nil {
		if ctx.Err() == nil {
			s.notify(ctx, Notification{
				Kind:        KindNetworkError,
				Title:       backlogFailureTitle,
				Description: err.Error(),
			})
		}
		return
	}

	_ = chflow.Send(ctx, backlogCh, backlog)
}

// subscribe forwards live events into eventsCh, re-subscribing through the
// reconnect retry when the stream fails or ends early.
func (s *service) subscribe(ctx context.Context, eventsCh chan<- RawTxEvent) {
	attempt := func() error {
		err := s.forwardSubscription(ctx, eventsCh)
		if err != nil && ctx.Err() == nil {
			s.notify(ctx, Notification{
				Kind:        KindNetworkError,
				Title:       subscriptionFailureTitle,
				Description: err.Error(),
			})
		}
		return err
	}

	if s.reconnectRetry != nil {
		_ = s.reconnectRetry.Execute(ctx, attempt)
		return
	}

	_ = attempt()
}

func (s *service) forwardSubscription(ctx context.Context, eventsCh chan<- RawTxEvent) error {
	events, err := s.source.Subscribe(ctx)
	if err != nil {
		return err
	}

	for {
		ev, ok := chflow.Receive(ctx, events)
		if !ok {
			break
		}

		if ok := chflow.Send(ctx, eventsCh, ev); !ok {
			return nil
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	return ErrSubscriptionClosed
}

// New returns a feed Service reading from source and decoding live events
// with decoder.
func New(source Source, decoder Decoder, opts ...Option) *service {
	cfg := newConfig(opts...)

	return &service{
		source:              source,
		decoder:             decoder,
		maxRows:             cfg.maxRows,
		backlogLimit:        cfg.backlogLimit,
		backlogRetry:        cfg.backlogRetry,
		reconnectRetry:      cfg.reconnectRetry,
		notificationHandler: cfg.notificationHandler,
		metrics:             newMetrics(cfg.meter),
		window:              Window{Items: []DecodedTx{}},
		listeners:           make(map[int]func(Window)),
	}
}
