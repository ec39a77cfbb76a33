package explorer

import (
	"context"
	"time"

	"github.com/gabapcia/chainscope/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (s *service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "explorer."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// blockInfo returns the timestamp of the block at height and the chain id.
// Both come from memory when possible: block times are cached per height
// and the chain id is learned from the first block fetched. Cache failures
// only cost a block fetch.
func (s *service) blockInfo(ctx context.Context, height int64) (time.Time, string, error) {
	if chainID := s.knownChainID(); chainID != "" && s.cache != nil {
		t, ok, err := s.cache.Get(ctx, height)
		switch {
		case err != nil:
			logger.Warn(ctx, "block time cache read failed", "block.height", height, "error", err)
		case ok:
			return t, chainID, nil
		}
	}

	res, err := s.chain.Block(ctx, height)
	if err != nil {
		return time.Time{}, "", err
	}

	header := res.Block.Header
	s.learnChainID(header.ChainID)
	s.rememberBlockTime(ctx, height, header.Time)
	return header.Time, header.ChainID, nil
}

func (s *service) knownChainID() string {
	s.chainIDMu.RLock()
	defer s.chainIDMu.RUnlock()

	return s.chainID
}

func (s *service) learnChainID(chainID string) {
	if chainID == "" {
		return
	}

	s.chainIDMu.Lock()
	defer s.chainIDMu.Unlock()

	s.chainID = chainID
}

func (s *service) rememberBlockTime(ctx context.Context, height int64, t time.Time) {
	if s.cache == nil || t.IsZero() {
		return
	}

	if err := s.cache.Set(ctx, height, t); err != nil {
		logger.Warn(ctx, "block time cache write failed", "block.height", height, "error", err)
	}
}
