package mock

import (
	"context"

	"github.com/fwojciec/staffdir"
)

var _ staffdir.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of staffdir.URLSource.
type URLSource struct {
	ReadURLsFn func(ctx context.Context) ([]string, error)
}

func (s *URLSource) ReadURLs(ctx context.Context) ([]string, error) {
	return s.ReadURLsFn(ctx)
}

var _ staffdir.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of staffdir.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
