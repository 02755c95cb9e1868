package media

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Request asks Preload to resolve one asset.
type Request struct {
	Ref  Ref
	Kind Kind
}

// Catalog holds handles resolved once at startup. Refs that failed to load
// are remembered with their error so callers can fall back to an empty
// visual instead of retrying on every use.
type Catalog struct {
	handles map[Request]Handle
	failed  map[Request]error
}

// DefaultPreloadConcurrency bounds the number of loads in flight.
const DefaultPreloadConcurrency = 4

// Preload resolves every request through loader concurrently. Individual
// failures do not abort the others; they are recorded in the catalog and
// returned joined. A cancelled context stops loads that have not started.
func Preload(ctx context.Context, loader Loader, requests []Request, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cat := &Catalog{
		handles: make(map[Request]Handle, len(requests)),
		failed:  make(map[Request]error),
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultPreloadConcurrency)

	seen := make(map[Request]bool, len(requests))
	for _, req := range requests {
		if seen[req] {
			continue
		}
		seen[req] = true

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			h, err := loader.Load(gctx, req.Ref, req.Kind)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				var rle *ResourceLoadError
				if !errors.As(err, &rle) {
					err = NewResourceLoadError(req.Ref, req.Kind, err)
				}
				cat.failed[req] = err
				errs = append(errs, err)
				logger.Warn("Asset failed to load", "ref", req.Ref, "kind", req.Kind.String(), "error", err)
				return nil
			}

			cat.handles[req] = h
			logger.Debug("Asset loaded", "ref", req.Ref, "kind", req.Kind.String())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cat.Close()
		return nil, err
	}

	return cat, errors.Join(errs...)
}

// Handle returns the loaded handle for ref, or the recorded load error.
func (c *Catalog) Handle(ref Ref, kind Kind) (Handle, error) {
	req := Request{Ref: ref, Kind: kind}
	if h, ok := c.handles[req]; ok {
		return h, nil
	}
	if err, ok := c.failed[req]; ok {
		return nil, err
	}
	return nil, NewResourceLoadError(ref, kind, errors.New("not preloaded"))
}

// Len returns the number of successfully loaded handles.
func (c *Catalog) Len() int {
	return len(c.handles)
}

// Close releases every handle. The catalog is empty afterwards.
func (c *Catalog) Close() error {
	var errs []error
	for req, h := range c.handles {
		if err := h.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(c.handles, req)
	}
	return errors.Join(errs...)
}
