package repositories

import (
	"context"
	"log"

	"github.com/delsur-bakery/delsur-store/store"
)

// observe implements the shared observable-query loop: emit the current
// local snapshot immediately, trigger a best-effort background pull,
// and re-emit whenever the watched table changes. The sequence never
// fails outright — query errors keep the last known good emission and
// pull failures are handled inside pull itself.
func observe[T any](
	ctx context.Context,
	s *store.Store,
	table store.Table,
	pull func(context.Context),
	query func(context.Context) ([]T, error),
) <-chan []T {
	out := make(chan []T, 1)
	go func() {
		defer close(out)

		// Subscribe before the pull starts so its commit cannot slip
		// between the first snapshot and the watch.
		changes := s.Watch(ctx, table)
		if pull != nil {
			go pull(ctx)
		}
		emit := func() bool {
			rows, err := query(ctx)
			if err != nil {
				log.Printf("observe %s: query failed: %v", table, err)
				return true
			}
			select {
			case out <- rows:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for {
			select {
			case _, ok := <-changes:
				if !ok {
					return
				}
				if !emit() {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// staleIDs returns the locally cached ids that no longer appear in the
// remote result set.
func staleIDs(local []int, remote map[int]struct{}) []int {
	var stale []int
	for _, id := range local {
		if _, ok := remote[id]; !ok {
			stale = append(stale, id)
		}
	}
	return stale
}
