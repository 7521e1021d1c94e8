package hydrator

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/internal/store"
)

// Hydrator writes a property catalog into the Postgres store.
type Hydrator struct {
	Store  *store.Store
	Logger *log.Logger
}

func (h *Hydrator) Enabled() bool { return h != nil && h.Store != nil }

func (h *Hydrator) logf(format string, args ...any) {
	if h.Logger != nil {
		h.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Seed upserts props in order, keeping their position. A failed record does not
// stop the run; all failures are returned joined.
func (h *Hydrator) Seed(ctx context.Context, props []catalog.Property) (int, error) {
	if !h.Enabled() {
		return 0, errors.New("hydrator requires a store")
	}
	var joined error
	written := 0
	for i, p := range props {
		if ctx.Err() != nil {
			return written, ctx.Err()
		}
		if p.ID == "" {
			joined = errors.Join(joined, fmt.Errorf("property at position %d has no id", i))
			continue
		}
		if err := h.Store.UpsertProperty(ctx, store.RecordFromProperty(i, p)); err != nil {
			h.logf("[WARN] hydrator property %s: %v", p.ID, err)
			joined = errors.Join(joined, err)
			continue
		}
		written++
	}
	h.logf("[INFO] hydrator persisted %d/%d properties", written, len(props))
	return written, joined
}
