package files

import (
	"context"
	"errors"

	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/seosites/seosites/backend/go-api/pkg/metrics"
)

// Removed returns the URLs of old that are absent from current, in old's order, without repeats.
func Removed(old, current []string) []string {
	keep := make(map[string]struct{}, len(current))
	for _, u := range current {
		keep[u] = struct{}{}
	}
	seen := map[string]struct{}{}
	var out []string
	for _, u := range old {
		if _, ok := keep[u]; ok {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// Reconciler deletes files no longer referenced by a document.
// It runs after the document write and never reports failure to the caller.
type Reconciler struct {
	store Store
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile releases the files behind URLs dropped from old to current.
// A file whose name is still referenced by current is kept.
func (r *Reconciler) Reconcile(ctx context.Context, old, current []string) {
	removed := Removed(old, current)
	if len(removed) == 0 {
		return
	}
	r.release(ctx, removed, current)
}

// Release deletes the files behind every URL in urls.
func (r *Reconciler) Release(ctx context.Context, urls []string) {
	r.release(ctx, urls, nil)
}

func (r *Reconciler) release(ctx context.Context, urls, keep []string) {
	kept := map[string]struct{}{}
	for _, u := range keep {
		if name, ok := NameFromURL(u); ok {
			kept[name] = struct{}{}
		}
	}
	done := map[string]struct{}{}
	for _, u := range urls {
		name, ok := NameFromURL(u)
		if !ok {
			metrics.ImageCleanup.WithLabelValues("skipped").Inc()
			logger.Debugf("image cleanup: skipping non-local url %q", u)
			continue
		}
		if _, ok := kept[name]; ok {
			metrics.ImageCleanup.WithLabelValues("skipped").Inc()
			continue
		}
		if _, ok := done[name]; ok {
			continue
		}
		done[name] = struct{}{}
		err := r.store.Delete(ctx, name)
		switch {
		case err == nil:
			metrics.ImageCleanup.WithLabelValues("deleted").Inc()
		case errors.Is(err, ErrNotExist):
			metrics.ImageCleanup.WithLabelValues("missing").Inc()
		default:
			metrics.ImageCleanup.WithLabelValues("error").Inc()
			logger.Warnf("image cleanup: failed to delete %s: %v", name, err)
		}
	}
}
