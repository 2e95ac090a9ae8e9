package driven

import "context"

// TreeWatcher observes directory trees and reports changes.
type TreeWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange once per
	// burst of filesystem activity under any of the roots.
	Watch(ctx context.Context, roots []string, onChange func()) error
}
