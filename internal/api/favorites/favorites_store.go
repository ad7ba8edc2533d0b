package favorites

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/karthikn/pondy-guide/internal/types"
)

// Store is the favorites contract shared by the authenticated and guest
// backends. ownerKey is a user id for the database store and a guest device
// id for the local store.
type Store interface {
	IsFavorite(ctx context.Context, ownerKey string, placeID uuid.UUID) (bool, error)
	// Toggle removes the place when present, adds it otherwise. Returns
	// whether the place is a favorite after the call.
	Toggle(ctx context.Context, ownerKey string, place types.SavedPlace) (bool, error)
	List(ctx context.Context, ownerKey string) ([]types.SavedPlace, error)
	// Subscribe delivers the owner's snapshot after every toggle in this
	// process. The returned cancel func must be called to release the
	// subscription.
	Subscribe(ownerKey string) (<-chan []types.SavedPlace, func())
}

// notifier fans a favorites snapshot out to same-process subscribers.
type notifier struct {
	mu   sync.Mutex
	subs map[string][]chan []types.SavedPlace
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[string][]chan []types.SavedPlace)}
}

func (n *notifier) subscribe(ownerKey string) (<-chan []types.SavedPlace, func()) {
	ch := make(chan []types.SavedPlace, 1)
	n.mu.Lock()
	n.subs[ownerKey] = append(n.subs[ownerKey], ch)
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		chans := n.subs[ownerKey]
		for i, c := range chans {
			if c == ch {
				n.subs[ownerKey] = append(chans[:i], chans[i+1:]...)
				close(c)
				return
			}
		}
	}
	return ch, cancel
}

func (n *notifier) publish(ownerKey string, snapshot []types.SavedPlace) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs[ownerKey] {
		// A slow subscriber keeps only the latest snapshot.
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}
