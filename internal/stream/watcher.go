package stream

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/tasarim-galerisi/backend/internal/models"
	"github.com/tasarim-galerisi/backend/internal/repositories"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Watcher listens on the design collection and forwards every snapshot push
// to the hub. Each push carries the full current collection state; the watcher
// never applies it as a delta.
type Watcher struct {
	client *firestore.Client
	hub    *Hub
}

// NewWatcher creates a new Watcher
func NewWatcher(client *firestore.Client, hub *Hub) *Watcher {
	return &Watcher{client: client, hub: hub}
}

// Run blocks consuming snapshot pushes until ctx is cancelled. Cancelling ctx
// releases the underlying Firestore listener.
func (w *Watcher) Run(ctx context.Context) error {
	snapshots := w.client.Collection(repositories.DesignsCollection).
		OrderBy("createdAt", firestore.Desc).
		Snapshots(ctx)
	defer snapshots.Stop()

	for {
		qsnap, err := snapshots.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				log.Println("Design snapshot watcher stopped.")
				return nil
			}
			return fmt.Errorf("design snapshot stream: %w", err)
		}

		designs := []models.Design{}
		docs := qsnap.Documents
		for {
			doc, err := docs.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				log.Printf("Reading snapshot documents failed: %v", err)
				break
			}
			design, err := repositories.DecodeDesign(doc)
			if err != nil {
				log.Printf("Skipping malformed design document %s: %v", doc.Ref.ID, err)
				continue
			}
			designs = append(designs, *design)
		}

		w.hub.Broadcast(designs)
	}
}
