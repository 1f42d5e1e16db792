package repositories

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/tasarim-galerisi/backend/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DesignsCollection is the Firestore collection holding live designs
const DesignsCollection = "designs"

// DesignRepository defines the interface for design data operations
type DesignRepository interface {
	CreateDesign(ctx context.Context, design *models.Design) (string, error)
	GetDesignByID(ctx context.Context, id string) (*models.Design, error)
	GetAllDesigns(ctx context.Context) ([]models.Design, error)
	ApplyRatingDelta(ctx context.Context, id string, delta int64) error
	DeleteDesign(ctx context.Context, id string) error
	RestoreDesign(ctx context.Context, design *models.Design) error
}

// FirestoreDesignRepository implements DesignRepository for Cloud Firestore
type FirestoreDesignRepository struct {
	collection *firestore.CollectionRef
}

// NewFirestoreDesignRepository creates a new FirestoreDesignRepository
func NewFirestoreDesignRepository(client *firestore.Client) *FirestoreDesignRepository {
	return &FirestoreDesignRepository{collection: client.Collection(DesignsCollection)}
}

// CreateDesign creates a new design document and returns its store-assigned ID
func (r *FirestoreDesignRepository) CreateDesign(ctx context.Context, design *models.Design) (string, error) {
	design.CreatedAt = time.Now()
	ref, _, err := r.collection.Add(ctx, design)
	if err != nil {
		return "", fmt.Errorf("%w: create design: %v", models.ErrStoreUnavailable, err)
	}
	design.ID = ref.ID
	return ref.ID, nil
}

// GetDesignByID retrieves a design by its document ID
func (r *FirestoreDesignRepository) GetDesignByID(ctx context.Context, id string) (*models.Design, error) {
	snap, err := r.collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get design %s: %v", models.ErrStoreUnavailable, id, err)
	}
	return DecodeDesign(snap)
}

// GetAllDesigns retrieves the full design collection, newest first
func (r *FirestoreDesignRepository) GetAllDesigns(ctx context.Context) ([]models.Design, error) {
	designs := []models.Design{}
	iter := r.collection.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list designs: %v", models.ErrStoreUnavailable, err)
		}
		design, err := DecodeDesign(snap)
		if err != nil {
			// Malformed documents are skipped, never propagated.
			log.Printf("Skipping malformed design document %s: %v", snap.Ref.ID, err)
			continue
		}
		designs = append(designs, *design)
	}
	return designs, nil
}

// ApplyRatingDelta adjusts a design's rating with a server-side atomic
// increment, so concurrent voters compose without a lost update.
func (r *FirestoreDesignRepository) ApplyRatingDelta(ctx context.Context, id string, delta int64) error {
	_, err := r.collection.Doc(id).Update(ctx, []firestore.Update{
		{Path: "rating", Value: firestore.Increment(delta)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.ErrNotFound
		}
		return fmt.Errorf("%w: adjust rating of design %s by %+d: %v", models.ErrStoreUnavailable, id, delta, err)
	}
	return nil
}

// DeleteDesign removes a design document from the live collection
func (r *FirestoreDesignRepository) DeleteDesign(ctx context.Context, id string) error {
	if _, err := r.collection.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: delete design %s: %v", models.ErrStoreUnavailable, id, err)
	}
	return nil
}

// RestoreDesign writes a design back under its original document ID
func (r *FirestoreDesignRepository) RestoreDesign(ctx context.Context, design *models.Design) error {
	if design.ID == "" {
		return fmt.Errorf("restore design: missing document ID")
	}
	if _, err := r.collection.Doc(design.ID).Set(ctx, design); err != nil {
		return fmt.Errorf("%w: restore design %s: %v", models.ErrStoreUnavailable, design.ID, err)
	}
	return nil
}

// DecodeDesign parses a Firestore document into a Design, rejecting documents
// that do not carry the expected shape.
func DecodeDesign(snap *firestore.DocumentSnapshot) (*models.Design, error) {
	var design models.Design
	if err := snap.DataTo(&design); err != nil {
		return nil, fmt.Errorf("decode design %s: %w", snap.Ref.ID, err)
	}
	design.ID = snap.Ref.ID
	if !design.Valid() {
		return nil, fmt.Errorf("design %s has missing required fields", snap.Ref.ID)
	}
	return &design, nil
}
