package repositories

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/tasarim-galerisi/backend/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TrashCollection is the Firestore collection holding soft-deleted designs
const TrashCollection = "trash"

// TrashRepository defines the interface for the soft-delete holding area
type TrashRepository interface {
	CreateTrashedDesign(ctx context.Context, trashed *models.TrashedDesign) error
	GetTrashedDesign(ctx context.Context, id string) (*models.TrashedDesign, error)
	GetAllTrashedDesigns(ctx context.Context) ([]models.TrashedDesign, error)
	DeleteTrashedDesign(ctx context.Context, id string) error
}

// FirestoreTrashRepository implements TrashRepository for Cloud Firestore
type FirestoreTrashRepository struct {
	collection *firestore.CollectionRef
}

// NewFirestoreTrashRepository creates a new FirestoreTrashRepository
func NewFirestoreTrashRepository(client *firestore.Client) *FirestoreTrashRepository {
	return &FirestoreTrashRepository{collection: client.Collection(TrashCollection)}
}

// CreateTrashedDesign stores a holding record under the original design ID
func (r *FirestoreTrashRepository) CreateTrashedDesign(ctx context.Context, trashed *models.TrashedDesign) error {
	if trashed.ID == "" {
		return fmt.Errorf("trash design: missing document ID")
	}
	if _, err := r.collection.Doc(trashed.ID).Set(ctx, trashed); err != nil {
		return fmt.Errorf("%w: trash design %s: %v", models.ErrStoreUnavailable, trashed.ID, err)
	}
	return nil
}

// GetTrashedDesign retrieves a holding record by the original design ID
func (r *FirestoreTrashRepository) GetTrashedDesign(ctx context.Context, id string) (*models.TrashedDesign, error) {
	snap, err := r.collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get trashed design %s: %v", models.ErrStoreUnavailable, id, err)
	}
	return decodeTrashedDesign(snap)
}

// GetAllTrashedDesigns retrieves the full trash collection
func (r *FirestoreTrashRepository) GetAllTrashedDesigns(ctx context.Context) ([]models.TrashedDesign, error) {
	trashed := []models.TrashedDesign{}
	iter := r.collection.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list trash: %v", models.ErrStoreUnavailable, err)
		}
		t, err := decodeTrashedDesign(snap)
		if err != nil {
			log.Printf("Skipping malformed trash document %s: %v", snap.Ref.ID, err)
			continue
		}
		trashed = append(trashed, *t)
	}
	return trashed, nil
}

// DeleteTrashedDesign removes a holding record, either after a restore or as
// the irreversible permanent purge
func (r *FirestoreTrashRepository) DeleteTrashedDesign(ctx context.Context, id string) error {
	if _, err := r.collection.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: purge trashed design %s: %v", models.ErrStoreUnavailable, id, err)
	}
	return nil
}

func decodeTrashedDesign(snap *firestore.DocumentSnapshot) (*models.TrashedDesign, error) {
	var trashed models.TrashedDesign
	if err := snap.DataTo(&trashed); err != nil {
		return nil, fmt.Errorf("decode trashed design %s: %w", snap.Ref.ID, err)
	}
	trashed.ID = snap.Ref.ID
	trashed.Design.ID = snap.Ref.ID
	return &trashed, nil
}
