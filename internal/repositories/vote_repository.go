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

// VotesCollection is the Firestore collection holding live votes
const VotesCollection = "votes"

// VoteRepository defines the interface for vote data operations
type VoteRepository interface {
	GetVote(ctx context.Context, userID, designID string) (*models.Vote, error)
	UpsertVote(ctx context.Context, vote *models.Vote) error
	DeleteVote(ctx context.Context, userID, designID string) error
	GetVotesByUserID(ctx context.Context, userID string) ([]models.Vote, error)
	GetVotesByDesignID(ctx context.Context, designID string) ([]models.Vote, error)
	DeleteVotes(ctx context.Context, votes []models.Vote) error
	RestoreVotes(ctx context.Context, votes []models.Vote) error
}

// FirestoreVoteRepository implements VoteRepository for Cloud Firestore
type FirestoreVoteRepository struct {
	collection *firestore.CollectionRef
}

// NewFirestoreVoteRepository creates a new FirestoreVoteRepository
func NewFirestoreVoteRepository(client *firestore.Client) *FirestoreVoteRepository {
	return &FirestoreVoteRepository{collection: client.Collection(VotesCollection)}
}

// GetVote retrieves a user's vote for a design, or nil when none exists
func (r *FirestoreVoteRepository) GetVote(ctx context.Context, userID, designID string) (*models.Vote, error) {
	snap, err := r.collection.Doc(models.VoteDocID(userID, designID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get vote: %v", models.ErrStoreUnavailable, err)
	}
	return decodeVote(snap)
}

// UpsertVote creates or replaces the vote document for its (user, design) pair
func (r *FirestoreVoteRepository) UpsertVote(ctx context.Context, vote *models.Vote) error {
	docID := models.VoteDocID(vote.UserID, vote.DesignID)
	if _, err := r.collection.Doc(docID).Set(ctx, vote); err != nil {
		return fmt.Errorf("%w: upsert vote %s: %v", models.ErrStoreUnavailable, docID, err)
	}
	return nil
}

// DeleteVote removes a user's vote for a design
func (r *FirestoreVoteRepository) DeleteVote(ctx context.Context, userID, designID string) error {
	docID := models.VoteDocID(userID, designID)
	if _, err := r.collection.Doc(docID).Delete(ctx); err != nil {
		return fmt.Errorf("%w: delete vote %s: %v", models.ErrStoreUnavailable, docID, err)
	}
	return nil
}

// GetVotesByUserID retrieves all votes cast by a user
func (r *FirestoreVoteRepository) GetVotesByUserID(ctx context.Context, userID string) ([]models.Vote, error) {
	return r.queryVotes(ctx, r.collection.Where("userId", "==", userID))
}

// GetVotesByDesignID retrieves all votes cast on a design
func (r *FirestoreVoteRepository) GetVotesByDesignID(ctx context.Context, designID string) ([]models.Vote, error) {
	return r.queryVotes(ctx, r.collection.Where("designId", "==", designID))
}

// DeleteVotes removes the given vote documents, used when a design moves to trash
func (r *FirestoreVoteRepository) DeleteVotes(ctx context.Context, votes []models.Vote) error {
	for _, vote := range votes {
		if err := r.DeleteVote(ctx, vote.UserID, vote.DesignID); err != nil {
			return err
		}
	}
	return nil
}

// RestoreVotes writes vote documents back under their compound IDs
func (r *FirestoreVoteRepository) RestoreVotes(ctx context.Context, votes []models.Vote) error {
	for i := range votes {
		if err := r.UpsertVote(ctx, &votes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *FirestoreVoteRepository) queryVotes(ctx context.Context, q firestore.Query) ([]models.Vote, error) {
	votes := []models.Vote{}
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list votes: %v", models.ErrStoreUnavailable, err)
		}
		vote, err := decodeVote(snap)
		if err != nil {
			log.Printf("Skipping malformed vote document %s: %v", snap.Ref.ID, err)
			continue
		}
		votes = append(votes, *vote)
	}
	return votes, nil
}

func decodeVote(snap *firestore.DocumentSnapshot) (*models.Vote, error) {
	var vote models.Vote
	if err := snap.DataTo(&vote); err != nil {
		return nil, fmt.Errorf("decode vote %s: %w", snap.Ref.ID, err)
	}
	if !vote.Valid() {
		return nil, fmt.Errorf("vote %s has missing or invalid fields", snap.Ref.ID)
	}
	return &vote, nil
}
