package voting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tasarim-galerisi/backend/internal/models"
	"github.com/tasarim-galerisi/backend/internal/repositories"
)

// Engine maintains per-user vote state and per-design aggregate ratings.
//
// A vote action is a toggle: casting the value a user already holds retracts
// it, casting a different value replaces it in one step. The rating delta is
// applied through the store's atomic increment, so concurrent voters on the
// same design compose correctly. The vote write and the rating increment are
// still two independent writes; a failure between them leaves the rating
// diverged from the vote set until the next successful toggle, which is why
// every such failure is logged before being returned.
type Engine struct {
	designRepo repositories.DesignRepository
	voteRepo   repositories.VoteRepository
}

// NewEngine creates a new vote aggregation engine
func NewEngine(designRepo repositories.DesignRepository, voteRepo repositories.VoteRepository) *Engine {
	return &Engine{designRepo: designRepo, voteRepo: voteRepo}
}

// CastOrToggleVote applies a user's reaction to a design and returns the
// design's updated rating.
//
//   - no existing vote: the vote is recorded, rating moves by the value's weight
//   - existing vote equals the requested value: the vote is retracted, rating
//     moves back by the value's weight
//   - existing vote differs: the vote is replaced, rating moves by the
//     difference of the weights (a LIKE to DISLIKE flip moves it by -2)
func (e *Engine) CastOrToggleVote(ctx context.Context, principal models.Principal, designID string, requested models.VoteValue) (int64, error) {
	if principal.UID == "" {
		return 0, models.ErrUnauthenticated
	}
	if requested.Weight() == 0 {
		return 0, fmt.Errorf("unknown vote value %q", requested)
	}

	design, err := e.designRepo.GetDesignByID(ctx, designID)
	if err != nil {
		return 0, err
	}

	existing, err := e.voteRepo.GetVote(ctx, principal.UID, designID)
	if err != nil {
		return 0, err
	}

	var delta int64
	if existing != nil && existing.Value == requested {
		// Retraction: same value voted twice in a row.
		if err := e.voteRepo.DeleteVote(ctx, principal.UID, designID); err != nil {
			return 0, err
		}
		delta = -requested.Weight()
	} else {
		var oldWeight int64
		if existing != nil {
			oldWeight = existing.Value.Weight()
		}
		vote := &models.Vote{
			UserID:   principal.UID,
			DesignID: designID,
			Value:    requested,
			VotedAt:  time.Now(),
		}
		if err := e.voteRepo.UpsertVote(ctx, vote); err != nil {
			return 0, err
		}
		delta = requested.Weight() - oldWeight
	}

	if err := e.designRepo.ApplyRatingDelta(ctx, designID, delta); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Design vanished between the existence check and the increment;
			// the rating adjustment is skipped, never forced.
			log.Printf("Vote for design %s recorded but design no longer exists, rating delta %+d skipped", designID, delta)
			return 0, models.ErrNotFound
		}
		log.Printf("Rating divergence on design %s: vote state written but rating delta %+d failed: %v", designID, delta, err)
		return 0, err
	}

	return design.Rating + delta, nil
}

// UserVotes returns the caller's current vote state keyed by design ID
func (e *Engine) UserVotes(ctx context.Context, principal models.Principal) (map[string]models.VoteValue, error) {
	if principal.UID == "" {
		return nil, models.ErrUnauthenticated
	}
	votes, err := e.voteRepo.GetVotesByUserID(ctx, principal.UID)
	if err != nil {
		return nil, err
	}
	state := make(map[string]models.VoteValue, len(votes))
	for _, vote := range votes {
		state[vote.DesignID] = vote.Value
	}
	return state, nil
}
