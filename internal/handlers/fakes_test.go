package handlers

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tasarim-galerisi/backend/internal/models"
	"github.com/tasarim-galerisi/backend/validators"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

type fakeDesignRepo struct {
	designs map[string]*models.Design
	nextID  int
}

func newFakeDesignRepo(designs ...*models.Design) *fakeDesignRepo {
	r := &fakeDesignRepo{designs: make(map[string]*models.Design)}
	for _, d := range designs {
		r.designs[d.ID] = d
	}
	return r
}

func (r *fakeDesignRepo) CreateDesign(_ context.Context, design *models.Design) (string, error) {
	r.nextID++
	design.ID = "design-" + strconv.Itoa(r.nextID)
	design.CreatedAt = time.Now()
	copied := *design
	r.designs[design.ID] = &copied
	return design.ID, nil
}

func (r *fakeDesignRepo) GetDesignByID(_ context.Context, id string) (*models.Design, error) {
	design, ok := r.designs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *design
	return &copied, nil
}

func (r *fakeDesignRepo) GetAllDesigns(_ context.Context) ([]models.Design, error) {
	designs := []models.Design{}
	for _, d := range r.designs {
		designs = append(designs, *d)
	}
	return designs, nil
}

func (r *fakeDesignRepo) ApplyRatingDelta(_ context.Context, id string, delta int64) error {
	design, ok := r.designs[id]
	if !ok {
		return models.ErrNotFound
	}
	design.Rating += delta
	return nil
}

func (r *fakeDesignRepo) DeleteDesign(_ context.Context, id string) error {
	delete(r.designs, id)
	return nil
}

func (r *fakeDesignRepo) RestoreDesign(_ context.Context, design *models.Design) error {
	copied := *design
	r.designs[design.ID] = &copied
	return nil
}

type fakeVoteRepo struct {
	votes map[string]*models.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*models.Vote)}
}

func (r *fakeVoteRepo) GetVote(_ context.Context, userID, designID string) (*models.Vote, error) {
	vote, ok := r.votes[models.VoteDocID(userID, designID)]
	if !ok {
		return nil, nil
	}
	copied := *vote
	return &copied, nil
}

func (r *fakeVoteRepo) UpsertVote(_ context.Context, vote *models.Vote) error {
	copied := *vote
	r.votes[models.VoteDocID(vote.UserID, vote.DesignID)] = &copied
	return nil
}

func (r *fakeVoteRepo) DeleteVote(_ context.Context, userID, designID string) error {
	delete(r.votes, models.VoteDocID(userID, designID))
	return nil
}

func (r *fakeVoteRepo) GetVotesByUserID(_ context.Context, userID string) ([]models.Vote, error) {
	votes := []models.Vote{}
	for _, v := range r.votes {
		if v.UserID == userID {
			votes = append(votes, *v)
		}
	}
	return votes, nil
}

func (r *fakeVoteRepo) GetVotesByDesignID(_ context.Context, designID string) ([]models.Vote, error) {
	votes := []models.Vote{}
	for _, v := range r.votes {
		if v.DesignID == designID {
			votes = append(votes, *v)
		}
	}
	return votes, nil
}

func (r *fakeVoteRepo) DeleteVotes(ctx context.Context, votes []models.Vote) error {
	for _, v := range votes {
		if err := r.DeleteVote(ctx, v.UserID, v.DesignID); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeVoteRepo) RestoreVotes(ctx context.Context, votes []models.Vote) error {
	for i := range votes {
		if err := r.UpsertVote(ctx, &votes[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeTrashRepo struct {
	trashed map[string]*models.TrashedDesign
}

func newFakeTrashRepo() *fakeTrashRepo {
	return &fakeTrashRepo{trashed: make(map[string]*models.TrashedDesign)}
}

func (r *fakeTrashRepo) CreateTrashedDesign(_ context.Context, trashed *models.TrashedDesign) error {
	copied := *trashed
	r.trashed[trashed.ID] = &copied
	return nil
}

func (r *fakeTrashRepo) GetTrashedDesign(_ context.Context, id string) (*models.TrashedDesign, error) {
	trashed, ok := r.trashed[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *trashed
	return &copied, nil
}

func (r *fakeTrashRepo) GetAllTrashedDesigns(_ context.Context) ([]models.TrashedDesign, error) {
	trashed := []models.TrashedDesign{}
	for _, t := range r.trashed {
		trashed = append(trashed, *t)
	}
	return trashed, nil
}

func (r *fakeTrashRepo) DeleteTrashedDesign(_ context.Context, id string) error {
	delete(r.trashed, id)
	return nil
}

type fakeAuditRepo struct {
	entries []models.AuditEntry
	failing bool
}

func (r *fakeAuditRepo) CreateEntry(entry *models.AuditEntry) error {
	if r.failing {
		return fmt.Errorf("audit database down")
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeAuditRepo) GetEntriesByDesignID(designID string) ([]models.AuditEntry, error) {
	entries := []models.AuditEntry{}
	for _, e := range r.entries {
		if e.DesignID == designID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *fakeAuditRepo) GetRecentEntries(limit int) ([]models.AuditEntry, error) {
	if len(r.entries) > limit {
		return r.entries[len(r.entries)-limit:], nil
	}
	return r.entries, nil
}

type fakeImageHost struct {
	url string
	err error
}

func (f *fakeImageHost) Upload(_ context.Context, _ io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
