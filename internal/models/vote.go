package models

import (
	"fmt"
	"time"
)

// VoteValue is a user's reaction to a design
type VoteValue string

const (
	VoteLike    VoteValue = "LIKE"
	VoteDislike VoteValue = "DISLIKE"
)

// Weight returns the signed contribution of the value to a design's rating
func (v VoteValue) Weight() int64 {
	switch v {
	case VoteLike:
		return 1
	case VoteDislike:
		return -1
	}
	return 0
}

// ParseVoteValue converts client input into a VoteValue
func ParseVoteValue(s string) (VoteValue, error) {
	switch VoteValue(s) {
	case VoteLike, VoteDislike:
		return VoteValue(s), nil
	}
	return "", fmt.Errorf("invalid vote value %q", s)
}

// Vote represents a single user's reaction to a design. The Firestore document
// ID is VoteDocID(userID, designID), so the store itself enforces at most one
// live vote per (user, design) pair.
type Vote struct {
	UserID   string    `json:"user_id" firestore:"userId"`
	DesignID string    `json:"design_id" firestore:"designId"`
	Value    VoteValue `json:"value" firestore:"value"`
	VotedAt  time.Time `json:"voted_at" firestore:"votedAt"`
}

// Valid reports whether a decoded vote document is well formed
func (v *Vote) Valid() bool {
	return v.UserID != "" && v.DesignID != "" && v.Value.Weight() != 0
}

// VoteDocID builds the compound document key for a vote
func VoteDocID(userID, designID string) string {
	return userID + "_" + designID
}

// CastVoteRequest defines the request body for casting or toggling a vote
type CastVoteRequest struct {
	Value string `json:"value" validate:"required,oneof=LIKE DISLIKE"`
}
