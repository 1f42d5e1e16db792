package models

import "time"

// TrashedDesign is the soft-delete holding record for a design. The design and
// its votes are stored verbatim so a restore reinstates them under their
// original IDs. The trash document ID equals the original design ID.
type TrashedDesign struct {
	ID        string    `json:"id" firestore:"-"` // original design ID
	Design    Design    `json:"design" firestore:"design"`
	Votes     []Vote    `json:"votes" firestore:"votes"`
	DeletedBy string    `json:"deleted_by" firestore:"deletedBy"`
	DeletedAt time.Time `json:"deleted_at" firestore:"deletedAt"`
}
