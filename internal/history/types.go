package history

import (
	"time"

	"github.com/lumamaternal/care-engine/internal/checkin"
)

// #region checkin-record

// CheckinRecord is one persisted daily check-in with its derived zone.
type CheckinRecord struct {
	ID         string
	UserID     string
	Dimensions checkin.Dimensions
	Week       int
	Moment     checkin.Moment
	Zone       int
	CreatedAt  time.Time
}

// #endregion checkin-record

// #region seen-catalog

// SeenCatalog names one of the fragment pools whose seen lists the store
// tracks per user.
type SeenCatalog string

const (
	CatalogOpenings   SeenCatalog = "openings"
	CatalogCores      SeenCatalog = "cores"
	CatalogClosings   SeenCatalog = "closings"
	CatalogMilestones SeenCatalog = "milestones"
)

// #endregion seen-catalog

// #region decision-entry

// DecisionEntry is one append-only provenance row: which component decided
// what, and why.
type DecisionEntry struct {
	UserID    string
	CheckinID string // optional, links the decision to a check-in
	Component string // "deriver", "generator", "composer", "upsell", "celebration"
	Decision  string
	Reason    string
	CreatedAt time.Time
}

// #endregion decision-entry
