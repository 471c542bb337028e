package activity

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one change-history row from either the personal or the
// organization-wide feed. OccurredAt is the raw stored timestamp and is
// exposed to callers as-is, even when it does not parse.
type Event struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Action     string
	Subject    string
	OccurredAt string
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// sortKey parses the event timestamp for ranking only. Missing or
// unparseable timestamps map to the zero time so they rank after every
// known date in the descending merge.
func sortKey(e Event) time.Time {
	raw := strings.TrimSpace(e.OccurredAt)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Merge concatenates the personal feed with the org feed, drops org rows
// owned by the requester (their own changes already appear in the
// personal feed), ranks most-recent-first and truncates to limit.
// A non-positive limit means no truncation.
func Merge(personal, org []Event, requesterID uuid.UUID, limit int) []Event {
	merged := make([]Event, 0, len(personal)+len(org))
	merged = append(merged, personal...)
	for _, e := range org {
		if e.OwnerID != uuid.Nil && e.OwnerID == requesterID {
			continue
		}
		merged = append(merged, e)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return sortKey(merged[i]).After(sortKey(merged[j]))
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
