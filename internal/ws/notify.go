package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// GapRefreshEvent tells connected dashboards that an employee's skill
// profile changed and gap views should recompute.
type GapRefreshEvent struct {
	Type       string `json:"type"`
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyGapRefresh(employeeID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if employeeID == uuid.Nil {
		return
	}

	evt := GapRefreshEvent{
		Type:       "gap_refresh",
		EmployeeID: employeeID.String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
