package events

import "time"

// Refresh reasons.
const (
	ReasonStartup    = "startup"
	ReasonManual     = "manual"
	ReasonSync       = "sync"
	ReasonLogChanged = "log_changed"
)

// RefreshEvent asks the stats session to reload from disk. Rotate compacts closed period files first;
// Upload pushes the logs to the sync server after the reload.
//
// Example JSON:
//
//	{
//	  "id": "01HRA6Q2V7X3E9K1M5N8P0R4ST",
//	  "reason": "sync",
//	  "rotate": true,
//	  "upload": true,
//	  "requestedAt": "2024-03-06T12:00:00Z"
//	}
type RefreshEvent struct {
	ID          string    `json:"id"`
	Reason      string    `json:"reason"`
	Rotate      bool      `json:"rotate"`
	Upload      bool      `json:"upload"`
	RequestedAt time.Time `json:"requestedAt"`
}
