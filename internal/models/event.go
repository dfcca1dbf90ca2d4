package models

import (
	"encoding/json"
	"time"
)

// Event represents an AWS EventBridge event. Detail is kept verbatim so it can be handled as a request payload.
type Event struct {
	ID         string          `json:"id"`
	Time       time.Time       `json:"time"`
	Region     string          `json:"region"`
	Source     string          `json:"source"`
	Account    string          `json:"account"`
	Version    string          `json:"version"`
	Detail     json.RawMessage `json:"detail,omitempty"`
	DetailType string          `json:"detail-type"`
	Resources  []string        `json:"resources"`
}
