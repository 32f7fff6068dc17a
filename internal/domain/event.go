package domain

import "time"

// ChangeEvent is published after a successful mutation.
type ChangeEvent struct {
	Resource  string    `json:"resource"`
	Action    string    `json:"action"`
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
}
