package amqp

import (
	"encoding/json"
	"time"
)

// RefreshMessage asks the worker to rebuild cached dashboard snapshots.
// Period narrows the rebuild to one period token; empty means every period
// the worker warms.
type RefreshMessage struct {
	Period    string    `json:"period,omitempty"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRefreshMessage(period, reason string) *RefreshMessage {
	return &RefreshMessage{
		Period:    period,
		Reason:    reason,
		Timestamp: time.Now(),
	}
}

func (m *RefreshMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RefreshMessageFromJSON(data []byte) (*RefreshMessage, error) {
	var msg RefreshMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
