package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"agroalert/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage represents the structure of a Pub/Sub push request body.
// The local publisher produces the same shape Google Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeScanEvent decodes the base64 JSON payload of a push message.
func (m *PushMessage) DecodeScanEvent() (*service.ScanEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.ScanEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse scan event")
	}
	if event.SubscriptionID == "" {
		return nil, errors.New("scan event without subscription_id")
	}

	return &event, nil
}

// eventAttributes builds the message attributes used for filtering and tracing.
func eventAttributes(event *service.ScanEvent) map[string]string {
	attributes := map[string]string{
		"subscription_id": event.SubscriptionID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
