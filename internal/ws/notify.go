package ws

import (
	"context"
	"encoding/json"
	"errors"

	"placement-hub/internal/domain/application"
)

var errBroadcastDropped = errors.New("ws broadcast dropped")

// Notifier publishes application events to the hub's dashboard clients.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) Publish(_ context.Context, evt application.Event) error {
	if n == nil || n.hub == nil {
		return nil
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	if !n.hub.Broadcast(b) {
		return errBroadcastDropped
	}
	return nil
}
