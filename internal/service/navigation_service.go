package service

import (
	"encoding/json"
	"fmt"

	"petboard/internal/model"
	"petboard/internal/websocket"
)

// Navigator dispatches navigation actions to the dashboard frontend.
// Implementations are fire-and-forget; callers log failures and continue.
type Navigator interface {
	Navigate(action model.ActionDescriptor) error
}

// navigateEvent is the wire shape pushed over the websocket hub
type navigateEvent struct {
	Event  string                 `json:"event"`
	Action model.ActionDescriptor `json:"action"`
}

type hubNavigator struct {
	hub *websocket.Hub
}

// NewHubNavigator returns a Navigator that broadcasts actions to every
// connected dashboard client
func NewHubNavigator(hub *websocket.Hub) Navigator {
	return &hubNavigator{hub: hub}
}

func (n *hubNavigator) Navigate(action model.ActionDescriptor) error {
	payload, err := json.Marshal(navigateEvent{Event: "navigate", Action: action})
	if err != nil {
		return fmt.Errorf("failed to encode navigation action: %w", err)
	}
	n.hub.Broadcast <- payload
	return nil
}
