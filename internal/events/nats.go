package events

import (
	"encoding/json"
	"fmt"
	"strings"

	model "auction-board/internal/models"
	"auction-board/utils"

	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is prepended to every relayed event subject
const DefaultSubjectPrefix = "auction.store"

// Conn is the part of *nats.Conn the relay needs
type Conn interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher relays shared store events to NATS.
// Subject pattern: "auction.store.{action}" with "/" replaced by ".",
// e.g. "auction.store.counter.increment".
type NATSPublisher struct {
	conn   Conn
	prefix string
}

// NewNATSPublisher creates a relay on conn
func NewNATSPublisher(conn Conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Connect dials NATS and returns the connection and a relay on it
func Connect(url string) (*nats.Conn, *NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("auction-board"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, NewNATSPublisher(conn, DefaultSubjectPrefix), nil
}

// Subject returns the subject an action is published on
func (p *NATSPublisher) Subject(action model.StoreAction) string {
	return p.prefix + "." + strings.ReplaceAll(string(action), "/", ".")
}

// Publish sends one event
func (p *NATSPublisher) Publish(ev model.StoreEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.Subject(ev.Action)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// HandleEvent is a store listener; failures are logged and never reach the store
func (p *NATSPublisher) HandleEvent(ev model.StoreEvent) {
	if err := p.Publish(ev); err != nil {
		utils.Error("events: relay failed", map[string]any{
			"action":  string(ev.Action),
			"version": ev.State.Version,
			"error":   err.Error(),
		})
		return
	}
	utils.Debug("events: relayed", map[string]any{"action": string(ev.Action), "version": ev.State.Version})
}
