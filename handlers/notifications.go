// handlers/notifications.go - Live badge-award push over websocket
package handlers

import (
	"log"
	"sync"
	"time"

	"eduplay/middleware"
	"eduplay/models"

	"github.com/gofiber/websocket/v2"
)

// BadgeEvent is the wire format pushed to connected dashboards.
type BadgeEvent struct {
	Type     string                   `json:"type"`
	Badges   []models.BadgeDefinition `json:"badges"`
	EarnedAt time.Time                `json:"earned_at"`
}

// badgeConn is the slice of the websocket connection the notifier writes to.
type badgeConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// subscriber serializes writes to one connection. The websocket library does
// not allow concurrent writers, and two quiz submits from separate tabs can
// award badges for the same user at the same time.
type subscriber struct {
	mu   sync.Mutex
	conn badgeConn
}

func (s *subscriber) send(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// Notifier fans badge events out to a user's open websocket connections.
// Everything is in-process; a dropped connection is unsubscribed on the next
// failed write.
type Notifier struct {
	mu    sync.RWMutex
	conns map[string]map[*subscriber]bool
}

func NewNotifier() *Notifier {
	return &Notifier{conns: make(map[string]map[*subscriber]bool)}
}

func (n *Notifier) subscribe(userID string, conn badgeConn) *subscriber {
	sub := &subscriber{conn: conn}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conns[userID] == nil {
		n.conns[userID] = make(map[*subscriber]bool)
	}
	n.conns[userID][sub] = true
	return sub
}

func (n *Notifier) unsubscribe(userID string, sub *subscriber) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.conns[userID], sub)
	if len(n.conns[userID]) == 0 {
		delete(n.conns, userID)
	}
}

// NotifyBadges pushes newly-awarded badges to every connection the user has
// open. Write failures only drop that connection.
func (n *Notifier) NotifyBadges(userID string, badges []models.BadgeDefinition) {
	event := BadgeEvent{Type: "badges_awarded", Badges: badges, EarnedAt: time.Now()}

	n.mu.RLock()
	subs := make([]*subscriber, 0, len(n.conns[userID]))
	for sub := range n.conns[userID] {
		subs = append(subs, sub)
	}
	n.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.send(event); err != nil {
			log.Printf("notify %s: dropping connection: %v", userID, err)
			n.unsubscribe(userID, sub)
			sub.conn.Close()
		}
	}
}

// Notifications handles an upgraded websocket connection. The token comes
// as a query parameter because browsers cannot set headers on upgrades.
func (h *Handler) Notifications(conn *websocket.Conn) {
	defer conn.Close()

	userID, _, err := middleware.ParseToken(conn.Query("token"), h.JWTSecret)
	if err != nil {
		_ = conn.WriteJSON(map[string]string{"error": "Invalid or expired token"})
		return
	}

	sub := h.Notifier.subscribe(userID, conn)
	defer h.Notifier.unsubscribe(userID, sub)

	// Hold the connection open; clients do not send anything meaningful.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
