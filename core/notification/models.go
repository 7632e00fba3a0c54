package notification

import (
	"time"

	"github.com/trezcool/kitivo/core/nav"
)

// Notification targets a single user. Once created it is never mutated
// except to flip the read flag.
type Notification struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Text      string     `json:"text"`
	Read      bool       `json:"read"`
	Route     *nav.Route `json:"route,omitempty"`
	CreatedAt time.Time  `json:"created_at"` // UTC
}

// Intent is a pending notification produced by a domain operation. The
// Dispatcher turns intents into records; domain packages never write
// notifications themselves.
type Intent struct {
	Broadcast bool
	ActorID   int // excluded from broadcasts
	TargetID  int // ignored when Broadcast
	Text      string
	Route     *nav.Route
}

// Targeted builds an intent for a single recipient.
func Targeted(userID int, text string, route *nav.Route) Intent {
	return Intent{TargetID: userID, Text: text, Route: route}
}

// Broadcasted builds an intent for every user except the actor.
func Broadcasted(actorID int, text string, route *nav.Route) Intent {
	return Intent{Broadcast: true, ActorID: actorID, Text: text, Route: route}
}
