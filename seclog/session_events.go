package seclog

import (
	"context"
	"deskgate/common"
	"deskgate/session"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

const SessionEventsIndex = "deskgate-session-events"

const (
	EventLogin               = "session.login"
	EventLogout              = "session.logout"
	EventPermissionsDegraded = "session.permissions_degraded"
)

// SessionEvent is one audit record of the session lifecycle. Tokens
// never appear in audit records.
type SessionEvent struct {
	ID        types.ID        `json:"id"`
	Timestamp types.Timestamp `json:"timestamp"`
	Category  string          `json:"category"`

	UserID   types.ID `json:"userId"`
	Username string   `json:"username"`
	Detail   string   `json:"detail,omitempty"`
}

var (
	RecordSessionEventFunc = RecordSessionEvent

	eventIdWorker *sonyflake.Sonyflake
)

func init() {
	eventIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})
}

// RecordSessionEvent indexes one audit record. Auditing is best
// effort: indexing failures are logged, never propagated, and a
// missing Elasticsearch client disables auditing entirely.
func RecordSessionEvent(ctx context.Context, category string, identity session.Identity, detail string) {
	if ActiveESClient == nil {
		return
	}
	event := SessionEvent{
		ID:        common.NextId(eventIdWorker),
		Timestamp: types.CurrentTimestamp(),
		Category:  category,
		UserID:    identity.ID,
		Username:  identity.Name,
		Detail:    detail,
	}
	if err := IndexFunc(ctx, SessionEventsIndex, event.ID, &event); err != nil {
		common.Log.Errorf("failed to index session event %s for user %s: %v", category, identity.Name, err)
	}
}
