package invite

import (
	"time"

	"github.com/BruksfildServices01/letsorder/internal/models"
)

const DefaultTTL = 7 * 24 * time.Hour

// Usable reports whether inv can still be redeemed at now.
// Expired invites stay in storage but are never usable.
func Usable(inv *models.ManagerInvite, now time.Time) bool {
	return inv != nil && inv.ExpiresAt.After(now)
}
