package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

// Status workflow. These helpers are the only writers of contactedAt,
// lastActivityAt and status-change note text.

const noteTimestampLayout = "1/2/2006, 3:04:05 PM"

func touchActivity(lead *entity.Lead, now time.Time) {
	lead.LastActivityAt = &now
	lead.UpdatedAt = now
}

// applyStatus moves the lead to the new status. contactedAt is stamped on
// the transition into "contacted"; staying at "contacted" leaves it alone.
func applyStatus(lead *entity.Lead, status entity.LeadStatus, now time.Time) {
	if status == entity.StatusContacted && lead.Status != entity.StatusContacted {
		lead.ContactedAt = &now
	}
	lead.Status = status
}

// applyStatusChange is applyStatus plus the note-history side effect: a
// non-blank note appends a timestamped line to the lead's notes, separated
// from prior notes by a blank line.
func applyStatusChange(lead *entity.Lead, status entity.LeadStatus, note string, now time.Time) {
	applyStatus(lead, status, now)

	if strings.TrimSpace(note) != "" {
		line := fmt.Sprintf("[%s] Status changed to %q: %s",
			now.Format(noteTimestampLayout), status.Human(), note)
		if lead.Notes != "" {
			lead.Notes = lead.Notes + "\n\n" + line
		} else {
			lead.Notes = line
		}
	}

	touchActivity(lead, now)
}

// ensureCategory substitutes a placeholder when the referenced category was
// deleted after the lead was written.
func ensureCategory(lead *entity.Lead) {
	if lead.Category == nil && lead.CategoryID != "" {
		lead.Category = entity.UnknownCategory(lead.CategoryID)
	}
}

func publishInvalidation(ctx context.Context, publisher EventPublisherInterface, entityName, id, action string) {
	if publisher == nil {
		return
	}
	payload := queue.InvalidationPayload{Entity: entityName, EntityID: id, Action: action}
	if err := publisher.PublishInvalidation(ctx, payload); err != nil {
		log.Printf("failed to publish %s invalidation: %v", entityName, err)
	}
}
