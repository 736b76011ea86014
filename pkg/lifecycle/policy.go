package lifecycle

import (
	"fmt"

	"vidyasathi_backend/internal/model"
)

// The pipeline imposes no transition graph: the status chosen when a contact
// is recorded always overwrites the current one, backward moves included
// (an enrolled lead can drop back to Contacted). Deliberate looseness, kept.

// ApplyContact records entry against lead and moves the lead to the entry's
// status. Entries are kept newest first.
func ApplyContact(lead *model.Lead, entry model.ContactHistoryEntry) {
	lead.ContactHistory = append([]model.ContactHistoryEntry{entry}, lead.ContactHistory...)
	lead.Status = entry.Status
}

// ApplyQuickAction moves lead straight to target and logs a synthetic "Other"
// contact entry describing the change, so quick actions stay visible in the
// contact history like any other status change.
func ApplyQuickAction(lead *model.Lead, target model.LeadStatus, entryID, date string) model.ContactHistoryEntry {
	entry := model.ContactHistoryEntry{
		ID:     entryID,
		LeadID: lead.ID,
		Type:   model.ContactOther,
		Notes:  QuickActionNote(lead.Status, target),
		Status: target,
		Date:   date,
	}
	ApplyContact(lead, entry)
	return entry
}

// QuickActionNote is the note attached to a synthetic quick-action entry.
func QuickActionNote(from, to model.LeadStatus) string {
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}
