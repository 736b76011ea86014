package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyasathi_backend/internal/model"
)

func entry(id string, status model.LeadStatus) model.ContactHistoryEntry {
	return model.ContactHistoryEntry{
		ID:     id,
		LeadID: "lead-1",
		Type:   model.ContactPhoneCall,
		Status: status,
		Date:   "2026-08-30T10:00:00Z",
	}
}

func TestApplyContactOverwritesUnconditionally(t *testing.T) {
	// Every (from, to) pair is legal, backward moves included.
	for _, from := range model.AllStatuses() {
		for _, to := range model.AllStatuses() {
			lead := model.Lead{ID: "lead-1", Status: from}
			ApplyContact(&lead, entry("e1", to))
			assert.Equal(t, to, lead.Status, "%s -> %s", from, to)
		}
	}
}

func TestApplyContactBackwardFromEnrolled(t *testing.T) {
	lead := model.Lead{ID: "lead-1", Status: model.LeadStatusEnrolled}
	ApplyContact(&lead, entry("e1", model.LeadStatusContacted))
	assert.Equal(t, model.LeadStatusContacted, lead.Status)
}

func TestApplyContactPrependsHistory(t *testing.T) {
	lead := model.Lead{ID: "lead-1", Status: model.LeadStatusNew}

	ApplyContact(&lead, entry("e1", model.LeadStatusContacted))
	ApplyContact(&lead, entry("e2", model.LeadStatusQualified))

	require.Len(t, lead.ContactHistory, 2)
	assert.Equal(t, "e2", lead.ContactHistory[0].ID, "newest entry first")
	assert.Equal(t, "e1", lead.ContactHistory[1].ID)
}

func TestApplyQuickAction(t *testing.T) {
	lead := model.Lead{ID: "lead-1", Status: model.LeadStatusQualified}

	got := ApplyQuickAction(&lead, model.LeadStatusEnrolled, "e1", "2026-08-30T10:00:00Z")

	assert.Equal(t, model.LeadStatusEnrolled, lead.Status)
	require.Len(t, lead.ContactHistory, 1)
	assert.Equal(t, got, lead.ContactHistory[0])
	assert.Equal(t, model.ContactOther, got.Type)
	assert.Equal(t, "lead-1", got.LeadID)
	assert.Equal(t, QuickActionNote(model.LeadStatusQualified, model.LeadStatusEnrolled), got.Notes)
}
