package leadstore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyasathi_backend/internal/model"
	"vidyasathi_backend/pkg/leadstore/snapshot"
)

func validInput() CreateInput {
	return CreateInput{
		Name:       "Aarav Sharma",
		ParentName: "Rajesh Sharma",
		Phone:      "9876543210",
		Email:      "rajesh.sharma@example.com",
		Address:    "123 Main St, Delhi",
		Area:       "South Delhi",
		City:       "Delhi",
		Pincode:    "110001",
		Grade:      "8",
		Source:     "Website",
		Notes:      "Interested in the science program",
	}
}

func newTestStore(t *testing.T) (*Store, *snapshot.Memory) {
	t.Helper()
	snap := snapshot.NewMemory()
	store, err := New(snap)
	require.NoError(t, err)
	return store, snap
}

func TestCreateForcesNewStatusAndDate(t *testing.T) {
	store, _ := newTestStore(t)

	before := time.Now().UTC()
	lead, err := store.Create(validInput())
	after := time.Now().UTC()
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, model.LeadStatusNew, lead.Status)

	created, err := time.Parse(time.RFC3339, lead.Date)
	require.NoError(t, err)
	assert.False(t, created.Before(before.Truncate(time.Second)))
	assert.False(t, created.After(after.Add(time.Second)))
}

func TestCreateInsertsAtHead(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Create(validInput())
	require.NoError(t, err)

	second := validInput()
	second.Name = "Priya Patel"
	newest, err := store.Create(second)
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestCreateValidation(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"missing name", func(in *CreateInput) { in.Name = "" }, "Name"},
		{"missing parent", func(in *CreateInput) { in.ParentName = "" }, "ParentName"},
		{"missing phone", func(in *CreateInput) { in.Phone = "" }, "Phone"},
		{"non-numeric pincode", func(in *CreateInput) { in.Pincode = "11A001" }, "Pincode"},
		{"unknown source", func(in *CreateInput) { in.Source = "Billboard" }, "Source"},
		{"bad email", func(in *CreateInput) { in.Email = "not-an-email" }, "Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := store.Create(input)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	assert.Equal(t, 0, store.Count(), "rejected inputs must not mutate the collection")
}

func TestUpdatePreservesIDAndDate(t *testing.T) {
	store, _ := newTestStore(t)

	lead, err := store.Create(validInput())
	require.NoError(t, err)

	newName := "Aarav S. Sharma"
	newNotes := "Toured campus on Friday"
	updated, err := store.Update(lead.ID, UpdatePatch{Name: &newName, Notes: &newNotes})
	require.NoError(t, err)

	assert.Equal(t, lead.ID, updated.ID)
	assert.Equal(t, lead.Date, updated.Date)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newNotes, updated.Notes)
	assert.Equal(t, lead.Phone, updated.Phone, "unpatched fields stay put")
}

func TestUpdateMissingLead(t *testing.T) {
	store, _ := newTestStore(t)

	name := "Nobody"
	_, err := store.Update("missing", UpdatePatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingLeadLeavesCollectionIntact(t *testing.T) {
	store, _ := newTestStore(t)

	for _, name := range []string{"Aarav Sharma", "Priya Patel", "Arjun Singh"} {
		input := validInput()
		input.Name = name
		_, err := store.Create(input)
		require.NoError(t, err)
	}

	err := store.Delete("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, store.Count())
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)

	lead, err := store.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, store.Delete(lead.ID))
	assert.Equal(t, 0, store.Count())

	_, err = store.Get(lead.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllReturnsIsolatedSnapshot(t *testing.T) {
	store, _ := newTestStore(t)

	lead, err := store.Create(validInput())
	require.NoError(t, err)
	_, err = store.AddContact(lead.ID, ContactInput{Type: "Email", Status: "Contacted"})
	require.NoError(t, err)

	all := store.All()
	all[0].Name = "Mutated"
	all[0].ContactHistory[0].Notes = "Mutated"

	fresh, err := store.Get(lead.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Mutated", fresh.Name)
	assert.NotEqual(t, "Mutated", fresh.ContactHistory[0].Notes)
}

func TestRoundTripThroughSnapshot(t *testing.T) {
	snap := snapshot.NewMemory()
	store, err := New(snap)
	require.NoError(t, err)

	lead, err := store.Create(validInput())
	require.NoError(t, err)
	_, err = store.AddContact(lead.ID, ContactInput{Type: "Phone Call", Notes: "Spoke to parent", Status: "Contacted"})
	require.NoError(t, err)
	_, err = store.AddReminder(lead.ID, ReminderInput{Title: "Call back", Date: "2026-09-07T09:00:00Z"})
	require.NoError(t, err)

	other := validInput()
	other.Name = "Priya Patel"
	created, err := store.Create(other)
	require.NoError(t, err)
	require.NoError(t, store.Delete(created.ID))

	// A second store restored from the same snapshot sees the same collection.
	reloaded, err := New(snap)
	require.NoError(t, err)
	assert.Equal(t, store.All(), reloaded.All())
}

func TestAddContactOverwritesStatus(t *testing.T) {
	store, _ := newTestStore(t)

	lead, err := store.Create(validInput())
	require.NoError(t, err)

	entry, err := store.AddContact(lead.ID, ContactInput{Type: "Meeting", Notes: "Campus tour", Status: "Qualified"})
	require.NoError(t, err)
	assert.Equal(t, lead.ID, entry.LeadID)

	got, err := store.Get(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusQualified, got.Status)
	require.Len(t, got.ContactHistory, 1)
	assert.Equal(t, entry.ID, got.ContactHistory[0].ID)
}

func TestAddContactValidation(t *testing.T) {
	store, _ := newTestStore(t)

	lead, err := store.Create(validInput())
	require.NoError(t, err)

	_, err = store.AddContact(lead.ID, ContactInput{Type: "Carrier Pigeon", Status: "Contacted"})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = store.AddContact(lead.ID, ContactInput{Type: "Email", Status: "Maybe"})
	assert.ErrorAs(t, err, &ve)

	_, err = store.AddContact("missing", ContactInput{Type: "Email", Status: "Contacted"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusRecordsSyntheticEntry(t *testing.T) {
	store, _ := newTestStore(t)

	lead, err := store.Create(validInput())
	require.NoError(t, err)

	updated, err := store.SetStatus(lead.ID, "Enrolled")
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusEnrolled, updated.Status)

	require.Len(t, updated.ContactHistory, 1)
	entry := updated.ContactHistory[0]
	assert.Equal(t, model.ContactOther, entry.Type)
	assert.Equal(t, model.LeadStatusEnrolled, entry.Status)
	assert.Contains(t, entry.Notes, "New")
	assert.Contains(t, entry.Notes, "Enrolled")
}

func TestReminderLifecycle(t *testing.T) {
	store, _ := newTestStore(t)

	lead, err := store.Create(validInput())
	require.NoError(t, err)

	reminder, err := store.AddReminder(lead.ID, ReminderInput{
		Title:       "Send brochure",
		Description: "Science program details",
		Date:        "2026-09-05T10:00:00Z",
	})
	require.NoError(t, err)
	assert.False(t, reminder.IsCompleted)

	toggled, err := store.ToggleReminder(lead.ID, reminder.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)

	toggled, err = store.ToggleReminder(lead.ID, reminder.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsCompleted)

	require.NoError(t, store.DeleteReminder(lead.ID, reminder.ID))
	err = store.DeleteReminder(lead.ID, reminder.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// failingSnapshot accepts the first save (or not even that) and then fails,
// to exercise the persistence-error path.
type failingSnapshot struct {
	fail bool
}

func (f *failingSnapshot) Load() ([]byte, bool, error) { return nil, false, nil }

func (f *failingSnapshot) Save([]byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	snap := &failingSnapshot{}
	store, err := New(snap)
	require.NoError(t, err)

	snap.fail = true
	lead, err := store.Create(validInput())

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)

	// The collection keeps the change for the rest of the session.
	got, getErr := store.Get(lead.ID)
	require.NoError(t, getErr)
	assert.Equal(t, lead.Name, got.Name)
}

func TestImportRefusesNonEmptyCollection(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Create(validInput())
	require.NoError(t, err)

	err = store.Import([]model.Lead{{ID: "x", Name: "X"}})
	assert.Error(t, err)
	assert.Equal(t, 1, store.Count())
}
