package leadstore

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyasathi_backend/internal/model"
	"vidyasathi_backend/pkg/leadstore/snapshot"
	"vidyasathi_backend/pkg/lifecycle"
)

// Store is the single owner of the lead collection. Every mutation happens
// under one mutex and rewrites the whole collection to the snapshot port,
// mirroring the read-modify-replace model of the persisted blob. When the
// snapshot write fails the in-memory collection keeps the change and the
// mutation returns a *PersistenceError alongside the updated record.
type Store struct {
	mu    sync.Mutex
	leads []model.Lead
	snap  snapshot.Store
	now   func() time.Time
}

var validate = validator.New()

// CreateInput is the form contract for a new lead. Status and creation date
// are never accepted from the caller; Create forces them.
type CreateInput struct {
	Name       string `json:"name" validate:"required"`
	ParentName string `json:"parentName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address" validate:"required"`
	Area       string `json:"area" validate:"required"`
	City       string `json:"city" validate:"required"`
	Pincode    string `json:"pincode" validate:"required,numeric"`
	Grade      string `json:"grade" validate:"required"`
	Source     string `json:"source" validate:"required,oneof=Website WalkIn Referral SocialMedia Advertisement Exhibition Other"`
	Notes      string `json:"notes"`
}

// UpdatePatch carries the editable lead fields. Nil fields are left alone;
// id and creation date are never touched by an update.
type UpdatePatch struct {
	Name       *string `json:"name"`
	ParentName *string `json:"parentName"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	Area       *string `json:"area"`
	City       *string `json:"city"`
	Pincode    *string `json:"pincode"`
	Grade      *string `json:"grade"`
	Source     *string `json:"source"`
	Notes      *string `json:"notes"`
}

// ContactInput is the form contract for recording an interaction.
type ContactInput struct {
	Type   string `json:"type" validate:"required,oneof='Phone Call' Email Meeting WhatsApp Other"`
	Notes  string `json:"notes"`
	Status string `json:"status" validate:"required,oneof=New Contacted Qualified Enrolled Closed"`
}

// ReminderInput is the form contract for scheduling a follow-up.
type ReminderInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the creation-time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New restores the collection from snap and returns a ready store. A missing
// snapshot starts the collection empty; a corrupt one is an error rather than
// a silent wipe.
func New(snap snapshot.Store, opts ...Option) (*Store, error) {
	s := &Store{snap: snap, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := snap.Load()
	if err != nil {
		return nil, fmt.Errorf("could not restore leads: %w", err)
	}
	if ok {
		if err := json.Unmarshal(data, &s.leads); err != nil {
			return nil, fmt.Errorf("corrupt leads snapshot: %w", err)
		}
	}
	return s, nil
}

// Create validates input, assigns a fresh id, forces status New and the
// current time, and inserts the lead at the head of the collection.
func (s *Store) Create(input CreateInput) (model.Lead, error) {
	if err := checkInput(input); err != nil {
		return model.Lead{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead := model.Lead{
		ID:         uuid.New().String(),
		Name:       input.Name,
		ParentName: input.ParentName,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		Area:       input.Area,
		City:       input.City,
		Pincode:    input.Pincode,
		Grade:      input.Grade,
		Status:     model.LeadStatusNew,
		Source:     model.LeadSource(input.Source),
		Notes:      input.Notes,
		Date:       s.now().UTC().Format(time.RFC3339),
	}

	s.leads = append([]model.Lead{lead}, s.leads...)
	return lead.Clone(), s.persist()
}

// Update merges patch into the lead with the given id.
func (s *Store) Update(id string, patch UpdatePatch) (model.Lead, error) {
	if patch.Pincode != nil {
		if err := validate.Var(*patch.Pincode, "required,numeric"); err != nil {
			return model.Lead{}, &ValidationError{Field: "pincode", Reason: "must be numeric"}
		}
	}
	if patch.Source != nil && !validSource(*patch.Source) {
		return model.Lead{}, &ValidationError{Field: "source", Reason: "unknown lead source"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Lead{}, ErrNotFound
	}

	lead := &s.leads[i]
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&lead.Name, patch.Name)
	apply(&lead.ParentName, patch.ParentName)
	apply(&lead.Phone, patch.Phone)
	apply(&lead.Email, patch.Email)
	apply(&lead.Address, patch.Address)
	apply(&lead.Area, patch.Area)
	apply(&lead.City, patch.City)
	apply(&lead.Pincode, patch.Pincode)
	apply(&lead.Grade, patch.Grade)
	apply(&lead.Notes, patch.Notes)
	if patch.Source != nil {
		lead.Source = model.LeadSource(*patch.Source)
	}

	return lead.Clone(), s.persist()
}

// Delete removes the lead with the given id. A missing id is ErrNotFound,
// not a silent no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.leads = append(s.leads[:i], s.leads[i+1:]...)
	return s.persist()
}

// Get returns a copy of one lead.
func (s *Store) Get(id string) (model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Lead{}, ErrNotFound
	}
	return s.leads[i].Clone(), nil
}

// All returns a deep copy of the collection in its stored (newest-first)
// order. Callers never see the canonical slice.
func (s *Store) All() []model.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneLeads(s.leads)
}

// Count returns the collection size without copying.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}

// AddContact records an interaction against a lead. The status chosen on the
// contact form overwrites the lead's status unconditionally.
func (s *Store) AddContact(leadID string, input ContactInput) (model.ContactHistoryEntry, error) {
	if err := checkInput(input); err != nil {
		return model.ContactHistoryEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(leadID)
	if i < 0 {
		return model.ContactHistoryEntry{}, ErrNotFound
	}

	entry := model.ContactHistoryEntry{
		ID:     uuid.New().String(),
		LeadID: leadID,
		Type:   model.ContactType(input.Type),
		Notes:  input.Notes,
		Status: model.LeadStatus(input.Status),
		Date:   s.now().UTC().Format(time.RFC3339),
	}
	lifecycle.ApplyContact(&s.leads[i], entry)

	return entry, s.persist()
}

// SetStatus is the quick action: it moves the lead straight to target and
// logs a synthetic contact entry for the change.
func (s *Store) SetStatus(leadID string, target string) (model.Lead, error) {
	if !model.IsValidStatus(target) {
		return model.Lead{}, &ValidationError{Field: "status", Reason: "unknown status"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(leadID)
	if i < 0 {
		return model.Lead{}, ErrNotFound
	}

	lifecycle.ApplyQuickAction(&s.leads[i], model.LeadStatus(target),
		uuid.New().String(), s.now().UTC().Format(time.RFC3339))

	return s.leads[i].Clone(), s.persist()
}

// AddReminder schedules a follow-up task for a lead.
func (s *Store) AddReminder(leadID string, input ReminderInput) (model.Reminder, error) {
	if err := checkInput(input); err != nil {
		return model.Reminder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(leadID)
	if i < 0 {
		return model.Reminder{}, ErrNotFound
	}

	reminder := model.Reminder{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
	}
	s.leads[i].Reminders = append(s.leads[i].Reminders, reminder)

	return reminder, s.persist()
}

// ToggleReminder flips the completion flag of one reminder.
func (s *Store) ToggleReminder(leadID, reminderID string) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(leadID)
	if i < 0 {
		return model.Reminder{}, ErrNotFound
	}
	for j := range s.leads[i].Reminders {
		if s.leads[i].Reminders[j].ID == reminderID {
			s.leads[i].Reminders[j].IsCompleted = !s.leads[i].Reminders[j].IsCompleted
			return s.leads[i].Reminders[j], s.persist()
		}
	}
	return model.Reminder{}, ErrNotFound
}

// DeleteReminder removes one reminder from a lead.
func (s *Store) DeleteReminder(leadID, reminderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(leadID)
	if i < 0 {
		return ErrNotFound
	}
	reminders := s.leads[i].Reminders
	for j := range reminders {
		if reminders[j].ID == reminderID {
			s.leads[i].Reminders = append(reminders[:j], reminders[j+1:]...)
			return s.persist()
		}
	}
	return ErrNotFound
}

// Import replaces an empty collection with the given leads. Used by the demo
// seed; it refuses to clobber an existing collection.
func (s *Store) Import(leads []model.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.leads) > 0 {
		return fmt.Errorf("collection is not empty")
	}
	s.leads = model.CloneLeads(leads)
	return s.persist()
}

// index must be called with the lock held.
func (s *Store) index(id string) int {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return i
		}
	}
	return -1
}

// persist rewrites the whole collection through the snapshot port. Must be
// called with the lock held.
func (s *Store) persist() error {
	data, err := json.Marshal(s.leads)
	if err != nil {
		return &PersistenceError{Err: err}
	}
	if err := s.snap.Save(data); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func checkInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return &ValidationError{Field: fe.Field(), Reason: reasonFor(fe)}
	}
	return &ValidationError{Field: "input", Reason: err.Error()}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "numeric":
		return "must be numeric"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func validSource(s string) bool {
	switch model.LeadSource(s) {
	case model.SourceWebsite, model.SourceWalkIn, model.SourceReferral,
		model.SourceSocialMedia, model.SourceAdvertisement, model.SourceExhibition, model.SourceOther:
		return true
	}
	return false
}
