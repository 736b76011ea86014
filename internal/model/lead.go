package model

// LeadStatus is the pipeline stage of a lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusEnrolled  LeadStatus = "Enrolled"
	LeadStatusClosed    LeadStatus = "Closed"
)

// AllStatuses in pipeline order. Metrics reports all five buckets even when empty.
func AllStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusEnrolled,
		LeadStatusClosed,
	}
}

// IsValidStatus reports whether s is one of the five pipeline stages.
func IsValidStatus(s string) bool {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusEnrolled, LeadStatusClosed:
		return true
	}
	return false
}

// LeadSource is the acquisition channel of a lead.
type LeadSource string

const (
	SourceWebsite       LeadSource = "Website"
	SourceWalkIn        LeadSource = "WalkIn"
	SourceReferral      LeadSource = "Referral"
	SourceSocialMedia   LeadSource = "SocialMedia"
	SourceAdvertisement LeadSource = "Advertisement"
	SourceExhibition    LeadSource = "Exhibition"
	SourceOther         LeadSource = "Other"
)

// ContactType is how a lead was contacted.
type ContactType string

const (
	ContactPhoneCall ContactType = "Phone Call"
	ContactEmail     ContactType = "Email"
	ContactMeeting   ContactType = "Meeting"
	ContactWhatsApp  ContactType = "WhatsApp"
	ContactOther     ContactType = "Other"
)

// Lead is one prospective-student inquiry. Dates are RFC 3339 strings so the
// snapshot stays flat and lexicographic order matches chronological order.
type Lead struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	ParentName     string                `json:"parentName"`
	Phone          string                `json:"phone"`
	Email          string                `json:"email"`
	Address        string                `json:"address"`
	Area           string                `json:"area"`
	City           string                `json:"city"`
	Pincode        string                `json:"pincode"`
	Grade          string                `json:"grade"`
	Status         LeadStatus            `json:"status"`
	Source         LeadSource            `json:"source"`
	Notes          string                `json:"notes"`
	Date           string                `json:"date"`
	ContactHistory []ContactHistoryEntry `json:"contactHistory,omitempty"`
	Reminders      []Reminder            `json:"reminders,omitempty"`
}

// ContactHistoryEntry is one logged interaction with a lead. Entries are
// append-only; they are never edited or deleted.
type ContactHistoryEntry struct {
	ID     string      `json:"id"`
	LeadID string      `json:"leadId"`
	Type   ContactType `json:"type"`
	Notes  string      `json:"notes"`
	Status LeadStatus  `json:"status"`
	Date   string      `json:"date"`
}

// Reminder is one scheduled follow-up task for a lead.
type Reminder struct {
	ID          string `json:"id"`
	LeadID      string `json:"leadId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"isCompleted"`
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the canonical slices.
func (l Lead) Clone() Lead {
	c := l
	if l.ContactHistory != nil {
		c.ContactHistory = make([]ContactHistoryEntry, len(l.ContactHistory))
		copy(c.ContactHistory, l.ContactHistory)
	}
	if l.Reminders != nil {
		c.Reminders = make([]Reminder, len(l.Reminders))
		copy(c.Reminders, l.Reminders)
	}
	return c
}

// CloneLeads deep-copies a whole collection.
func CloneLeads(leads []Lead) []Lead {
	out := make([]Lead, len(leads))
	for i, l := range leads {
		out[i] = l.Clone()
	}
	return out
}

// gradeRank places the pre-primary labels before the numeric classes.
// Unknown labels sort after Class 12 so they stay visible at the end.
var gradeRank = map[string]int{
	"Nursery": 0,
	"LKG":     1,
	"UKG":     2,
	"1":       3, "2": 4, "3": 5, "4": 6, "5": 7, "6": 8,
	"7": 9, "8": 10, "9": 11, "10": 12, "11": 13, "12": 14,
}

// GradeRank returns the total order used when sorting grade groupings.
func GradeRank(grade string) int {
	if r, ok := gradeRank[grade]; ok {
		return r
	}
	return len(gradeRank)
}
