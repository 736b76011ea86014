package seed

import (
	"log"

	"vidyasathi_backend/internal/model"
)

// DemoLeads is the sample dataset loaded into an empty store so a fresh
// install has something on the dashboard.
func DemoLeads() []model.Lead {
	return []model.Lead{
		{
			ID:         "1",
			Name:       "Aarav Sharma",
			ParentName: "Rajesh Sharma",
			Phone:      "9876543210",
			Email:      "rajesh.sharma@example.com",
			Grade:      "8",
			Date:       "2023-03-15T10:30:00Z",
			Status:     model.LeadStatusNew,
			Source:     model.SourceWebsite,
			Address:    "123 Main St, Delhi",
			Area:       "South Delhi",
			City:       "Delhi",
			Pincode:    "110001",
			Notes:      "Interested in school's science program",
		},
		{
			ID:         "2",
			Name:       "Priya Patel",
			ParentName: "Amit Patel",
			Phone:      "8765432109",
			Email:      "amit.patel@example.com",
			Grade:      "5",
			Date:       "2023-03-10T14:45:00Z",
			Status:     model.LeadStatusContacted,
			Source:     model.SourceReferral,
			Address:    "456 Oak St, Mumbai",
			Area:       "Andheri",
			City:       "Mumbai",
			Pincode:    "400053",
			Notes:      "Wants to know about extracurricular activities",
		},
		{
			ID:         "3",
			Name:       "Arjun Singh",
			ParentName: "Gurmeet Singh",
			Phone:      "7654321098",
			Email:      "gurmeet.singh@example.com",
			Grade:      "10",
			Date:       "2023-03-05T09:15:00Z",
			Status:     model.LeadStatusQualified,
			Source:     model.SourceExhibition,
			Address:    "789 Pine St, Chandigarh",
			Area:       "Sector 17",
			City:       "Chandigarh",
			Pincode:    "160017",
			Notes:      "Looking for strong academic program",
		},
		{
			ID:         "4",
			Name:       "Ananya Reddy",
			ParentName: "Vikram Reddy",
			Phone:      "6543210987",
			Email:      "vikram.reddy@example.com",
			Grade:      "1",
			Date:       "2023-03-01T11:00:00Z",
			Status:     model.LeadStatusEnrolled,
			Source:     model.SourceWalkIn,
			Address:    "101 Elm St, Hyderabad",
			Area:       "Banjara Hills",
			City:       "Hyderabad",
			Pincode:    "500034",
			Notes:      "Starting in the new semester",
		},
		{
			ID:         "5",
			Name:       "Rohit Kapoor",
			ParentName: "Neha Kapoor",
			Phone:      "5432109876",
			Email:      "neha.kapoor@example.com",
			Grade:      "3",
			Date:       "2023-02-25T13:30:00Z",
			Status:     model.LeadStatusClosed,
			Source:     model.SourceAdvertisement,
			Address:    "202 Cedar St, Bangalore",
			Area:       "Koramangala",
			City:       "Bangalore",
			Pincode:    "560034",
			Notes:      "Decided to go with another school",
		},
	}
}

// Seeder is the subset of the lead store the seed step needs.
type Seeder interface {
	Count() int
	Import(leads []model.Lead) error
}

// SeedDemoLeads loads the demo dataset when the store is empty.
func SeedDemoLeads(store Seeder) {
	if store.Count() > 0 {
		return
	}
	if err := store.Import(DemoLeads()); err != nil {
		log.Printf("Error seeding demo leads: %v", err)
		return
	}
	log.Println("Demo leads seeded successfully!")
}
