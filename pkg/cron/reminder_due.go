package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"vidyasathi_backend/pkg/leadstore"
)

// InitReminderCron schedules the daily 09:00 sweep that logs leads with
// follow-up reminders due today or overdue, so the office sees them before
// calls start.
func InitReminderCron(store *leadstore.Store) {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		checkDueReminders(store)
	})

	if err != nil {
		log.Printf("Could not initialize reminder cron: %v", err)
		return
	}

	c.Start()
}

func checkDueReminders(store *leadstore.Store) {
	log.Println("Checking for due follow-up reminders...")

	today := time.Now().Format("2006-01-02")
	due := 0

	for _, lead := range store.All() {
		for _, reminder := range lead.Reminders {
			if reminder.IsCompleted {
				continue
			}
			// Due dates are RFC 3339, so the date prefix compares correctly.
			if reminder.Date[:min(10, len(reminder.Date))] <= today {
				due++
				log.Printf("Reminder due: %q for %s (parent %s, phone %s), due %s",
					reminder.Title, lead.Name, lead.ParentName, lead.Phone, reminder.Date)
			}
		}
	}

	log.Printf("Found %d due reminders", due)
}
