package controller

import (
	"github.com/gofiber/fiber/v2"

	"vidyasathi_backend/pkg/leadstore"
)

func AddReminder(c *fiber.Ctx) error {
	input := new(leadstore.ReminderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	reminder, err := store.AddReminder(c.Params("id"), *input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Reminder scheduled.",
		"reminder": reminder,
	})
}

func ToggleReminder(c *fiber.Ctx) error {
	reminder, err := store.ToggleReminder(c.Params("id"), c.Params("reminder_id"))
	if err != nil {
		return respondError(c, err)
	}

	message := "Reminder marked as pending."
	if reminder.IsCompleted {
		message = "Reminder marked as completed."
	}

	return c.JSON(fiber.Map{
		"message":  message,
		"reminder": reminder,
	})
}

func DeleteReminder(c *fiber.Ctx) error {
	if err := store.DeleteReminder(c.Params("id"), c.Params("reminder_id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Reminder removed.",
	})
}
