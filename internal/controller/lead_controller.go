package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vidyasathi_backend/pkg/leadstore"
	"vidyasathi_backend/pkg/query"
)

var store *leadstore.Store

func InitLeadController(s *leadstore.Store) {
	store = s
}

// respondError maps the store error taxonomy onto HTTP statuses. Persistence
// failures keep the in-memory change, so they come back as 503 with a retry
// hint rather than pretending the mutation never happened.
func respondError(c *fiber.Ctx, err error) error {
	var ve *leadstore.ValidationError
	var pe *leadstore.PersistenceError

	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Error(),
			"field": ve.Field,
		})
	case errors.Is(err, leadstore.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	case errors.As(err, &pe):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Changes were applied but could not be saved. Please retry the action.",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

func CreateLead(c *fiber.Ctx) error {
	input := new(leadstore.CreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	lead, err := store.Create(*input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%s's information has been saved.", lead.Name),
		"lead":    lead,
	})
}

// ListLeads renders one page of the lead table. Query params carry the full
// view state: search, status/source/area/grade filters ("all" or empty means
// no constraint), sort key and direction, page number.
func ListLeads(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	params := query.Params{
		Search:  c.Query("search"),
		Status:  c.Query("status", query.FilterAll),
		Source:  c.Query("source", query.FilterAll),
		Area:    c.Query("area", query.FilterAll),
		Grade:   c.Query("grade", query.FilterAll),
		SortKey: c.Query("sort"),
		SortDir: query.SortDir(c.Query("dir", string(query.Asc))),
		Page:    page,
	}

	return c.JSON(query.Run(store.All(), params))
}

func GetLead(c *fiber.Ctx) error {
	lead, err := store.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}

func UpdateLead(c *fiber.Ctx) error {
	patch := new(leadstore.UpdatePatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	lead, err := store.Update(c.Params("id"), *patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s's information has been updated.", lead.Name),
		"lead":    lead,
	})
}

func DeleteLead(c *fiber.Ctx) error {
	id := c.Params("id")

	lead, err := store.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	if err := store.Delete(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s's information has been removed.", lead.Name),
	})
}

// UpdateLeadStatus is the quick action ("Mark as Enrolled" etc.): it moves
// the lead straight to the requested status and records a synthetic contact
// entry for the change. Any status may move to any other.
func UpdateLeadStatus(c *fiber.Ctx) error {
	input := struct {
		Status string `json:"status"`
	}{}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	lead, err := store.SetStatus(c.Params("id"), input.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%s is now %s.", lead.Name, lead.Status),
		"lead":    lead,
	})
}

// AddContactEntry logs an interaction with the lead. The status picked on
// the contact form becomes the lead's status.
func AddContactEntry(c *fiber.Ctx) error {
	input := new(leadstore.ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	entry, err := store.AddContact(c.Params("id"), *input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Contact recorded and status updated.",
		"entry":   entry,
	})
}
