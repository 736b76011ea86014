package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"vidyasathi_backend/pkg/query"
	"vidyasathi_backend/pkg/utils/export"
)

// ExportLeads downloads the currently filtered and sorted view as CSV.
// It takes the same query params as ListLeads but ignores pagination:
// an export always covers the whole filtered view.
func ExportLeads(c *fiber.Ctx) error {
	params := query.Params{
		Search:  c.Query("search"),
		Status:  c.Query("status", query.FilterAll),
		Source:  c.Query("source", query.FilterAll),
		Area:    c.Query("area", query.FilterAll),
		Grade:   c.Query("grade", query.FilterAll),
		SortKey: c.Query("sort"),
		SortDir: query.SortDir(c.Query("dir", string(query.Asc))),
	}

	view := query.Filter(store.All(), params)
	query.Sort(view, params.SortKey, params.SortDir)

	data, err := export.LeadsCSV(view)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not export leads",
		})
	}

	filename := export.Filename("student leads", time.Now())
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
