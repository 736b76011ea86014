package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"vidyasathi_backend/pkg/metrics"
)

// GetDashboardStats returns the metric cards shown above the lead table.
// Figures are recomputed from the full collection on every request; the
// "new this week" window is anchored at request time.
func GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(metrics.ComputeOverview(store.All(), time.Now()))
}

// GetAnalytics returns the chart groupings for the analytics page.
func GetAnalytics(c *fiber.Ctx) error {
	return c.JSON(metrics.ComputeAnalytics(store.All()))
}
