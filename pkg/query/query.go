// Package query derives the table view of the lead collection: multi-field
// search, equality filters, single-key stable sort and fixed-size pagination.
// It is a pure function of the collection and the view state; nothing here
// mutates the input.
package query

import (
	"sort"
	"strings"

	"vidyasathi_backend/internal/model"
)

// DefaultPageSize matches the reference table behavior.
const DefaultPageSize = 10

// FilterAll is the sentinel meaning "no constraint" for a filter.
const FilterAll = "all"

// SortDir is the sort direction.
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// Params is the full view state of the lead table.
type Params struct {
	Search   string
	Status   string
	Source   string
	Area     string
	Grade    string
	SortKey  string
	SortDir  SortDir
	Page     int
	PageSize int
}

// Result is one rendered page plus the figures the table chrome needs.
type Result struct {
	Leads      []model.Lead `json:"leads"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

// Run filters, sorts and paginates leads according to p. The input slice is
// not modified; ties keep their relative collection order across renders.
func Run(leads []model.Lead, p Params) Result {
	filtered := Filter(leads, p)
	Sort(filtered, p.SortKey, p.SortDir)
	return Paginate(filtered, p.Page, p.PageSize)
}

// Filter applies the search term and the equality filters. All active
// constraints combine with AND; the search term matches when ANY of
// name, parent name, email (case-insensitive) or phone (raw) contains it.
func Filter(leads []model.Lead, p Params) []model.Lead {
	term := strings.ToLower(p.Search)

	out := make([]model.Lead, 0, len(leads))
	for _, lead := range leads {
		if p.Search != "" && !matchesSearch(lead, p.Search, term) {
			continue
		}
		if !filterMatches(p.Status, string(lead.Status)) {
			continue
		}
		if !filterMatches(p.Source, string(lead.Source)) {
			continue
		}
		if !filterMatches(p.Area, lead.Area) {
			continue
		}
		if !filterMatches(p.Grade, lead.Grade) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

func matchesSearch(lead model.Lead, raw, term string) bool {
	return strings.Contains(strings.ToLower(lead.Name), term) ||
		strings.Contains(strings.ToLower(lead.ParentName), term) ||
		strings.Contains(strings.ToLower(lead.Email), term) ||
		strings.Contains(lead.Phone, raw)
}

func filterMatches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Sort orders leads in place by a single key. The comparison is the natural
// string ordering of the field, which is also chronological for the RFC 3339
// date field. The sort is stable so equal keys keep their original order.
func Sort(leads []model.Lead, key string, dir SortDir) {
	if key == "" {
		return
	}
	sort.SliceStable(leads, func(i, j int) bool {
		a, b := fieldValue(leads[i], key), fieldValue(leads[j], key)
		if dir == Desc {
			return a > b
		}
		return a < b
	})
}

// NextSort implements the header-click rule: same key toggles direction,
// a new key resets to ascending.
func NextSort(curKey string, curDir SortDir, clicked string) (string, SortDir) {
	if curKey == clicked && curDir == Asc {
		return clicked, Desc
	}
	return clicked, Asc
}

func fieldValue(lead model.Lead, key string) string {
	switch key {
	case "name":
		return lead.Name
	case "parentName":
		return lead.ParentName
	case "phone":
		return lead.Phone
	case "email":
		return lead.Email
	case "address":
		return lead.Address
	case "area":
		return lead.Area
	case "city":
		return lead.City
	case "pincode":
		return lead.Pincode
	case "grade":
		return lead.Grade
	case "status":
		return string(lead.Status)
	case "source":
		return string(lead.Source)
	case "notes":
		return lead.Notes
	case "date":
		return lead.Date
	default:
		return ""
	}
}

// Paginate slices out one page. Page numbers are clamped to [1, TotalPages];
// an empty result still reports one (empty) page.
func Paginate(leads []model.Lead, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(leads)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Leads:      leads[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
