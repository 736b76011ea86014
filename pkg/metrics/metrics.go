// Package metrics computes the dashboard figures from the full lead
// collection. It always works on the whole collection, never the filtered
// table view, and is recomputed on every request.
package metrics

import (
	"math"
	"sort"
	"time"

	"vidyasathi_backend/internal/model"
)

// Bucket is one named count in a grouping. Groupings over free-form fields
// (source, area, month) keep first-encountered collection order, which is
// also the documented tie-break for the "top" figures.
type Bucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Overview backs the metric cards above the lead table.
type Overview struct {
	TotalLeads     int            `json:"total_leads"`
	NewThisWeek    int            `json:"new_this_week"`
	EnrolledLeads  int            `json:"enrolled_leads"`
	ConversionRate int            `json:"conversion_rate"`
	TopSource      string         `json:"top_source"`
	ByStatus       map[string]int `json:"by_status"`
}

// Analytics backs the chart dashboard.
type Analytics struct {
	TotalLeads       int      `json:"total_leads"`
	TotalEnrolled    int      `json:"total_enrolled"`
	ConversionRate   int      `json:"conversion_rate"`
	TopLocation      string   `json:"top_location"`
	MostPopularGrade string   `json:"most_popular_grade"`
	ByMonth          []Bucket `json:"by_month"`
	BySource         []Bucket `json:"by_source"`
	ByStatus         []Bucket `json:"by_status"`
	ByGrade          []Bucket `json:"by_grade"`
}

// ComputeOverview derives the card figures. now anchors the trailing 7-day
// window for NewThisWeek; the window is live, never memoized.
func ComputeOverview(leads []model.Lead, now time.Time) Overview {
	o := Overview{
		TotalLeads: len(leads),
		ByStatus:   make(map[string]int, 5),
	}
	// All five buckets are always present, zero or not.
	for _, st := range model.AllStatuses() {
		o.ByStatus[string(st)] = 0
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, lead := range leads {
		o.ByStatus[string(lead.Status)]++
		if t, err := time.Parse(time.RFC3339, lead.Date); err == nil && !t.Before(weekAgo) {
			o.NewThisWeek++
		}
	}

	o.EnrolledLeads = o.ByStatus[string(model.LeadStatusEnrolled)]
	o.ConversionRate = rate(o.EnrolledLeads, o.TotalLeads)
	o.TopSource = topBucket(groupBy(leads, func(l model.Lead) string { return string(l.Source) }))
	return o
}

// ComputeAnalytics derives the chart groupings.
func ComputeAnalytics(leads []model.Lead) Analytics {
	a := Analytics{TotalLeads: len(leads)}

	for _, lead := range leads {
		if lead.Status == model.LeadStatusEnrolled {
			a.TotalEnrolled++
		}
	}
	a.ConversionRate = rate(a.TotalEnrolled, a.TotalLeads)

	a.ByMonth = groupBy(leads, monthName)
	a.BySource = groupBy(leads, func(l model.Lead) string { return string(l.Source) })
	a.ByGrade = groupBy(leads, func(l model.Lead) string { return l.Grade })
	sort.SliceStable(a.ByGrade, func(i, j int) bool {
		return model.GradeRank(a.ByGrade[i].Name) < model.GradeRank(a.ByGrade[j].Name)
	})

	// Status buckets come in pipeline order with all five present.
	counts := make(map[model.LeadStatus]int, 5)
	for _, lead := range leads {
		counts[lead.Status]++
	}
	for _, st := range model.AllStatuses() {
		a.ByStatus = append(a.ByStatus, Bucket{Name: string(st), Count: counts[st]})
	}

	a.TopLocation = topBucket(groupBy(leads, func(l model.Lead) string { return l.Area }))
	a.MostPopularGrade = topBucket(a.ByGrade)
	return a
}

// rate is round(part/total*100), defined as 0 on an empty collection.
func rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// monthName buckets by short calendar month only. Leads from the same month
// of different years land in the same bucket; that matches the dashboard this
// replaces and is flagged as an open question in DESIGN.md.
func monthName(l model.Lead) string {
	t, err := time.Parse(time.RFC3339, l.Date)
	if err != nil {
		return ""
	}
	return t.Format("Jan")
}

// groupBy counts leads per key in first-encountered order. Leads whose key
// maps to "" (e.g. an unparseable date) are skipped.
func groupBy(leads []model.Lead, key func(model.Lead) string) []Bucket {
	index := make(map[string]int)
	var out []Bucket
	for _, lead := range leads {
		k := key(lead)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, Bucket{Name: k, Count: 1})
	}
	return out
}

// topBucket returns the name with the highest count. Ties keep the earlier
// bucket, so first-encountered order wins.
func topBucket(buckets []Bucket) string {
	top, topCount := "", 0
	for _, b := range buckets {
		if b.Count > topCount {
			top, topCount = b.Name, b.Count
		}
	}
	return top
}
