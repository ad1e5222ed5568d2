// Package mockdata generates the sample influencers and activity logs the
// dashboard starts with.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/hirecentive/dashboard/models"
)

var (
	influencerNames = []string{
		"Alex Johnson", "Sarah Chen", "Michael Smith", "Emma Wilson", "David Kim",
		"Lisa Anderson", "James Lee", "Maria Garcia", "John Taylor", "Sophie Brown",
	}
	locations = []string{
		"New York, USA", "Los Angeles, USA", "London, UK", "Toronto, Canada",
		"Sydney, Australia", "Tokyo, Japan", "Paris, France", "Berlin, Germany",
	}

	logActions = []string{
		"Influencer Status Updated", "Resource Added", "Login Attempt", "Settings Updated",
		"Profile Modified", "Resource Downloaded", "User Invited", "Permission Changed",
		"Comment Added", "Report Generated",
	}
	logDetails = []string{
		"Changed status of @alextech to inactive",
		`Added new video resource: "Marketing Basics"`,
		"Failed login attempt from unknown IP",
		"Updated email notification settings",
		"Modified user profile settings",
		`Downloaded resource "Content Creation Guide"`,
		"Invited new team member",
		"Changed user role permissions",
		"Added comment on resource",
		"Generated monthly activity report",
	}
	logUsers = []string{"Admin", "ModeratorJohn", "SuperAdmin", "ContentManager", "SupportStaff"}
)

// Generator produces mock records from a seeded source
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator that yields the same records for the same seed
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

// Influencers generates n influencers numbered from 1. IDs are left empty for
// the store to assign.
func (g *Generator) Influencers(n int) []models.Influencer {
	influencers := make([]models.Influencer, 0, n)
	for i := 1; i <= n; i++ {
		categories := make([]string, g.rng.IntN(3)+1)
		for c := range categories {
			categories[c] = pick(g.rng, models.InfluencerCategories)
		}

		status := models.StatusActive
		if g.rng.Float64() <= 0.2 {
			status = models.StatusInactive
		}

		influencers = append(influencers, models.Influencer{
			Name:       pick(g.rng, influencerNames),
			Email:      fmt.Sprintf("influencer%d@example.com", i),
			Phone:      fmt.Sprintf("+1 %d %d %d", g.rng.IntN(900)+100, g.rng.IntN(900)+100, g.rng.IntN(9000)+1000),
			Platform:   pick(g.rng, models.Platforms),
			Handle:     fmt.Sprintf("@influencer%d", i),
			Followers:  g.rng.IntN(900000) + 100000,
			Engagement: fmt.Sprintf("%.1f%%", g.rng.Float64()*5+1),
			Location:   pick(g.rng, locations),
			Categories: categories,
			JoinDate:   time.Date(2023, time.Month(g.rng.IntN(12)+1), g.rng.IntN(28)+1, 0, 0, 0, 0, time.UTC),
			Status:     status,
		})
	}
	return influencers
}

// Logs generates n activity log entries, newest first. IDs are left empty for
// the store to assign.
func (g *Generator) Logs(n int) []models.LogEntry {
	logs := make([]models.LogEntry, 0, n)
	for range n {
		logs = append(logs, models.LogEntry{
			Action:    pick(g.rng, logActions),
			User:      pick(g.rng, logUsers),
			Timestamp: time.Date(2024, time.February, g.rng.IntN(28)+1, g.rng.IntN(24), g.rng.IntN(60), 0, 0, time.UTC),
			Details:   pick(g.rng, logDetails),
			Category:  pick(g.rng, models.LogCategories),
			IPAddress: fmt.Sprintf("192.168.%d.%d", g.rng.IntN(255), g.rng.IntN(255)),
			Status:    pick(g.rng, models.LogStatuses),
		})
	}

	slices.SortStableFunc(logs, func(a, b models.LogEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return logs
}
