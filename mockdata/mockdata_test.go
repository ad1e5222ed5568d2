package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirecentive/dashboard/models"
)

func TestInfluencers(t *testing.T) {
	influencers := NewGenerator(7).Influencers(50)
	require.Len(t, influencers, 50)

	for i, inf := range influencers {
		assert.Empty(t, inf.ID, "ids are assigned by the store")
		assert.True(t, inf.Platform.Valid(), "platform %q", inf.Platform)
		assert.GreaterOrEqual(t, inf.Followers, 100000)
		assert.Less(t, inf.Followers, 1000000)
		assert.NotEmpty(t, inf.Categories)
		assert.LessOrEqual(t, len(inf.Categories), 3)
		assert.Equal(t, 2023, inf.JoinDate.Year())
		assert.Contains(t, models.InfluencerStatuses, inf.Status)
		assert.Regexp(t, `^\+1 \d{3} \d{3} \d{4}$`, inf.Phone)
		assert.Regexp(t, `^\d\.\d%$`, inf.Engagement)
		if i == 0 {
			assert.Equal(t, "influencer1@example.com", inf.Email)
			assert.Equal(t, "@influencer1", inf.Handle)
		}
	}
}

func TestLogsAreNewestFirst(t *testing.T) {
	logs := NewGenerator(7).Logs(50)
	require.Len(t, logs, 50)

	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].Timestamp.After(logs[i-1].Timestamp), "log %d is newer than log %d", i, i-1)
	}
	for _, entry := range logs {
		assert.Contains(t, models.LogCategories, entry.Category)
		assert.Contains(t, models.LogStatuses, entry.Status)
		assert.Regexp(t, `^192\.168\.\d{1,3}\.\d{1,3}$`, entry.IPAddress)
		assert.Equal(t, 2024, entry.Timestamp.Year())
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	assert.Equal(t, NewGenerator(42).Influencers(10), NewGenerator(42).Influencers(10))
	assert.Equal(t, NewGenerator(42).Logs(10), NewGenerator(42).Logs(10))
	assert.NotEqual(t, NewGenerator(1).Influencers(10), NewGenerator(2).Influencers(10))
}
