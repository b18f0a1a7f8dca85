package helper

import (
	"testing"
	"time"

	"theater_dashboard/constants"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentSeason(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"july belongs to the ending season", time.Date(2025, time.July, 31, 12, 0, 0, 0, time.UTC), "24/25"},
		{"august starts the new season", time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), "25/26"},
		{"midwinter", time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC), "25/26"},
		{"century padding", time.Date(2099, time.September, 1, 0, 0, 0, 0, time.UTC), "99/00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CurrentSeason(tc.now))
		})
	}
}

func TestSeasonShifts(t *testing.T) {
	next, err := NextSeason("25/26")
	require.NoError(t, err)
	assert.Equal(t, "26/27", next)

	prev, err := PrevSeason("25/26")
	require.NoError(t, err)
	assert.Equal(t, "24/25", prev)

	_, err = NextSeason("2025")
	assert.Error(t, err)
	_, err = PrevSeason("ab/cd")
	assert.Error(t, err)
}

func TestSummarizeSeasonEmpty(t *testing.T) {
	summary := SummarizeSeason("25/26", nil)

	assert.Equal(t, "25/26", summary.Season)
	assert.Equal(t, 0, summary.ShowCount)
	assert.Equal(t, 0, summary.AvgProgress)
	assert.Equal(t, 0, summary.StatusCounts[constants.STATUS_TODO])
	assert.Equal(t, 0, summary.StatusCounts[constants.STATUS_IN_PROGRESS])
	assert.Equal(t, 0, summary.StatusCounts[constants.STATUS_DONE])
	assert.Empty(t, summary.Genres)
}

func TestSummarizeSeasonMixedShows(t *testing.T) {
	shows := []model.Show{
		{},             // todo, 0%
		completeShow(), // done, 100%
	}
	summary := SummarizeSeason("25/26", shows)

	assert.Equal(t, 2, summary.ShowCount)
	assert.Equal(t, 50, summary.AvgProgress)
	assert.Equal(t, 1, summary.StatusCounts[constants.STATUS_TODO])
	assert.Equal(t, 0, summary.StatusCounts[constants.STATUS_IN_PROGRESS])
	assert.Equal(t, 1, summary.StatusCounts[constants.STATUS_DONE])
}

func TestSummarizeSeasonGenreOrdering(t *testing.T) {
	shows := []model.Show{
		{Title: "A", Genre: utils.StringPtr("Cabaret")},
		{Title: "B", Genre: utils.StringPtr("Toneel")},
		{Title: "C", Genre: utils.StringPtr("Toneel")},
		{Title: "D", Genre: utils.StringPtr("Dans")},
		{Title: "E", Genre: utils.StringPtr("  ")},
		{Title: "F"},
	}
	summary := SummarizeSeason("25/26", shows)

	require.Len(t, summary.Genres, 3)
	assert.Equal(t, GenreCount{Genre: "Toneel", Count: 2}, summary.Genres[0])
	// Ties break alphabetically.
	assert.Equal(t, GenreCount{Genre: "Cabaret", Count: 1}, summary.Genres[1])
	assert.Equal(t, GenreCount{Genre: "Dans", Count: 1}, summary.Genres[2])
}

func TestSummarizeSeasonAverageRounds(t *testing.T) {
	// One show at 30% (3 of 10 criteria) and two empty ones: mean 10%.
	partial := model.Show{
		Title: "Solo",
		Dates: utils.StringArray{"2025-12-01"},
		Price: utils.Ptr(15.0),
	}
	summary := SummarizeSeason("25/26", []model.Show{partial, {}, {}})

	assert.Equal(t, 10, summary.AvgProgress)
	assert.Equal(t, 1, summary.StatusCounts[constants.STATUS_IN_PROGRESS])
	assert.Equal(t, 2, summary.StatusCounts[constants.STATUS_TODO])
}
