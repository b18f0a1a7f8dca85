package helper

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"theater_dashboard/constants"
	"theater_dashboard/model"
)

// Seasons are labeled "yy/yy" and run August through July: in August 2025 the
// current season becomes "25/26".

func formatYearShort(year int) string {
	return fmt.Sprintf("%02d", year%100)
}

// CurrentSeason returns the season label the given moment falls in.
func CurrentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() >= time.August {
		return formatYearShort(year) + "/" + formatYearShort(year+1)
	}
	return formatYearShort(year-1) + "/" + formatYearShort(year)
}

func shiftSeason(season string, delta int) (string, error) {
	start, _, ok := strings.Cut(season, "/")
	if !ok {
		return "", fmt.Errorf("invalid season format: %s", season)
	}
	startNum, err := strconv.Atoi(start)
	if err != nil {
		return "", fmt.Errorf("invalid season format: %s", season)
	}
	return formatYearShort(startNum+delta) + "/" + formatYearShort(startNum+delta+1), nil
}

// CurrentSeasonNow is CurrentSeason at wall-clock time.
func CurrentSeasonNow() string {
	return CurrentSeason(time.Now())
}

func NextSeason(season string) (string, error) {
	return shiftSeason(season, 1)
}

func PrevSeason(season string) (string, error) {
	return shiftSeason(season, -1)
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// SeasonSummary is the dashboard aggregate for one season.
type SeasonSummary struct {
	Season       string         `json:"season"`
	ShowCount    int            `json:"showCount"`
	AvgProgress  int            `json:"avgProgress"`
	StatusCounts map[string]int `json:"statusCounts"`
	Genres       []GenreCount   `json:"genres"`
}

// SummarizeSeason aggregates checklist results over a season's shows.
// Season-level completion is defined as the rounded arithmetic mean of each
// show's progress percentage. Total over its input; an empty season yields
// zero progress and empty counts.
func SummarizeSeason(season string, shows []model.Show) SeasonSummary {
	summary := SeasonSummary{
		Season:    season,
		ShowCount: len(shows),
		StatusCounts: map[string]int{
			constants.STATUS_TODO:        0,
			constants.STATUS_IN_PROGRESS: 0,
			constants.STATUS_DONE:        0,
		},
		Genres: []GenreCount{},
	}

	genreCounts := make(map[string]int)
	progressSum := 0
	for i := range shows {
		checklist := EvaluateChecklist(&shows[i])
		progressSum += ProgressPercent(checklist)
		summary.StatusCounts[ShowStatus(checklist)]++

		if shows[i].Genre != nil {
			genre := strings.TrimSpace(*shows[i].Genre)
			if genre != "" {
				genreCounts[genre]++
			}
		}
	}

	if len(shows) > 0 {
		summary.AvgProgress = int(math.Round(float64(progressSum) / float64(len(shows))))
	}

	for genre, count := range genreCounts {
		summary.Genres = append(summary.Genres, GenreCount{Genre: genre, Count: count})
	}
	// Descending by count, ties alphabetical, so the ordering is deterministic.
	sort.Slice(summary.Genres, func(i, j int) bool {
		if summary.Genres[i].Count != summary.Genres[j].Count {
			return summary.Genres[i].Count > summary.Genres[j].Count
		}
		return summary.Genres[i].Genre < summary.Genres[j].Genre
	})

	return summary
}
