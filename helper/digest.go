package helper

import (
	"log"
	"strings"
	"time"

	"theater_dashboard/config"
	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/go-co-op/gocron/v2"
)

var digestScheduler gocron.Scheduler

// SendWeeklyDigest mails the current season's aggregate progress to the
// configured recipients.
func SendWeeklyDigest() {
	log.Println("[CRON] SendWeeklyDigest triggered")

	recipients := ParseRecipients(config.Config("DIGEST_RECIPIENTS"))
	if len(recipients) == 0 {
		log.Println("no digest recipients configured, skipping")
		return
	}

	db := database.DB
	season := CurrentSeason(time.Now())

	var shows []model.Show
	if err := db.Preload("Images").Where("season = ?", season).Find(&shows).Error; err != nil {
		log.Printf("digest show query failed: %v", err)
		return
	}

	summary := SummarizeSeason(season, shows)
	utils.SendSeasonDigestEmail(recipients, utils.SeasonDigestData{
		Season:      summary.Season,
		ShowCount:   summary.ShowCount,
		AvgProgress: summary.AvgProgress,
		DoneCount:   summary.StatusCounts[constants.STATUS_DONE],
		BusyCount:   summary.StatusCounts[constants.STATUS_IN_PROGRESS],
		TodoCount:   summary.StatusCounts[constants.STATUS_TODO],
	})
}

// ParseRecipients splits a comma separated recipient list, dropping blanks
// and invalid addresses.
func ParseRecipients(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if addr := strings.TrimSpace(part); addr != "" && ValidEmail(addr) {
			out = append(out, addr)
		}
	}
	return out
}

// StartDigestScheduler schedules the weekly digest for Monday 08:00.
func StartDigestScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	digestScheduler = s

	_, err = s.NewJob(
		gocron.WeeklyJob(
			1,
			gocron.NewWeekdays(time.Monday),
			gocron.NewAtTimes(
				gocron.NewAtTime(8, 0, 0),
			),
		),
		gocron.NewTask(SendWeeklyDigest),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("digest scheduler started (Monday 08:00)")
}

func StopDigestScheduler() {
	if digestScheduler != nil {
		if err := digestScheduler.Shutdown(); err != nil {
			log.Printf("digest scheduler shutdown: %v", err)
		}
	}
}
