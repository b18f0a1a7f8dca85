package helper

import (
	"log"

	"theater_dashboard/database"
	"theater_dashboard/model"

	"github.com/robfig/cron/v3"
)

var cleanupScheduler *cron.Cron

// cleanupOrphanImages deletes show_images rows whose show is gone and
// destroys their backing files. Crops removed outside the normal flow (or a
// failed cascade) would otherwise leak storage; the checklist itself never
// sees them since it only reads images through their show.
func cleanupOrphanImages() {
	db := database.DB

	var orphans []model.ShowImage
	err := db.Where("show_id NOT IN (?)", db.Model(&model.Show{}).Select("id")).Find(&orphans).Error
	if err != nil {
		log.Printf("orphan image scan failed: %v", err)
		return
	}
	if len(orphans) == 0 {
		return
	}

	cld := InitCloudinary()
	for _, img := range orphans {
		DestroyAsset(cld, img.PublicID)
		if err := db.Delete(&model.ShowImage{}, img.ID).Error; err != nil {
			log.Printf("orphan image delete failed (id=%d): %v", img.ID, err)
		}
	}
	log.Printf("removed %d orphaned show images", len(orphans))
}

func StartCleanupScheduler() {
	cleanupScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := cleanupScheduler.AddFunc("*/30 * * * *", cleanupOrphanImages)
	if err != nil {
		log.Printf("cleanup scheduler init failed: %v", err)
		return
	}

	cleanupScheduler.Start()
	log.Println("image cleanup scheduler started (every 30 minutes)")
}

func StopCleanupScheduler() {
	if cleanupScheduler != nil {
		cleanupScheduler.Stop()
	}
}
