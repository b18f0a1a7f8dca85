package helper

import (
	"fmt"

	"theater_dashboard/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueShowSlug builds an SEO slug from the title, unique within the
// season.
func GenerateUniqueShowSlug(tx *gorm.DB, season, title string) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Show{}).
			Where("season = ? AND seo_slug = ?", season, result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
