package handler

import (
	"errors"
	"fmt"
	"strings"

	"theater_dashboard/config"
	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/helper"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetShows lists a season's shows with their derived checklist values.
// Without a status filter the database pages; with one, the filter runs
// in-process after the query.
func GetShows(c *fiber.Ctx) error {
	filterInput, ok := c.Locals("inputFilterShows").(model.FilterShowInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	condition := db.Model(&model.Show{}).Where("season = ?", filterInput.Season)
	if filterInput.Title != "" {
		condition = condition.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filterInput.Title)+"%")
	}
	if filterInput.Genre != "" {
		condition = condition.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(filterInput.Genre)+"%")
	}

	var rows []model.ShowWithStatus
	var totalCount int64

	if filterInput.Status == "" {
		// No derived-status filter, so the database can page.
		if err := condition.Count(&totalCount).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var shows []model.Show
		query := utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
		if err := query.Preload("Images").Order("title ASC").Find(&shows).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		rows = make([]model.ShowWithStatus, 0, len(shows))
		for _, show := range shows {
			rows = append(rows, helper.WithStatus(show))
		}
	} else {
		// Status is never stored, so it cannot be a SQL predicate: fetch the
		// season, classify, then page the filtered slice.
		var shows []model.Show
		if err := condition.Preload("Images").Order("title ASC").Find(&shows).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		rows = make([]model.ShowWithStatus, 0, len(shows))
		for _, show := range shows {
			decorated := helper.WithStatus(show)
			if decorated.Status == filterInput.Status {
				rows = append(rows, decorated)
			}
		}
		totalCount = int64(len(rows))
		rows = paginateRows(rows, filterInput.Limit, filterInput.Page)
	}

	response := &model.ResponseCustom{
		Rows:       rows,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// paginateRows pages an already-filtered slice the same way ApplyPagination
// pages a query.
func paginateRows(rows []model.ShowWithStatus, limit, page *int) []model.ShowWithStatus {
	if limit == nil || *limit <= 0 || page == nil || *page < 1 {
		return rows
	}
	offset := *limit * (*page - 1)
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + *limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func GetShowById(c *fiber.Ctx) error {
	showId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var show model.Show
	if err := db.Preload("Images").First(&show, showId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.WithStatus(show))
}

func CreateShow(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateShow").(model.CreateShowInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var show model.Show
	copier.Copy(&show, &input)
	show.SeoSlug = utils.StringPtr(helper.GenerateUniqueShowSlug(db, input.Season, input.Title))

	if err := db.Create(&show).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	BroadcastSeasonEvent(show.Season, "show-created", show.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, helper.WithStatus(show))
}

func EditShow(c *fiber.Ctx) error {
	db := database.DB
	showId, ok := c.Locals("showId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputEditShow").(model.EditShowInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var show model.Show
	if err := db.Preload("Images").First(&show, showId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	statusBefore := helper.ShowStatus(helper.EvaluateChecklist(&show))

	updates := buildShowUpdates(&input)
	if len(updates) > 0 {
		if err := db.Model(&show).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	}

	if err := db.Preload("Images").First(&show, showId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	decorated := helper.WithStatus(show)
	if statusBefore != constants.STATUS_DONE && decorated.Status == constants.STATUS_DONE {
		recipients := helper.ParseRecipients(config.Config("DIGEST_RECIPIENTS"))
		if len(recipients) > 0 {
			utils.SendShowReadyEmail(recipients, show.Title, show.Season)
		}
	}

	BroadcastSeasonEvent(show.Season, "show-updated", show.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, decorated)
}

// buildShowUpdates turns set pointer fields into a column update map. Pointers
// that are set to an empty value clear the column, nil pointers leave it
// untouched.
func buildShowUpdates(input *model.EditShowInput) map[string]any {
	updates := make(map[string]any)
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Subtitle != nil {
		updates["subtitle"] = input.Subtitle
	}
	if input.Dates != nil {
		updates["dates"] = *input.Dates
	}
	if input.StartTime != nil {
		updates["start_time"] = input.StartTime
	}
	if input.EndTime != nil {
		updates["end_time"] = input.EndTime
	}
	if input.Price != nil {
		updates["price"] = input.Price
	}
	if input.DiscountPrice != nil {
		updates["discount_price"] = input.DiscountPrice
	}
	if input.Genre != nil {
		updates["genre"] = input.Genre
	}
	if input.DescriptionText != nil {
		updates["description_text"] = input.DescriptionText
	}
	if input.TextFilename != nil {
		updates["text_filename"] = input.TextFilename
	}
	if input.WebText != nil {
		updates["web_text"] = input.WebText
	}
	if input.SeoTitle != nil {
		updates["seo_title"] = input.SeoTitle
	}
	if input.SeoKeyword != nil {
		updates["seo_keyword"] = input.SeoKeyword
	}
	if input.SeoMetaDescription != nil {
		updates["seo_meta_description"] = input.SeoMetaDescription
	}
	if input.SeoSlug != nil {
		updates["seo_slug"] = input.SeoSlug
	}
	if input.Notes != nil {
		updates["notes"] = input.Notes
	}
	if input.HeroImageUrl != nil {
		updates["hero_image_url"] = input.HeroImageUrl
	}
	if input.HeroImagePreview != nil {
		updates["hero_image_preview"] = input.HeroImagePreview
	}
	if input.SocialFacebook != nil {
		updates["social_facebook"] = input.SocialFacebook
	}
	if input.SocialInstagram != nil {
		updates["social_instagram"] = input.SocialInstagram
	}
	return updates
}

// DeleteShows removes shows with their images and backing files. The show
// exclusively owns its images, so the whole set goes with it.
func DeleteShows(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var shows []model.Show
	if err := db.Preload("Images").Where("id IN ?", input.IDs).Find(&shows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cld := helper.InitCloudinary()
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, show := range shows {
			if err := tx.Where("show_id = ?", show.ID).Delete(&model.ShowImage{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.Show{}, show.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	// Storage cleanup happens after the rows are gone; failures are picked up
	// by the orphan sweeper.
	for _, show := range shows {
		for _, img := range show.Images {
			helper.DestroyAsset(cld, img.PublicID)
		}
		BroadcastSeasonEvent(show.Season, "show-deleted", show.ID)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(shows)})
}

// DuplicateShow copies a show's editorial fields into a target season. SEO
// fields, web text, hero image and the image set start over: they are tied to
// the specific production's assets and copy.
func DuplicateShow(c *fiber.Ctx) error {
	db := database.DB
	showId, ok := c.Locals("showId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputDuplicateShow").(model.DuplicateShowInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var source model.Show
	if err := db.First(&source, showId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	duplicate := model.Show{
		Season:          input.Season,
		Title:           fmt.Sprintf("%s (kopie)", source.Title),
		Subtitle:        source.Subtitle,
		Dates:           source.Dates,
		StartTime:       source.StartTime,
		EndTime:         source.EndTime,
		Price:           source.Price,
		DiscountPrice:   source.DiscountPrice,
		Genre:           source.Genre,
		DescriptionText: source.DescriptionText,
		TextFilename:    source.TextFilename,
		Notes:           source.Notes,
		SocialFacebook:  source.SocialFacebook,
		SocialInstagram: source.SocialInstagram,
	}
	duplicate.SeoSlug = utils.StringPtr(helper.GenerateUniqueShowSlug(db, duplicate.Season, duplicate.Title))

	if err := db.Create(&duplicate).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	BroadcastSeasonEvent(duplicate.Season, "show-created", duplicate.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, helper.WithStatus(duplicate))
}
