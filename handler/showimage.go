package handler

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/helper"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateSignature signs direct-upload parameters so the dashboard can push
// files straight to Cloudinary.
func GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // Parse but don't sign
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary signs the raw values, no URL encoding.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadSceneImage stores a scene photo under the show's folder and records
// it as a "scene" image row.
func UploadSceneImage(c *fiber.Ctx) error {
	db := database.DB
	showId, ok := c.Locals("showId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	file, ok := c.Locals("sceneFile").(*multipart.FileHeader)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unsupported image format", nil, "file")
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPLOAD, err)
	}
	defer reader.Close()

	cld := helper.InitCloudinary()
	publicID := fmt.Sprintf("show_%d_%s", showId, uuid.NewString())
	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       fmt.Sprintf("shows/%d", showId),
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPLOAD, err)
	}

	var maxPosition sql.NullInt64
	db.Model(&model.ShowImage{}).
		Where("show_id = ? AND type = ?", showId, constants.IMAGE_TYPE_SCENE).
		Select("MAX(position)").Scan(&maxPosition)
	position := 0
	if maxPosition.Valid {
		position = int(maxPosition.Int64) + 1
	}

	image := model.ShowImage{
		ShowId:   showId,
		Type:     constants.IMAGE_TYPE_SCENE,
		FileUrl:  result.SecureURL,
		FileName: utils.StringPtr(file.Filename),
		FileSize: utils.Ptr(file.Size),
		Position: &position,
		PublicID: utils.StringPtr(result.PublicID),
	}
	if err := db.Create(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	broadcastForShow(showId, "image-added")
	return utils.SuccessResponse(c, fiber.StatusCreated, image)
}

// SaveCrop stores a named crop variant. Re-cropping replaces: any existing
// variant of the same type is removed, row and file, before the new row is
// inserted, keeping at most one image per crop format.
func SaveCrop(c *fiber.Ctx) error {
	db := database.DB
	showId, ok := c.Locals("showId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputSaveCrop").(model.SaveCropInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var existing []model.ShowImage
	if err := db.Where("show_id = ? AND type = ?", showId, input.Type).Find(&existing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	image := model.ShowImage{
		ShowId:   showId,
		Type:     input.Type,
		FileUrl:  input.FileUrl,
		FileName: input.FileName,
		AltText:  input.AltText,
		FileSize: input.FileSize,
		PublicID: input.PublicID,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if len(existing) > 0 {
			if err := tx.Where("show_id = ? AND type = ?", showId, input.Type).Delete(&model.ShowImage{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	cld := helper.InitCloudinary()
	for _, old := range existing {
		helper.DestroyAsset(cld, old.PublicID)
	}

	broadcastForShow(showId, "image-added")
	return utils.SuccessResponse(c, fiber.StatusCreated, image)
}

func UpdateImageAltText(c *fiber.Ctx) error {
	db := database.DB
	image, ok := c.Locals("showImage").(*model.ShowImage)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputAltText").(model.UpdateAltTextInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Model(image).Update("alt_text", input.AltText).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	broadcastForShow(image.ShowId, "image-updated")
	return utils.SuccessResponse(c, fiber.StatusOK, image)
}

func UpdateImagePosition(c *fiber.Ctx) error {
	db := database.DB
	image, ok := c.Locals("showImage").(*model.ShowImage)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputPosition").(model.UpdatePositionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Model(image).Update("position", input.Position).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	broadcastForShow(image.ShowId, "image-updated")
	return utils.SuccessResponse(c, fiber.StatusOK, image)
}

func DeleteShowImage(c *fiber.Ctx) error {
	db := database.DB
	image, ok := c.Locals("showImage").(*model.ShowImage)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := db.Delete(&model.ShowImage{}, image.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.DestroyAsset(helper.InitCloudinary(), image.PublicID)

	broadcastForShow(image.ShowId, "image-deleted")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": image.ID})
}

// broadcastForShow looks up the show's season and notifies its feed.
func broadcastForShow(showId uint, event string) {
	var show model.Show
	if err := database.DB.Select("id", "season").First(&show, showId).Error; err != nil {
		return
	}
	BroadcastSeasonEvent(show.Season, event, showId)
}
