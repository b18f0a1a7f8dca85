package router

import (
	"theater_dashboard/handler"
	"theater_dashboard/middleware"
	"theater_dashboard/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/account", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)

	show := v1.Group("/show", logger.New())
	show.Get("/", middleware.Protected(), validate.FilterShows(), handler.GetShows)
	show.Post("/", middleware.Protected(), validate.CreateShow(), handler.CreateShow)
	show.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteShows)
	show.Get("/:showId", middleware.Protected(), validate.GetById("showId"), handler.GetShowById)
	show.Put("/:showId", middleware.Protected(), validate.EditShow("showId"), handler.EditShow)
	show.Post("/:showId/duplicate", middleware.Protected(), validate.DuplicateShow("showId"), handler.DuplicateShow)
	show.Get("/:showId/qr", middleware.Protected(), validate.GetById("showId"), handler.GetShowQRCode)
	show.Post("/:showId/images", middleware.Protected(), validate.UploadSceneImage("showId"), handler.UploadSceneImage)
	show.Post("/:showId/crop", middleware.Protected(), validate.SaveCrop("showId"), handler.SaveCrop)

	image := v1.Group("/show-image", logger.New())
	image.Patch("/:imageId/alt-text", middleware.Protected(), validate.UpdateAltText("imageId"), handler.UpdateImageAltText)
	image.Patch("/:imageId/position", middleware.Protected(), validate.UpdatePosition("imageId"), handler.UpdateImagePosition)
	image.Delete("/:imageId", middleware.Protected(), validate.DeleteShowImage("imageId"), handler.DeleteShowImage)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	dashboard := v1.Group("/dashboard", logger.New())
	dashboard.Get("/seasons", middleware.Protected(), handler.GetSeasons)
	dashboard.Get("/:season", middleware.Protected(), handler.GetSeasonDashboard)

	settings := v1.Group("/settings", logger.New())
	settings.Get("/", middleware.Protected(), handler.GetSettings)
	settings.Put("/:key", middleware.Protected(), validate.UpsertSetting(), handler.UpsertSetting)

	sortOrder := v1.Group("/sort-order", logger.New())
	sortOrder.Get("/:context", middleware.Protected(), handler.GetSortOrder)
	sortOrder.Put("/:context", middleware.Protected(), validate.SaveSortOrder(), handler.SaveSortOrder)

	ai := v1.Group("/ai", logger.New())
	ai.Post("/optimize-text", middleware.Protected(), validate.OptimizeText(), handler.OptimizeText)
	ai.Post("/generate-alt-text", middleware.Protected(), validate.GenerateAltText(), handler.GenerateAltText)

	v1.Get("/ws/season/:season", websocket.New(handler.SeasonFeed))
}
