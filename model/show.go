package model

import (
	"theater_dashboard/utils"
)

// Show is one theatrical production within a season. All optional fields are
// pointers: nil means "not filled in yet", which the checklist treats as a
// valid state, never an error.
type Show struct {
	DTO
	Season             string            `gorm:"not null;index" validate:"required" json:"season"`
	Title              string            `gorm:"not null;index" validate:"required" json:"title"`
	Subtitle           *string           `json:"subtitle"`
	Dates              utils.StringArray `gorm:"type:jsonb" json:"dates"` // ISO dates, ordered
	StartTime          *string           `json:"startTime"`
	EndTime            *string           `json:"endTime"`
	Price              *float64          `json:"price"`
	DiscountPrice      *float64          `json:"discountPrice"`
	Genre              *string           `gorm:"index" json:"genre"`
	DescriptionText    *string           `gorm:"type:text" json:"descriptionText"`
	TextFilename       *string           `json:"textFilename"`
	WebText            *string           `gorm:"type:text" json:"webText"`
	SeoTitle           *string           `json:"seoTitle"`
	SeoKeyword         *string           `json:"seoKeyword"`
	SeoMetaDescription *string           `gorm:"type:text" json:"seoMetaDescription"`
	SeoSlug            *string           `gorm:"index" json:"seoSlug"`
	Notes              *string           `gorm:"type:text" json:"notes"`
	HeroImageUrl       *string           `json:"heroImageUrl"`
	HeroImagePreview   *string           `json:"heroImagePreview"`
	SocialFacebook     *string           `json:"socialFacebook"`
	SocialInstagram    *string           `json:"socialInstagram"`

	Images []ShowImage `gorm:"foreignKey:ShowId;constraint:OnDelete:CASCADE" json:"images"`
}

type Shows []Show

// ShowImage is one stored image variant belonging to a show: either a scene
// photo or a named crop format.
type ShowImage struct {
	DTO
	ShowId   uint    `gorm:"not null;index" json:"showId"`
	Type     string  `gorm:"not null;index" validate:"required" json:"type"`
	FileUrl  string  `gorm:"not null" validate:"required,url" json:"fileUrl"`
	FileName *string `json:"fileName"`
	AltText  *string `json:"altText"`
	FileSize *int64  `json:"fileSize"`
	Position *int    `json:"position"`
	PublicID *string `json:"-"` // cloudinary asset id, needed to destroy the file
}

type CreateShowInput struct {
	Season             string            `json:"season" validate:"required"`
	Title              string            `json:"title" validate:"required"`
	Subtitle           *string           `json:"subtitle"`
	Dates              utils.StringArray `json:"dates" validate:"omitempty,dive,datetime=2006-01-02"`
	StartTime          *string           `json:"startTime"`
	EndTime            *string           `json:"endTime"`
	Price              *float64          `json:"price" validate:"omitempty,gte=0"`
	DiscountPrice      *float64          `json:"discountPrice" validate:"omitempty,gte=0"`
	Genre              *string           `json:"genre"`
	DescriptionText    *string           `json:"descriptionText"`
	TextFilename       *string           `json:"textFilename"`
	Notes              *string           `json:"notes"`
	SocialFacebook     *string           `json:"socialFacebook"`
	SocialInstagram    *string           `json:"socialInstagram"`
}

type EditShowInput struct {
	Title              *string            `json:"title"`
	Subtitle           *string            `json:"subtitle"`
	Dates              *utils.StringArray `json:"dates" validate:"omitempty,dive,datetime=2006-01-02"`
	StartTime          *string            `json:"startTime"`
	EndTime            *string            `json:"endTime"`
	Price              *float64           `json:"price" validate:"omitempty,gte=0"`
	DiscountPrice      *float64           `json:"discountPrice" validate:"omitempty,gte=0"`
	Genre              *string            `json:"genre"`
	DescriptionText    *string            `json:"descriptionText"`
	TextFilename       *string            `json:"textFilename"`
	WebText            *string            `json:"webText"`
	SeoTitle           *string            `json:"seoTitle"`
	SeoKeyword         *string            `json:"seoKeyword"`
	SeoMetaDescription *string            `json:"seoMetaDescription"`
	SeoSlug            *string            `json:"seoSlug"`
	Notes              *string            `json:"notes"`
	HeroImageUrl       *string            `json:"heroImageUrl"`
	HeroImagePreview   *string            `json:"heroImagePreview"`
	SocialFacebook     *string            `json:"socialFacebook"`
	SocialInstagram    *string            `json:"socialInstagram"`
}

type FilterShowInput struct {
	Pagination
	Season string `query:"season" validate:"required"`
	Title  string `query:"title"`
	Genre  string `query:"genre"`
	Status string `query:"status" validate:"omitempty,oneof=todo in-progress done"`
}

type DuplicateShowInput struct {
	Season string `json:"season" validate:"required"`
}

type SaveCropInput struct {
	Type     string  `json:"type" validate:"required,oneof=crop_hero crop_uitlichten crop_narrow"`
	FileUrl  string  `json:"fileUrl" validate:"required,url"`
	FileName *string `json:"fileName"`
	AltText  *string `json:"altText"`
	FileSize *int64  `json:"fileSize" validate:"omitempty,gte=0"`
	PublicID *string `json:"publicId"`
}

type UpdateAltTextInput struct {
	AltText string `json:"altText" validate:"required,max=300"`
}

type UpdatePositionInput struct {
	Position int `json:"position" validate:"gte=0"`
}

// ShowWithStatus decorates a stored show with its derived checklist values
// for list and dashboard responses. The derived fields are never persisted.
type ShowWithStatus struct {
	Show
	Checklist       map[string]bool `json:"checklist"`
	ProgressPercent int             `json:"progressPercent"`
	Status          string          `json:"status"`
}
