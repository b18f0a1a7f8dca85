package helper

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// DestroyAsset removes a stored image file. Errors are logged, not returned:
// a leftover file must never block a row delete, the orphan sweeper picks
// strays up later.
func DestroyAsset(cld *cloudinary.Cloudinary, publicID *string) {
	if publicID == nil || *publicID == "" {
		return
	}
	if _, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: *publicID}); err != nil {
		log.Printf("cloudinary destroy failed for %s: %v", *publicID, err)
	}
}
