package helper

import (
	"fmt"

	"teatr_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

func CloudinaryEnabled() bool {
	return config.Config("CLOUDINARY_CLOUD_NAME") != ""
}

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return cld, nil
}
