package helper

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

// PosterPublicID names an uploaded poster after the spectacle title.
func PosterPublicID(title string, now time.Time) string {
	base := slug.Make(title)
	if base == "" {
		base = "poster"
	}
	return fmt.Sprintf("%s-%d", base, now.UnixMilli())
}

// PosterFileName is the local file name of an uploaded poster.
func PosterFileName(ext string, now time.Time) string {
	return fmt.Sprintf("poster-%d%s", now.UnixMilli(), ext)
}
