package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"teatr_manager/constants"
	"teatr_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/valyala/fasthttp"
)

// PosterStore keeps an uploaded poster and returns its public URL.
type PosterStore interface {
	Save(ctx context.Context, file *multipart.FileHeader, title string) (string, error)
}

// LocalPosterStore writes posters under Dir, served as static files below URLPrefix.
type LocalPosterStore struct {
	Dir       string
	URLPrefix string
	Now       func() time.Time
}

func NewLocalPosterStore() *LocalPosterStore {
	return &LocalPosterStore{Dir: constants.POSTER_DIR, URLPrefix: constants.POSTER_URL_PREFIX, Now: time.Now}
}

func (s *LocalPosterStore) Save(_ context.Context, file *multipart.FileHeader, _ string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("poster dir: %w", err)
	}
	name := PosterFileName(strings.ToLower(filepath.Ext(file.Filename)), s.Now())
	if err := fasthttp.SaveMultipartFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("save poster: %w", err)
	}
	return s.URLPrefix + name, nil
}

type CloudinaryPosterStore struct {
	Cld    *cloudinary.Cloudinary
	Folder string
	Now    func() time.Time
}

func (s *CloudinaryPosterStore) Save(ctx context.Context, file *multipart.FileHeader, title string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open poster: %w", err)
	}
	defer f.Close()

	res, err := s.Cld.Upload.Upload(ctx, f, uploader.UploadParams{
		Folder:   s.Folder,
		PublicID: PosterPublicID(title, s.Now()),
	})
	if err != nil {
		return "", fmt.Errorf("upload poster: %w", err)
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}

// NewPosterStore uses Cloudinary when it is configured and the local
// public/images directory otherwise.
func NewPosterStore() PosterStore {
	if CloudinaryEnabled() {
		cld, err := InitCloudinary()
		if err == nil {
			return &CloudinaryPosterStore{Cld: cld, Folder: "teatr_posters", Now: time.Now}
		}
		utils.Log.WithError(err).Warn("falling back to local poster storage")
	}
	return NewLocalPosterStore()
}
