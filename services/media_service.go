package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/techagentng/bloghub/config"
)

const thumbnailWidth = 200

// MediaService stores uploaded post images on local disk under the configured
// media directory and returns the relative path stored on the post.
type MediaService interface {
	SaveImage(fileHeader *multipart.FileHeader) (string, error)
}

type mediaService struct {
	Config *config.Config
}

func NewMediaService(conf *config.Config) MediaService {
	return &mediaService{Config: conf}
}

func checkSupportedImage(filename string) bool {
	supported := map[string]bool{
		".png":  true,
		".jpeg": true,
		".jpg":  true,
		".gif":  true,
	}
	return supported[strings.ToLower(filepath.Ext(filename))]
}

// SaveImage writes the upload to <mediaDir>/posts/<name> and returns
// "posts/<name>". A thumbnail is generated best-effort next to it.
func (s *mediaService) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	name := filepath.Base(fileHeader.Filename)
	if !checkSupportedImage(name) {
		return "", fmt.Errorf("unsupported image type: %s", name)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("could not open upload: %v", err)
	}
	defer src.Close()

	dir := filepath.Join(s.Config.MediaDir, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create media dir: %v", err)
	}

	fullPath := filepath.Join(dir, name)
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("could not create image file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("could not write image file: %v", err)
	}

	if err := s.generateThumbnail(fullPath, name); err != nil {
		log.Printf("thumbnail generation failed for %s: %v", name, err)
	}

	return "posts/" + name, nil
}

func (s *mediaService) generateThumbnail(fullPath, name string) error {
	img, err := imaging.Open(fullPath)
	if err != nil {
		return err
	}

	thumbDir := filepath.Join(s.Config.MediaDir, "posts", "thumbnails")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return err
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	return imaging.Save(thumb, filepath.Join(thumbDir, name))
}
