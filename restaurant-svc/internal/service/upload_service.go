package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"restaurant-saas/logger"
	"restaurant-saas/restaurant-svc/internal/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxUploadSize   = 5 * 1024 * 1024
	signedURLExpiry = time.Hour
)

type Folder string

const (
	FolderAvatars    Folder = "avatars"
	FolderLogos      Folder = "logos"
	FolderMenuImages Folder = "menu-images"
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

var allowedFolders = map[Folder]bool{
	FolderAvatars:    true,
	FolderLogos:      true,
	FolderMenuImages: true,
}

type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadService struct {
	store ObjectStorage
}

func NewUploadService(store ObjectStorage) *UploadService {
	return &UploadService{store: store}
}

func extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Upload stores the file under {folder}/{owner}/{random}.{ext}. Menu images come back as a
// signed URL; avatars and logos as their public URL.
func (s *UploadService) Upload(ctx context.Context, file UploadFile, folder Folder, ownerID uuid.UUID) (string, error) {
	if !allowedFolders[folder] {
		return "", apperr.BadRequest("Unknown upload folder")
	}
	if file.Filename == "" {
		return "", apperr.BadRequest("Filename is required")
	}
	ext := extension(file.Filename)
	if !allowedExtensions[ext] {
		return "", apperr.BadRequest("Invalid file type. Allowed types: jpg, jpeg, png, gif, webp")
	}
	if len(file.Data) > MaxUploadSize {
		return "", apperr.BadRequest("File too large. Maximum size is 5MB")
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectPath := fmt.Sprintf("%s/%s/%s.%s", folder, ownerID, uuid.New(), ext)
	if err := s.store.Put(ctx, objectPath, file.Data, contentType); err != nil {
		return "", apperr.Internal("Upload failed: "+err.Error(), err)
	}

	logger.Info(ctx, "File uploaded", zap.String("path", objectPath), zap.Int("size", len(file.Data)))

	if folder != FolderMenuImages {
		return s.store.PublicURL(objectPath), nil
	}
	return s.signedOrPublic(ctx, objectPath), nil
}

// ImageURL signs a fresh URL for a stored image. Paths outside the known folders are not served.
func (s *UploadService) ImageURL(ctx context.Context, objectPath string) (string, error) {
	clean := path.Clean(objectPath)
	if clean != objectPath || strings.HasPrefix(clean, "/") || strings.Contains(clean, "..") {
		return "", apperr.NotFound("Image not found")
	}
	folder, rest, ok := strings.Cut(clean, "/")
	if !ok || rest == "" || !allowedFolders[Folder(folder)] {
		return "", apperr.NotFound("Image not found")
	}
	return s.signedOrPublic(ctx, clean), nil
}

func (s *UploadService) signedOrPublic(ctx context.Context, objectPath string) string {
	signed, err := s.store.SignedURL(ctx, objectPath, signedURLExpiry)
	if err != nil {
		logger.Warn(ctx, "Signing failed, falling back to public URL", zap.String("path", objectPath), zap.Error(err))
		return s.store.PublicURL(objectPath)
	}
	return signed
}

var _ UploadServiceInterface = (*UploadService)(nil)
