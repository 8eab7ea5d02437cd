package controllers

import (
	"context"
	"fmt"

	"mybuddy/mybuddy/utils/logging"

	"go.uber.org/zap"
)

// AllowedImageTypes are the uploads accepted for text extraction.
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type ImageTextReader interface {
	ExtractTextFromImage(ctx context.Context, data []byte, mediaType string) (string, error)
}

// ImageArchiver keeps a copy of each accepted upload.
type ImageArchiver interface {
	ArchiveImage(ctx context.Context, data []byte, mediaType string) (string, error)
}

type OCRController struct {
	reader   ImageTextReader
	archive  ImageArchiver
	maxBytes int64
}

// NewOCRController builds the controller; archive may be nil.
func NewOCRController(reader ImageTextReader, archive ImageArchiver, maxBytes int64) *OCRController {
	return &OCRController{reader: reader, archive: archive, maxBytes: maxBytes}
}

func (c *OCRController) MaxBytes() int64 {
	return c.maxBytes
}

// ValidateImage checks type before size.
func (c *OCRController) ValidateImage(mediaType string, size int64) error {
	if err := c.ValidateType(mediaType); err != nil {
		return err
	}
	if size > c.maxBytes {
		return c.TooLarge()
	}
	return nil
}

func (c *OCRController) ValidateType(mediaType string) error {
	if isAllowedImageType(mediaType) {
		return nil
	}
	return &ImageError{
		Err:     fmt.Errorf("%w: %s", ErrUnsupportedImageType, mediaType),
		Message: fmt.Sprintf("Unsupported file type: %s. Please upload a JPEG, PNG, GIF, or WebP image.", mediaType),
	}
}

// TooLarge is the error for an upload over the size limit.
func (c *OCRController) TooLarge() error {
	size := humanSize(c.maxBytes)
	return &ImageError{
		Err:     fmt.Errorf("%w: maximum size is %s", ErrImageTooLarge, size),
		Message: "File is too large. Maximum size is " + size + ".",
	}
}

// ExtractText validates the upload and returns the text read from it.
func (c *OCRController) ExtractText(ctx context.Context, data []byte, mediaType string) (string, error) {
	if err := c.ValidateImage(mediaType, int64(len(data))); err != nil {
		return "", err
	}
	text, err := c.reader.ExtractTextFromImage(ctx, data, mediaType)
	if err != nil {
		return "", err
	}
	if c.archive != nil {
		key, err := c.archive.ArchiveImage(ctx, data, mediaType)
		if err != nil {
			logging.ErrorLogger.Error("failed to archive OCR image", zap.Error(err))
		} else {
			logging.AppLogger.Info("archived OCR image", zap.String("key", key))
		}
	}
	return text, nil
}

func isAllowedImageType(mediaType string) bool {
	for _, t := range AllowedImageTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}

func humanSize(n int64) string {
	const mb = 1024 * 1024
	if n >= mb && n%mb == 0 {
		return fmt.Sprintf("%d MB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}
