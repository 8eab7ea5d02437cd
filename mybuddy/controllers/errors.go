package controllers

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrUnsupportedImageType = errors.New("unsupported file type")
	ErrImageTooLarge        = errors.New("image too large")
)

// ImageError is a rejected upload. Message is safe to show to the user.
type ImageError struct {
	Err     error
	Message string
}

func (e *ImageError) Error() string { return e.Err.Error() }

func (e *ImageError) Unwrap() error { return e.Err }
