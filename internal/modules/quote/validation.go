package quote

import (
	"fmt"
	"strings"
)

// ValidateSubmission mirrors the input form's checks before a quote is sent.
func ValidateSubmission(r Request) error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.ClothingItem) == "" {
		return ErrMissingFields
	}
	if len(r.Images) == 0 {
		return ErrNoImages
	}
	if len(r.Images) > MaxImages {
		return ErrTooManyImages
	}
	return nil
}

// AddImage appends ref to a copy of images, refusing once the picker limit is reached.
func AddImage(images []string, ref string) ([]string, error) {
	if len(images) >= MaxImages {
		return images, ErrTooManyImages
	}
	out := make([]string, len(images), len(images)+1)
	copy(out, images)
	return append(out, ref), nil
}

// RemoveImage returns a copy of images without the entry at index.
func RemoveImage(images []string, index int) ([]string, error) {
	if index < 0 || index >= len(images) {
		return images, fmt.Errorf("%w: %d of %d", ErrImageIndex, index, len(images))
	}
	out := make([]string, 0, len(images)-1)
	out = append(out, images[:index]...)
	return append(out, images[index+1:]...), nil
}
