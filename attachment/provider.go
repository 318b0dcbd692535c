package attachment

import (
	"context"
	"image"
	"image/color"
	"net/url"
)

// FetchResult is the outcome of an asynchronous image fetch. Exactly one
// result is delivered per fetch: success carries the image, failure carries
// the error.
type FetchResult struct {
	Image image.Image
	Err   error
}

// Failed returns true when the fetch produced no usable image.
func (r FetchResult) Failed() bool {
	return r.Err != nil || r.Image == nil
}

// ImageProvider resolves pixel data for attachment URLs.
//
// Provide is called on the mutation context and must return quickly: the
// returned image is a placeholder to display immediately, and the channel
// delivers exactly one FetchResult when the fetch finishes. The fetch may
// run on any goroutine; the caller is responsible for marshaling the result
// back onto the mutation context before applying it. A nil placeholder
// falls back to the package default.
type ImageProvider interface {
	Provide(ctx context.Context, u *url.URL) (image.Image, <-chan FetchResult)
}

// URLProvider returns the URL that should represent an in-memory image when
// content is re-serialized.
type URLProvider interface {
	URLForImage(img image.Image) (*url.URL, error)
}

// PlaceholderImage returns the default image shown while a fetch is pending
// or after a failed fetch.
func PlaceholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 24, 24))
	gray := color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			img.Set(x, y, gray)
		}
	}
	return img
}
