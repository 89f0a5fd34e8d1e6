package providers

import "fmt"

// ImageData is normalized image content ready to embed in a provider
// request.
type ImageData struct {
	Base64   string
	MimeType string
}

// DataURL renders the image as a data URL for APIs that accept one
func (d *ImageData) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", d.MimeType, d.Base64)
}
