package profile

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// SetBackdrop stores a timer backdrop reference on the document.
// URLs (and already-encoded data URIs) are stored verbatim; anything
// else is treated as a local image path and embedded as a data URI.
func SetBackdrop(p Profile, urlOrPath string) (Profile, error) {
	out := p.Clone()

	trimmed := strings.TrimSpace(urlOrPath)
	if trimmed == "" {
		out.BGImage = ""
		return out, nil
	}

	if strings.HasPrefix(trimmed, "http://") ||
		strings.HasPrefix(trimmed, "https://") ||
		strings.HasPrefix(trimmed, "data:") {
		out.BGImage = trimmed
		return out, nil
	}

	uri, err := encodeImageFile(trimmed)
	if err != nil {
		return p, err
	}
	out.BGImage = uri
	return out, nil
}

// encodeImageFile reads a local image and returns it as a data URI with
// a sniffed content type.
func encodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read backdrop image: %w", err)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("backdrop %s: not an image (%s)", path, contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
