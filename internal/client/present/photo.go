package present

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotImage is returned when a local photo file does not sniff as image/*.
var ErrNotImage = errors.New("file is not an image")

// PhotoFromInput turns a --photo argument into the stored photo string.
// URLs and data URIs pass through; anything else is read as a local file
// and encoded as a base64 data URI.
func PhotoFromInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("photo is required")
	}

	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") {
		return input, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	return EncodeImage(data)
}

// EncodeImage returns data as a data URI after checking it is an image.
func EncodeImage(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	// Drop parameters like "; charset=utf-8" from the media type.
	media, _, _ := strings.Cut(mtype.String(), ";")
	return "data:" + media + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// PhotoSummary is a one-line description of a photo for the terminal.
func PhotoSummary(photo string) string {
	if strings.HasPrefix(photo, "data:") {
		header, payload, ok := strings.Cut(photo, ",")
		if !ok {
			return "inline image"
		}
		media := strings.TrimPrefix(header, "data:")
		media, _, _ = strings.Cut(media, ";")
		if media == "" {
			media = "image"
		}
		size := len(payload)
		if strings.HasSuffix(header, ";base64") {
			size = base64.StdEncoding.DecodedLen(len(payload))
		}
		return fmt.Sprintf("inline %s, %s", media, humanBytes(size))
	}
	return photo
}

func humanBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
