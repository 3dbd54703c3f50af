package wiki

import "strings"

// ImageMode picks the filter SelectImage applies.
type ImageMode int

const (
	// General drops SVG files, which chat embeds cannot display.
	General ImageMode = iota
	// RandomSingle keeps only JPEG files. Used for a single random article.
	RandomSingle
)

// SelectImage picks at most one representative image. After filtering by
// mode, a lone image is used as is; otherwise the second one is chosen.
func SelectImage(images []string, mode ImageMode) (string, bool) {
	filtered := make([]string, 0, len(images))
	for _, img := range images {
		switch mode {
		case RandomSingle:
			if strings.HasSuffix(img, "jpg") {
				filtered = append(filtered, img)
			}
		default:
			if !strings.HasSuffix(img, "svg") {
				filtered = append(filtered, img)
			}
		}
	}

	switch len(filtered) {
	case 0:
		return "", false
	case 1:
		return filtered[0], true
	default:
		return filtered[1], true
	}
}
