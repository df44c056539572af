package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"heic": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedExt reports whether a normalized extension is accepted for upload.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// ContentTypeForExt maps a normalized extension to the MIME type sent to
// object storage and the AI provider.
func ContentTypeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "heic":
		return "image/heic"
	default:
		return "application/octet-stream"
	}
}
