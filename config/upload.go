package config

import "os"

// AllowedExtensions whitelists upload file types, lower case without the dot.
var AllowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// UploadFolder returns the directory uploaded images are written to.
func UploadFolder() string {
	if dir := os.Getenv("UPLOAD_FOLDER"); dir != "" {
		return dir
	}
	return "static/images"
}
