package diagram

import (
	"strings"
	"unicode"
)

// DefaultFilename is used when a title normalizes to nothing.
const DefaultFilename = "diagrams_image"

// NormalizeFilename derives an output filename stem from a title.
//
// Letters are lowercased, and every run of whitespace or punctuation becomes
// a single underscore. Letters, digits and dashes are kept. Leading and
// trailing underscores are trimmed:
//
//	"TFE FDO on Docker in Mounted Disk mode" -> "tfe_fdo_on_docker_in_mounted_disk_mode"
//	"Web / API (prod)"                       -> "web_api_prod"
func NormalizeFilename(title string) string {
	var b strings.Builder
	pending := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return DefaultFilename
	}
	return b.String()
}
