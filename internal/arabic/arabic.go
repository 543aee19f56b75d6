// Package arabic canonicalizes Arabic text so that stored values and search
// queries compare in the same space.
package arabic

import "strings"

var replacer = strings.NewReplacer(
	"أ", "ا", // أ -> ا
	"إ", "ا", // إ -> ا
	"آ", "ا", // آ -> ا
	"ة", "ه", // ة -> ه
	"ى", "ي", // ى -> ي
	"ـ", "", // tatweel stripped
)

// Normalize maps hamza-bearing alef forms to bare alef, ta marbuta to ha and
// alef maksura to ya, strips tatweel and trims surrounding whitespace.
// Idempotent.
func Normalize(text string) string {
	return strings.TrimSpace(replacer.Replace(text))
}
