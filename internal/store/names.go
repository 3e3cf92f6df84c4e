package store

import "strings"

const defaultImageExt = "png"

// SanitizeExt lowercases ext and keeps ASCII letters and digits only.
// nil or an empty result gives "png".
func SanitizeExt(ext *string) string {
	if ext == nil {
		return defaultImageExt
	}
	var b strings.Builder
	for _, r := range strings.ToLower(*ext) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return defaultImageExt
	}
	return b.String()
}

// checkID rejects ids that would escape or collapse the storage root.
func checkID(op, id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, "/\\\x00") {
		return newErr(KindInvalidID, op, id, nil)
	}
	return nil
}
