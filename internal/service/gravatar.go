package service

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL returns the avatar URL for an email: 200px, PG rated, with the
// "mystery man" fallback. The URL is protocol relative like the gravatar npm
// package produces, so existing clients render it unchanged.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
