package domain

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf16"
)

// MockUserID is assigned to every signed-in user; there is no user backend.
const MockUserID = "1"

type User struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

type Session struct {
	User            *User
	IsAuthenticated bool
}

// ProfileUpdate carries the fields to change; empty fields are kept.
type ProfileUpdate struct {
	Name   string
	Email  string
	Avatar string
}

func (u User) Apply(upd ProfileUpdate) User {
	if upd.Name != "" {
		u.Name = upd.Name
	}
	if upd.Email != "" {
		u.Email = upd.Email
	}
	if upd.Avatar != "" {
		u.Avatar = upd.Avatar
	}
	return u
}

var (
	avatarStyles = [...]string{"identicon", "bottts", "jdenticon", "initials"}

	avatarBackgrounds = [...]string{
		"6366f1,3b82f6",
		"64748b,475569",
		"1e293b,334155",
		"0f172a,1e293b",
	}
)

const avatarBaseURL = "https://api.dicebear.com/7.x"

// AvatarURL returns a generated avatar for the email. The same email
// always produces the same avatar.
func AvatarURL(email string) string {
	h := emailHash(email)
	if h < 0 {
		h = -h
	}
	style := avatarStyles[h%int64(len(avatarStyles))]
	colors := avatarBackgrounds[h%int64(len(avatarBackgrounds))]

	u := fmt.Sprintf(
		"%s/%s/svg?seed=%s&backgroundColor=%s&backgroundType=gradientLinear&size=128",
		avatarBaseURL, style, url.QueryEscape(email), colors,
	)
	if style == "initials" {
		var initial string
		if email != "" {
			initial = strings.ToUpper(string([]rune(email)[0]))
		}
		u += "&fontSize=0.4&fontWeight=600&text=" + url.QueryEscape(initial)
	}
	return u
}

// emailHash is the 31-multiplier string hash over UTF-16 code units
// with 32-bit wraparound.
func emailHash(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h<<5 - h + int32(c)
	}
	return int64(h)
}
