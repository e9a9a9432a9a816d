package models

import (
	"strings"
	"unicode/utf8"
)

// User is the identity and profile of the person using the client.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Bio           string   `json:"bio"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
}

// FirstName returns the first word of the display name.
func (u User) FirstName() string {
	f := strings.Fields(u.Name)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Initials returns the first letter of every word of the display name,
// used as avatar text.
func (u User) Initials() string {
	var b strings.Builder
	for _, w := range strings.Fields(u.Name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return b.String()
}

// Session is a snapshot of the authenticated-user context.
type Session struct {
	IsLoggedIn  bool
	CurrentUser *User
}
