package models

import (
	"fmt"
	"strings"
)

// Category is a fixed classification tag attached to a skill offer.
type Category string

const (
	CategoryMusic       Category = "music"
	CategoryLanguage    Category = "language"
	CategoryArt         Category = "art"
	CategoryProgramming Category = "programming"
	CategoryWellness    Category = "wellness"
	CategoryPhotography Category = "photography"
	CategoryCooking     Category = "cooking"
	CategorySports      Category = "sports"
	CategoryOther       Category = "other"
)

// CategoryDef describes how a category is shown as a selectable chip.
type CategoryDef struct {
	ID    Category
	Label string
	Emoji string
}

var categories = []CategoryDef{
	{CategoryMusic, "Music", "🎵"},
	{CategoryLanguage, "Language", "🗣️"},
	{CategoryArt, "Art", "🎨"},
	{CategoryProgramming, "Programming", "💻"},
	{CategoryWellness, "Wellness", "🧘"},
	{CategoryPhotography, "Photography", "📸"},
	{CategoryCooking, "Cooking", "👨‍🍳"},
	{CategorySports, "Sports", "⚽"},
	{CategoryOther, "Other", "✨"},
}

// Categories returns the nine category chips in display order.
func Categories() []CategoryDef {
	out := make([]CategoryDef, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a tag or label case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range categories {
		if string(c.ID) == s || strings.ToLower(c.Label) == s {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Def returns the chip definition of c. Unknown categories fall back to
// "other".
func (c Category) Def() CategoryDef {
	for _, d := range categories {
		if d.ID == c {
			return d
		}
	}
	return categories[len(categories)-1]
}

func (c Category) String() string {
	d := c.Def()
	return d.Emoji + " " + d.Label
}
