package models

// SkillOffer advertises a skill a user is willing to teach.
//
// Category holds the display label ("Music"), not the chip tag, as in the
// seed catalog.
type SkillOffer struct {
	ID          string `json:"id"`
	Skill       string `json:"skill"`
	User        string `json:"user"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// SeedOffers is the fixed catalog shipped with the client, in display order.
var SeedOffers = []SkillOffer{
	{ID: "1", Skill: "Python Tutoring", User: "Ali", Description: "Learn Python fundamentals from scratch.", Category: "Programming"},
	{ID: "2", Skill: "Guitar Lessons", User: "Fatima", Description: "Acoustic and electric basics with chords and rhythm.", Category: "Music"},
	{ID: "3", Skill: "Drawing Basics", User: "Ahmed", Description: "Pencil drawing, shading, and composition for beginners.", Category: "Art"},
	{ID: "4", Skill: "Yoga & Meditation", User: "Sara", Description: "Breathing, stretching, and mindfulness practices.", Category: "Wellness"},
}
