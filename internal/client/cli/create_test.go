package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/client/posting"
	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_Success(t *testing.T) {
	a, out := signedInApp(t, "Guitar Basics\n1\nLearn chords\nand strumming\n\n")

	require.NoError(t, a.Post(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Posting...")
	assert.Contains(t, s, "! Posted: Your skill has been posted successfully!")
	assert.Equal(t, posting.Draft{}, a.form.Draft(), "form is cleared")
	assert.Equal(t, RouteHome, a.route)
	feed := s[strings.Index(s, "! Posted"):]
	assert.Contains(t, feed, "Guitar Lessons")
	assert.NotContains(t, feed, "Guitar Basics", "the catalog is not changed by posting")
}

func TestPost_ByCategoryName(t *testing.T) {
	a, out := signedInApp(t, "Sourdough\nCooking\nBread from scratch\n\n")

	require.NoError(t, a.Post(context.Background()))
	assert.Contains(t, out.String(), "! Posted:")
}

func TestPost_ValidationKeepsDraft(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		reason  string
		message string
	}{
		{"missing description", "Guitar\n1\n\n", posting.MissingSkillOrDescription, "Please enter both a skill name and description."},
		{"missing category", "Guitar\n\nLearn chords\n\n", posting.MissingCategory, "Please select a category."},
		{"unknown category", "Guitar\n42\nLearn chords\n\n", posting.UnknownCategory, `Unknown category "42".`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, out := signedInApp(t, tc.input)

			err := a.Post(context.Background())
			var verr *common.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.reason, verr.Reason)

			assert.Contains(t, out.String(), "! Incomplete: "+tc.message)
			assert.Equal(t, "Guitar", a.form.Draft().Skill)
			assert.Equal(t, RouteCreate, a.route)
		})
	}
}

func TestPost_InputEnds(t *testing.T) {
	a, _ := signedInApp(t, "Guitar\n")
	require.Error(t, a.Post(context.Background()))
}

func TestCategories_NineChips(t *testing.T) {
	a, out := newTestApp(t, "")
	a.Categories()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "1) "))
	assert.Contains(t, lines[0], "Music [music]")
	assert.Contains(t, lines[8], "Other [other]")

	for i, l := range lines {
		tag := l[strings.LastIndex(l, "[")+1 : len(l)-1]
		c, err := models.ParseCategory(tag)
		require.NoError(t, err, l)
		assert.Equal(t, models.Categories()[i].ID, c)
	}
}

func TestChipByNumber(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1", "music"},
		{" 4 ", "programming"},
		{"9", "other"},
		{"0", "0"},
		{"10", "10"},
		{"Art", "Art"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, chipByNumber(tc.in), tc.in)
	}
}
