package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/client/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_RequiresSignIn(t *testing.T) {
	a, out := newTestApp(t, "")
	ctx := context.Background()

	require.ErrorIs(t, a.List(ctx), errNotSignedIn)
	require.ErrorIs(t, a.Search(ctx, "py"), errNotSignedIn)
	require.ErrorIs(t, a.Refresh(ctx), errNotSignedIn)
	require.ErrorIs(t, a.Show(ctx, "1"), errNotSignedIn)
	require.ErrorIs(t, a.Connect(ctx, "1"), errNotSignedIn)

	assert.Equal(t, RouteLogin, a.route)
	assert.Contains(t, out.String(), "! Sign in required: Please sign in first.")
}

func TestList_ShowsFeedInOrder(t *testing.T) {
	a, out := signedInApp(t, "")
	a.route = RouteProfile

	require.NoError(t, a.List(context.Background()))

	assert.Equal(t, RouteHome, a.route)
	s := out.String()
	iPy := strings.Index(s, "Python Tutoring")
	iGu := strings.Index(s, "Guitar Lessons")
	iDr := strings.Index(s, "Drawing Basics")
	iYo := strings.Index(s, "Yoga & Meditation")
	assert.True(t, iPy >= 0 && iPy < iGu && iGu < iDr && iDr < iYo, s)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query   string
		want    []string
		notWant []string
	}{
		{"python", []string{"Python Tutoring"}, []string{"Guitar Lessons"}},
		{"MUSIC", []string{"Guitar Lessons"}, []string{"Python Tutoring", "Drawing Basics"}},
		{"", []string{"Python Tutoring", "Guitar Lessons", "Drawing Basics", "Yoga & Meditation"}, nil},
		{"zzz", []string{"No skills found"}, []string{"Python Tutoring"}},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			a, out := signedInApp(t, "")
			require.NoError(t, a.Search(context.Background(), tc.query))
			for _, w := range tc.want {
				assert.Contains(t, out.String(), w)
			}
			for _, nw := range tc.notWant {
				assert.NotContains(t, out.String(), nw)
			}
		})
	}
}

func TestRefresh_Home(t *testing.T) {
	a, out := signedInApp(t, "")

	require.NoError(t, a.Refresh(context.Background()))

	assert.True(t, strings.HasPrefix(out.String(), "Refreshing"))
	assert.Contains(t, out.String(), "Yoga & Meditation")
}

func TestRefresh_Cancelled(t *testing.T) {
	a, out := signedInApp(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, a.Refresh(ctx), context.Canceled)
	assert.Contains(t, out.String(), "! Error:")
}

func TestShow(t *testing.T) {
	a, out := signedInApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.Show(ctx, "3"))
	assert.Contains(t, out.String(), "Drawing Basics\nOffered by: Ahmed\n\nPencil drawing")
	assert.Contains(t, out.String(), "Category: Art")
	assert.Contains(t, out.String(), "connect 3")

	out.Reset()
	require.ErrorIs(t, a.Show(ctx, "99"), catalog.ErrNotFound)
	assert.Contains(t, out.String(), `! Not found: No offer with ID "99".`)

	out.Reset()
	require.NoError(t, a.Show(ctx, ""))
	assert.Contains(t, out.String(), "Usage: show <id>")
}

func TestConnect(t *testing.T) {
	a, out := signedInApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.Connect(ctx, "1"))
	assert.Contains(t, out.String(), "! Success: Connection request sent to Ali!")

	out.Reset()
	require.ErrorIs(t, a.Connect(ctx, "nope"), catalog.ErrNotFound)

	out.Reset()
	require.NoError(t, a.Connect(ctx, ""))
	assert.Contains(t, out.String(), "Usage: connect <id>")
}
