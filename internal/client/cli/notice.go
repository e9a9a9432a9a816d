package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/client/latency"
)

var errNotSignedIn = errors.New("not signed in")

// progressTick is how often withLoading prints a progress dot.
var progressTick = 250 * time.Millisecond

// notice prints a blocking message in the form "! Title: message".
func notice(w io.Writer, title, message string) {
	fmt.Fprintf(w, "! %s: %s\n", title, message)
}

// withLoading runs fn through latency.Async, printing label followed by a
// dot per progressTick until the result arrives.
func withLoading[T any](ctx context.Context, w io.Writer, label string, fn func(context.Context) (T, error)) (T, error) {
	ch := latency.Async(ctx, fn)
	fmt.Fprint(w, label)

	t := time.NewTicker(progressTick)
	defer t.Stop()

	for {
		select {
		case r := <-ch:
			fmt.Fprintln(w)
			return r.Value, r.Err
		case <-t.C:
			fmt.Fprint(w, ".")
		}
	}
}
