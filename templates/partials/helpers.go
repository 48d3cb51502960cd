package partials

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyyur_app_go/services"
)

type csrfTokenKey struct{}

// WithCSRFToken makes token available to CSRFField while a page renders
func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfTokenKey{}, token)
}

// CSRFToken returns the token stored by WithCSRFToken, or ""
func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(csrfTokenKey{}).(string)
	return token
}

// FormatDateTime formats a show time for display
func FormatDateTime(t time.Time, format string) string {
	return services.FormatDateTime(t, format)
}

// Genres joins genres for display
func Genres(genres []string) string {
	return strings.Join(genres, ", ")
}

// Pluralize returns "1 show" / "2 shows"
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
