package partials

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFField(t *testing.T) {
	t.Run("Renders token from context", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithCSRFToken(context.Background(), `tok"en`)
		require.NoError(t, CSRFField().Render(ctx, &buf))
		assert.Equal(t, `<input type="hidden" name="csrf_token" value="tok&#34;en">`, buf.String())
	})

	t.Run("Empty without token", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, CSRFField().Render(context.Background(), &buf))
		assert.Contains(t, buf.String(), `value=""`)
		assert.Equal(t, "", CSRFToken(context.Background()))
	})
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 Past Show", Pluralize(1, "Past Show"))
	assert.Equal(t, "0 Upcoming Shows", Pluralize(0, "Upcoming Show"))
	assert.Equal(t, "2 upcoming shows", Pluralize(2, "upcoming show"))
}
