package render

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// String renders a component to a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
