package render

import (
	"context"
)

// Renderer turns a parameter bundle into a byte representation (HTML, JSON,
// terminal text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, params Params) ([]byte, error)
}
