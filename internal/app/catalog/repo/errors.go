package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
)

// wrapInfra translates Spanner transport failures into the domain taxonomy.
// NotFound is handled at call sites because it maps to different sentinels
// per table.
func wrapInfra(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, domain.ErrBackendUnavailable)
	}

	switch spanner.ErrCode(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w", op, domain.ErrBackendUnavailable)
	case codes.Aborted:
		return fmt.Errorf("%s: %w", op, domain.ErrConcurrentUpdate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
