package storage

import (
	"context"
	"io"
	"time"
)

// Storage stores uploaded media under a generated name and hands back that
// name. Callers keep only the name; URLs are resolved on demand.
type Storage interface {
	Upload(ctx context.Context, folder, fileName string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, objectName string) error
	URL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
