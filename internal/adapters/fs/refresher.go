package fs

import (
	"context"
	"os"
	"strings"
	"time"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Refresher = (*StampRefresher)(nil)

// StampRefresher signals the host by rewriting a stamp file it watches. The
// stamp lists the changed artifact paths below a timestamp line.
type StampRefresher struct {
	rename renameFunc
	now    func() time.Time
}

// NewStampRefresher creates a new StampRefresher.
func NewStampRefresher() *StampRefresher {
	return &StampRefresher{rename: os.Rename, now: time.Now}
}

// Refresh rewrites the stamp at stampPath.
func (r *StampRefresher) Refresh(ctx context.Context, stampPath string, changed []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(r.now().UTC().Format(time.RFC3339Nano))
	b.WriteByte('\n')
	for _, path := range changed {
		b.WriteString(path)
		b.WriteByte('\n')
	}

	if err := writeFileAtomic(stampPath, []byte(b.String()), r.rename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRefreshFailed.Error()), "stamp", stampPath)
	}
	return nil
}
