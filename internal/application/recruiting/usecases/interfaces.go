package usecases

import (
	"context"
	"io"
	"os"

	"github.com/hireloop/hireloop/internal/domain/billing"
)

// ResumeStore keeps uploaded résumé files.
type ResumeStore interface {
	Save(key, originalName string, r io.Reader) (string, error)
	Path(name string) string
	Open(name string) (*os.File, error)
	Delete(name string) error
}

type TextExtractor interface {
	Extract(path string) (string, error)
}

// HTMLRenderer turns a job body into sanitized HTML.
type HTMLRenderer interface {
	Render(body string) (string, error)
}

// QuotaService is satisfied by quota.Service.
type QuotaService interface {
	CheckLimit(ctx context.Context, tenantID uint, resource billing.Resource) (billing.LimitCheck, error)
	RecordResume(ctx context.Context, tenantID uint) error
}

// ScreeningObserver receives the outcome of every application.
type ScreeningObserver interface {
	RecordResumeScreened(result string)
}
