package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hireloop/hireloop/internal/application/billing/quota"
	"github.com/hireloop/hireloop/internal/domain/analytics"
	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// WorkbookExporter renders a job's analytics as a spreadsheet.
type WorkbookExporter interface {
	Filename(jobCode string, generated time.Time) string
	WriteJobDetail(w io.Writer, detail *analytics.JobDetail, generated time.Time) error
}

// FeatureChecker is satisfied by quota.Service.
type FeatureChecker interface {
	CheckFeature(ctx context.Context, tenantID uint, feature billing.Feature) (billing.FeatureCheck, error)
}

type ExportJobDetailResult struct {
	Filename string
	Content  []byte
}

type ExportJobDetailUseCase struct {
	detail   *GetJobDetailUseCase
	features FeatureChecker
	exporter WorkbookExporter
	logger   logger.Interface
}

func NewExportJobDetailUseCase(
	detail *GetJobDetailUseCase,
	features FeatureChecker,
	exporter WorkbookExporter,
	logger logger.Interface,
) *ExportJobDetailUseCase {
	return &ExportJobDetailUseCase{
		detail:   detail,
		features: features,
		exporter: exporter,
		logger:   logger,
	}
}

func (uc *ExportJobDetailUseCase) Execute(ctx context.Context, query GetJobDetailQuery) (*ExportJobDetailResult, error) {
	tenant, job, err := uc.detail.load(ctx, query)
	if err != nil {
		return nil, err
	}

	check, err := uc.features.CheckFeature(ctx, tenant.ID, billing.FeatureFullAnalyticsEngine)
	if err != nil {
		return nil, fmt.Errorf("failed to check feature: %w", err)
	}
	if err := quota.FeatureDenied(check); err != nil {
		uc.logger.Infow("analytics export denied", "tenant", tenant.Slug, "jd_code", job.Code)
		return nil, err
	}

	detail, err := uc.detail.Execute(ctx, query)
	if err != nil {
		return nil, err
	}

	generated := uc.detail.now()
	var buf bytes.Buffer
	if err := uc.exporter.WriteJobDetail(&buf, detail, generated); err != nil {
		uc.logger.Errorw("failed to render analytics workbook", "error", err, "jd_code", job.Code)
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	uc.logger.Infow("analytics exported", "tenant", tenant.Slug, "jd_code", job.Code, "bytes", buf.Len())
	return &ExportJobDetailResult{
		Filename: uc.exporter.Filename(job.Code, generated),
		Content:  buf.Bytes(),
	}, nil
}
