package usecase

import (
	"sommelier-srv/internal/extraction"
	"sommelier-srv/pkg/log"
	"sommelier-srv/pkg/minio"
	"sommelier-srv/pkg/pdf"
)

// DefaultConcurrency bounds the number of PDFs parsed at once.
const DefaultConcurrency = 4

type implUseCase struct {
	l           log.Logger
	extractor   pdf.IExtractor
	minio       minio.MinIO
	bucket      string
	concurrency int
}

// New creates a new extraction usecase. storage may be nil when uploads are not used.
func New(l log.Logger, extractor pdf.IExtractor, storage minio.MinIO, bucket string) extraction.UseCase {
	return &implUseCase{
		l:           l,
		extractor:   extractor,
		minio:       storage,
		bucket:      bucket,
		concurrency: DefaultConcurrency,
	}
}
