package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"sommelier-srv/internal/extraction"
	"sommelier-srv/pkg/minio"
)

const jsonContentType = "application/json"

// upload stores blob at prefix+name in the configured bucket and returns the object key.
func (uc *implUseCase) upload(ctx context.Context, blob []byte, prefix, name string) (string, error) {
	if err := uc.minio.CreateBucket(ctx, uc.bucket); err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.upload: CreateBucket failed: %v", err)
		return "", fmt.Errorf("%w: %v", extraction.ErrUpload, err)
	}

	object := objectName(prefix, name)
	info, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.bucket,
		ObjectName:  object,
		Reader:      bytes.NewReader(blob),
		Size:        int64(len(blob)),
		ContentType: jsonContentType,
		Metadata:    map[string]string{"source": "sommelier-extract"},
	})
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.upload: UploadFile failed: %v", err)
		return "", fmt.Errorf("%w: %v", extraction.ErrUpload, err)
	}

	uc.l.Infof(ctx, "extraction.usecase.upload: uploaded %s/%s (%d bytes)", info.BucketName, info.ObjectName, info.Size)
	return object, nil
}

// objectName joins prefix and name with a single slash.
func objectName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
