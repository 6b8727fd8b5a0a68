package extraction

import "errors"

var (
	ErrPDFDirRequired      = errors.New("extraction: pdf folder is required")
	ErrPDFDirNotFound      = errors.New("extraction: pdf folder not found")
	ErrOutputRequired      = errors.New("extraction: output file is required")
	ErrWriteOutput         = errors.New("extraction: failed to write output")
	ErrUploaderUnavailable = errors.New("extraction: upload requested but no object storage configured")
	ErrUpload              = errors.New("extraction: failed to upload output")
)
