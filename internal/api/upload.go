package api

import (
	"errors"
	"log/slog"
	"net/http"

	"cloud-gateway/internal/objectstore"
)

// UploadService puts one multipart file into the configured bucket, keyed
// by its filename.
type UploadService struct {
	name     string
	bucket   string
	uploader objectstore.FileUploader
	logger   *slog.Logger
}

func NewUploadService(name, bucket string, uploader objectstore.FileUploader, logger *slog.Logger) *UploadService {
	return &UploadService{
		name:     name,
		bucket:   bucket,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *UploadService) Name() string       { return s.name }
func (s *UploadService) ActionPath() string { return "upload" }

func (s *UploadService) Handle(r *http.Request) Outcome {
	req, err := ValidateUpload(r)
	if err != nil {
		return validationOutcome(err)
	}
	defer req.File.Close()

	echo := map[string]string{"filename": req.FileName}

	if s.bucket == "" {
		return Skipped{Action: "S3 upload", TargetEnv: "BUCKET_NAME", Echo: echo}
	}

	location, err := s.uploader.Upload(r.Context(), req.File, s.bucket, req.FileName, req.ContentType)
	if err != nil {
		s.logger.Error("s3 upload failed",
			slog.String("bucket", s.bucket),
			slog.String("key", req.FileName),
			slog.Any("error", err),
		)
		return gatewayOutcome(err)
	}

	s.logger.Info("s3 upload succeeded",
		slog.String("bucket", s.bucket),
		slog.String("key", req.FileName),
		slog.String("location", location),
	)

	return Succeeded{
		Message:   "File uploaded",
		TargetKey: "bucket",
		Target:    s.bucket,
		Echo:      echo,
	}
}

func validationOutcome(err error) Outcome {
	var vf ValidationFailed
	if errors.As(err, &vf) {
		return vf
	}
	return ValidationFailed{Message: err.Error()}
}
