package services

import (
  "context"
  "fmt"
  "mime/multipart"
  "path/filepath"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/studygenius/backend/internal/logger"
  "github.com/studygenius/backend/internal/repos"
  "github.com/studygenius/backend/internal/types"
)

type FileService interface {
  UploadCourseFiles(ctx context.Context, courseID uuid.UUID, files []*multipart.FileHeader) ([]*types.CourseFile, error)
  ListCourseFiles(ctx context.Context, courseID uuid.UUID) ([]*types.CourseFile, error)
  DeleteCourseFile(ctx context.Context, courseID, fileID uuid.UUID) error
}

type fileService struct {
  db            *gorm.DB
  log           *logger.Logger
  courseService CourseService
  fileRepo      repos.CourseFileRepo
  bucketService BucketService
}

func NewFileService(
  db *gorm.DB,
  log *logger.Logger,
  courseService CourseService,
  fileRepo repos.CourseFileRepo,
  bucketService BucketService,
) FileService {
  serviceLog := log.With("service", "FileService")
  return &fileService{
    db:            db,
    log:           serviceLog,
    courseService: courseService,
    fileRepo:      fileRepo,
    bucketService: bucketService,
  }
}

func storageKeyFor(courseID, fileID uuid.UUID, originalName string) string {
  return fmt.Sprintf("courses/%s/%s-%s", courseID, fileID, filepath.Base(originalName))
}

func (fs *fileService) UploadCourseFiles(ctx context.Context, courseID uuid.UUID, files []*multipart.FileHeader) ([]*types.CourseFile, error) {
  if _, err := fs.courseService.GetCourse(ctx, courseID); err != nil {
    return nil, err
  }
  if len(files) == 0 {
    return []*types.CourseFile{}, nil
  }
  uploaded := make([]*types.CourseFile, 0, len(files))
  for _, header := range files {
    fileID := uuid.New()
    key := storageKeyFor(courseID, fileID, header.Filename)

    src, oErr := header.Open()
    if oErr != nil {
      return nil, fmt.Errorf("Failed to open uploaded file %q: %w", header.Filename, oErr)
    }
    upErr := fs.bucketService.UploadFile(ctx, key, src)
    src.Close()
    if upErr != nil {
      return nil, fmt.Errorf("Failed to upload file %q: %w", header.Filename, upErr)
    }

    now := time.Now()
    record := &types.CourseFile{
      ID:           fileID,
      CourseID:     courseID,
      OriginalName: header.Filename,
      StorageKey:   key,
      FileURL:      fs.bucketService.GetPublicURL(key),
      MimeType:     header.Header.Get("Content-Type"),
      SizeBytes:    header.Size,
      Status:       "uploaded",
      UploadedAt:   &now,
    }
    created, cErr := fs.fileRepo.Create(ctx, nil, []*types.CourseFile{record})
    if cErr != nil {
      return nil, fmt.Errorf("Failed to record uploaded file %q: %w", header.Filename, cErr)
    }
    uploaded = append(uploaded, created[0])
  }
  return uploaded, nil
}

func (fs *fileService) ListCourseFiles(ctx context.Context, courseID uuid.UUID) ([]*types.CourseFile, error) {
  if _, err := fs.courseService.GetCourse(ctx, courseID); err != nil {
    return nil, err
  }
  files, gErr := fs.fileRepo.GetByCourseIDs(ctx, nil, []uuid.UUID{courseID})
  if gErr != nil {
    return nil, fmt.Errorf("Failed to list course files: %w", gErr)
  }
  return files, nil
}

func (fs *fileService) DeleteCourseFile(ctx context.Context, courseID, fileID uuid.UUID) error {
  if _, err := fs.courseService.GetCourse(ctx, courseID); err != nil {
    return err
  }
  files, gErr := fs.fileRepo.GetByIDs(ctx, nil, []uuid.UUID{fileID})
  if gErr != nil {
    return fmt.Errorf("Failed to load course file: %w", gErr)
  }
  if len(files) == 0 || files[0].CourseID != courseID {
    return fmt.Errorf("File not found")
  }
  if dErr := fs.bucketService.DeleteFile(ctx, files[0].StorageKey); dErr != nil {
    // keep going; the row is the source of truth for listings
    fs.log.Warn("Failed to delete object from storage", "key", files[0].StorageKey, "error", dErr)
  }
  if dErr := fs.fileRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{fileID}); dErr != nil {
    return fmt.Errorf("Failed to delete course file: %w", dErr)
  }
  return nil
}
