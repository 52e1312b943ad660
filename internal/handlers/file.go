package handlers

import (
  "fmt"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/studygenius/backend/internal/services"
)

type FileHandler struct {
  fileService services.FileService
}

func NewFileHandler(fileService services.FileService) *FileHandler {
  return &FileHandler{fileService: fileService}
}

func (fh *FileHandler) Upload(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  form, fErr := c.MultipartForm()
  if fErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
    return
  }
  files := form.File["files"]
  if len(files) == 0 {
    RespondError(c, http.StatusBadRequest, "no_files", fmt.Errorf("No files provided"))
    return
  }
  uploaded, uErr := fh.fileService.UploadCourseFiles(c.Request.Context(), courseID, files)
  if uErr != nil {
    RespondError(c, http.StatusBadRequest, "file_upload_failed", uErr)
    return
  }
  RespondOK(c, gin.H{"files": uploaded})
}

func (fh *FileHandler) List(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  files, lErr := fh.fileService.ListCourseFiles(c.Request.Context(), courseID)
  if lErr != nil {
    RespondError(c, http.StatusBadRequest, "file_list_failed", lErr)
    return
  }
  RespondOK(c, gin.H{"files": files})
}

func (fh *FileHandler) Delete(c *gin.Context) {
  courseID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
    return
  }
  fileID, fErr := uuid.Parse(c.Param("fileID"))
  if fErr != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
    return
  }
  if dErr := fh.fileService.DeleteCourseFile(c.Request.Context(), courseID, fileID); dErr != nil {
    RespondError(c, http.StatusBadRequest, "file_delete_failed", dErr)
    return
  }
  RespondOK(c, gin.H{"message": "file deleted"})
}
