package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path"
	"strings"

	"github.com/solucioning/fleetforms/config"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/storage"
	"github.com/solucioning/fleetforms/utils"
)

var (
	ErrIncidentNotFound   = errors.New("incident not found")
	ErrNotIncidentOwner   = errors.New("incident belongs to another supervisor")
	ErrFileNotFound       = errors.New("file not found")
	ErrFileMissingOnDisk  = errors.New("file record exists but object is missing in storage")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrDuplicateFile      = errors.New("a file with the same name and size is already attached")
	ErrTooManyFiles       = errors.New("attachment limit reached for this incident")
	ErrNotUploader        = errors.New("only the uploader can delete a file")
)

// Allow-list mirrors what supervisors actually send from the field: photos,
// office documents, plain text and compressed bundles.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/zip":              true,
	"application/x-zip-compressed": true,
	"application/x-rar-compressed": true,
	"text/plain": true,
	"text/csv":   true,
}

func mimeAllowed(contentType, filename string) bool {
	// Strip any "; charset=..." suffix before matching.
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(contentType)
	if allowedMimeTypes[contentType] {
		return true
	}
	ext := strings.ToLower(path.Ext(filename))
	return ext == ".zip" || ext == ".rar"
}

type FileService struct {
	repos *repositories.Repos
	store storage.Store
}

func NewFileService(repos *repositories.Repos, store storage.Store) *FileService {
	return &FileService{repos: repos, store: store}
}

func (s *FileService) incidentForSupervisor(incidentID, supervisorID uint) (models.IncidentForm, error) {
	incident, err := s.repos.Form.GetIncidentFormByID(incidentID)
	if err != nil {
		return models.IncidentForm{}, ErrIncidentNotFound
	}
	if incident.UserID != supervisorID {
		return models.IncidentForm{}, ErrNotIncidentOwner
	}
	return incident, nil
}

// StoreFile validates and persists a single uploaded file for an incident.
// The metadata insert enforces the per-incident cap transactionally; if it
// fails, the already-written object is removed best-effort.
func (s *FileService) StoreFile(ctx context.Context, incidentID, uploaderID uint, header *multipart.FileHeader) (*models.IncidentFile, error) {
	if header.Size > config.MaxFileSizeBytes() {
		return nil, fmt.Errorf("%w (max %dMB)", ErrFileTooLarge, config.MaxFileSizeMB)
	}

	contentType := header.Header.Get("Content-Type")
	if !mimeAllowed(contentType, header.Filename) {
		return nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, contentType)
	}

	duplicate, err := s.repos.File.ExistsByNameAndSize(incidentID, header.Filename, header.Size)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, ErrDuplicateFile
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	storedName := utils.StoredFileName(header.Filename)
	key := "incidencias/" + storedName

	if err := s.store.Save(ctx, key, src, header.Size, contentType); err != nil {
		return nil, err
	}

	file := &models.IncidentFile{
		IncidentID:   incidentID,
		OriginalName: header.Filename,
		StoredName:   storedName,
		MimeType:     contentType,
		Size:         header.Size,
		StoragePath:  key,
		UploadedBy:   uploaderID,
	}

	if err := s.repos.File.CreateWithCap(file, config.MaxFilesPerIncident); err != nil {
		if cleanupErr := s.store.Delete(ctx, key); cleanupErr != nil {
			log.Printf("Failed to clean up orphaned object %s: %v", key, cleanupErr)
		}
		if errors.Is(err, repositories.ErrAttachmentLimit) {
			return nil, fmt.Errorf("%w (max %d)", ErrTooManyFiles, config.MaxFilesPerIncident)
		}
		return nil, err
	}

	return file, nil
}

// UploadBatch stores each file independently: valid files stay stored even
// when siblings in the same batch fail.
func (s *FileService) UploadBatch(ctx context.Context, incidentID, uploaderID uint, headers []*multipart.FileHeader) ([]response.UploadResult, error) {
	if _, err := s.incidentForSupervisor(incidentID, uploaderID); err != nil {
		return nil, err
	}

	results := make([]response.UploadResult, 0, len(headers))
	for _, header := range headers {
		file, err := s.StoreFile(ctx, incidentID, uploaderID, header)
		result := response.UploadResult{OriginalName: header.Filename}
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Stored = true
			result.File = file
		}
		results = append(results, result)
	}
	return results, nil
}

// ListForIncident applies the read rule: the operations chief sees any
// incident's files, a supervisor only their own.
func (s *FileService) ListForIncident(incidentID, callerID uint, role models.UserRole) ([]models.IncidentFile, error) {
	if role != models.RoleOperationsChief {
		if _, err := s.incidentForSupervisor(incidentID, callerID); err != nil {
			return nil, err
		}
	} else if _, err := s.repos.Form.GetIncidentFormByID(incidentID); err != nil {
		return nil, ErrIncidentNotFound
	}

	return s.repos.File.ListByIncident(incidentID)
}

// Download returns the metadata row and an open reader for the object.
// A present row with a missing object is reported as ErrFileMissingOnDisk,
// distinct from an unknown id.
func (s *FileService) Download(ctx context.Context, fileID, callerID uint, role models.UserRole) (models.IncidentFile, io.ReadCloser, error) {
	file, err := s.repos.File.GetByID(fileID)
	if err != nil {
		return models.IncidentFile{}, nil, ErrFileNotFound
	}

	if role != models.RoleOperationsChief && file.Incident.UserID != callerID {
		return models.IncidentFile{}, nil, ErrNotIncidentOwner
	}

	exists, err := s.store.Exists(ctx, file.StoragePath)
	if err != nil {
		return models.IncidentFile{}, nil, err
	}
	if !exists {
		return models.IncidentFile{}, nil, ErrFileMissingOnDisk
	}

	reader, err := s.store.Open(ctx, file.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.IncidentFile{}, nil, ErrFileMissingOnDisk
		}
		return models.IncidentFile{}, nil, err
	}
	return file, reader, nil
}

// Delete removes object and row. Storage removal is best-effort: the row is
// deleted even when the object cannot be removed.
func (s *FileService) Delete(ctx context.Context, fileID, callerID uint) error {
	file, err := s.repos.File.GetByID(fileID)
	if err != nil {
		return ErrFileNotFound
	}

	if file.UploadedBy != callerID {
		return ErrNotUploader
	}

	if err := s.store.Delete(ctx, file.StoragePath); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Failed to delete object %s: %v", file.StoragePath, err)
	}

	return s.repos.File.DeleteByID(fileID)
}
