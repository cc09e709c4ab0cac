package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/services"
	"github.com/solucioning/fleetforms/utils"
)

type FileHandler struct {
	files   *services.FileService
	logRepo repositories.LogRepo
}

func NewFileHandler(files *services.FileService, logRepo repositories.LogRepo) *FileHandler {
	return &FileHandler{files: files, logRepo: logRepo}
}

// POST /api/files/upload/:incidenciaId (traffic chief only)
func (h *FileHandler) Upload(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	incidentID, err := utils.ParseIDParam(c, "incidenciaId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador de incidencia inválido"})
		return
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "La petición debe ser multipart/form-data"})
		return
	}
	headers := multipartForm.File["archivos"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No se ha enviado ningún archivo"})
		return
	}

	results, err := h.files.UploadBatch(c.Request.Context(), incidentID, claims.UserID, headers)
	switch {
	case errors.Is(err, services.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Incidencia no encontrada"})
		return
	case errors.Is(err, services.ErrNotIncidentOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "La incidencia pertenece a otro jefe de tráfico"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al subir archivos"})
		return
	}

	stored := 0
	for _, r := range results {
		if r.Stored {
			stored++
		}
	}
	utils.LogAction(c, &claims.UserID, "subida_archivos", "exito",
		fmt.Sprintf("Incidencia %d: %d/%d archivos almacenados", incidentID, stored, len(results)), nil, h.logRepo)

	status := http.StatusCreated
	if stored == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"archivos": results})
}

// GET /api/files/incidencia/:incidenciaId
func (h *FileHandler) ListForIncident(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	incidentID, err := utils.ParseIDParam(c, "incidenciaId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador de incidencia inválido"})
		return
	}

	files, err := h.files.ListForIncident(incidentID, claims.UserID, claims.Role)
	switch {
	case errors.Is(err, services.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Incidencia no encontrada"})
		return
	case errors.Is(err, services.ErrNotIncidentOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "La incidencia pertenece a otro jefe de tráfico"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al listar archivos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"archivos": files})
}

// GET /api/files/download/:archivoId
func (h *FileHandler) Download(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	fileID, err := utils.ParseIDParam(c, "archivoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador de archivo inválido"})
		return
	}

	file, reader, err := h.files.Download(c.Request.Context(), fileID, claims.UserID, claims.Role)
	switch {
	case errors.Is(err, services.ErrFileNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Archivo no encontrado"})
		return
	case errors.Is(err, services.ErrFileMissingOnDisk):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "El archivo no está disponible en el almacenamiento"})
		return
	case errors.Is(err, services.ErrNotIncidentOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "El archivo pertenece a otro jefe de tráfico"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al descargar el archivo"})
		return
	}
	defer reader.Close()

	utils.LogAction(c, &claims.UserID, "descarga_archivo", "exito",
		fmt.Sprintf("Archivo %d (%s)", file.ID, file.OriginalName), nil, h.logRepo)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	c.Header("Content-Type", file.MimeType)
	c.Header("Content-Length", fmt.Sprintf("%d", file.Size))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already written; nothing sensible left to send.
		c.Abort()
	}
}

// DELETE /api/files/:archivoId (uploader only)
func (h *FileHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	fileID, err := utils.ParseIDParam(c, "archivoId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Identificador de archivo inválido"})
		return
	}

	err = h.files.Delete(c.Request.Context(), fileID, claims.UserID)
	switch {
	case errors.Is(err, services.ErrFileNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Archivo no encontrado"})
		return
	case errors.Is(err, services.ErrNotUploader):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Solo quien subió el archivo puede eliminarlo"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al eliminar el archivo"})
		return
	}

	utils.LogAction(c, &claims.UserID, "borrado_archivo", "exito", fmt.Sprintf("Archivo %d eliminado", fileID), nil, h.logRepo)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Archivo eliminado correctamente"})
}
