package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/services"
	"github.com/solucioning/fleetforms/utils"
)

type FormHandler struct {
	forms   *services.FormService
	files   *services.FileService
	reports *services.ReportService
	logRepo repositories.LogRepo
}

func NewFormHandler(forms *services.FormService, files *services.FileService, reports *services.ReportService, logRepo repositories.LogRepo) *FormHandler {
	return &FormHandler{forms: forms, files: files, reports: reports, logRepo: logRepo}
}

func pagination(query dto.ListFormsQuery, total int64) response.Pagination {
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return response.Pagination{Page: query.Page, Limit: limit, Total: total, Pages: pages}
}

func listParams(query dto.ListFormsQuery) repositories.FormListParams {
	return repositories.FormListParams{
		Page:  query.Page,
		Limit: query.Limit,
		Date:  query.Date,
		Type:  query.Type,
	}
}

// POST /api/formularios/apertura (traffic chief only)
func (h *FormHandler) CreateOpening(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	var input dto.CreateOpeningFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Datos del formulario inválidos"})
		return
	}

	form, err := h.forms.CreateOpeningForm(claims.UserID, claims.Username, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al guardar el formulario de apertura"})
		return
	}

	utils.LogAction(c, &claims.UserID, "formulario_apertura", "exito", fmt.Sprintf("Formulario %d creado", form.ID), nil, h.logRepo)
	c.JSON(http.StatusCreated, form)
}

// POST /api/formularios/cierre (traffic chief only)
func (h *FormHandler) CreateClosing(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	var input dto.CreateClosingFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Los tres campos del cierre son obligatorios"})
		return
	}

	form, err := h.forms.CreateClosingForm(claims.UserID, claims.Username, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al guardar el formulario de cierre"})
		return
	}

	utils.LogAction(c, &claims.UserID, "formulario_cierre", "exito", fmt.Sprintf("Formulario %d creado", form.ID), nil, h.logRepo)
	c.JSON(http.StatusCreated, form)
}

// POST /api/formularios/incidencias (traffic chief only, multipart)
// Files may ride along under the "archivos" field; each is stored
// independently and reported in the response.
func (h *FormHandler) CreateIncident(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	var input dto.CreateIncidentFormDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "empleados_incidencia y tipo_incidencia son obligatorios"})
		return
	}

	form, err := h.forms.CreateIncidentForm(claims.UserID, claims.Username, input)
	if err != nil {
		if errors.Is(err, services.ErrMissingEmployees) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "empleados_incidencia no puede estar vacío"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al guardar la incidencia"})
		return
	}

	utils.LogAction(c, &claims.UserID, "formulario_incidencia", "exito", fmt.Sprintf("Incidencia %d creada", form.ID), nil, h.logRepo)

	// Every file is reported back individually; ones past the attachment cap
	// come back with their own error instead of being dropped.
	var uploads []response.UploadResult
	if multipartForm, err := c.MultipartForm(); err == nil {
		if headers := multipartForm.File["archivos"]; len(headers) > 0 {
			uploads, err = h.files.UploadBatch(c.Request.Context(), form.ID, claims.UserID, headers)
			if err != nil {
				utils.LogAction(c, &claims.UserID, "subida_archivos", "fallo",
					fmt.Sprintf("Incidencia %d: %v", form.ID, err), nil, h.logRepo)
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"incidencia": form,
		"archivos":   uploads,
	})
}

// GET /api/formularios/apertura
func (h *FormHandler) ListOpening(c *gin.Context) {
	var query dto.ListFormsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Parámetros de consulta inválidos"})
		return
	}

	forms, total, err := h.forms.ListOpeningForms(listParams(query))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al listar formularios de apertura"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": forms, "pagination": pagination(query, total)})
}

// GET /api/formularios/cierre
func (h *FormHandler) ListClosing(c *gin.Context) {
	var query dto.ListFormsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Parámetros de consulta inválidos"})
		return
	}

	forms, total, err := h.forms.ListClosingForms(listParams(query))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al listar formularios de cierre"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": forms, "pagination": pagination(query, total)})
}

// GET /api/formularios/incidencias
func (h *FormHandler) ListIncidents(c *gin.Context) {
	var query dto.ListFormsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Parámetros de consulta inválidos"})
		return
	}

	forms, total, err := h.forms.ListIncidentForms(listParams(query))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al listar incidencias"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": forms, "pagination": pagination(query, total)})
}

// GET /api/formularios/incidencias/tipos
func (h *FormHandler) ListIncidentTypes(c *gin.Context) {
	types, err := h.forms.ListIncidentTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al obtener tipos de incidencia"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tipos": types})
}

// GET /api/formularios/stats (operations chief only)
func (h *FormHandler) Stats(c *gin.Context) {
	var query dto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Parámetros de consulta inválidos"})
		return
	}

	stats, err := h.forms.Stats(query.DateFrom, query.DateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al calcular estadísticas"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/formularios/informes/export (operations chief only)
func (h *FormHandler) Export(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "fecha_desde y fecha_hasta son obligatorias"})
		return
	}
	if query.Format != "csv" && query.Format != "xlsx" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "formato debe ser csv o xlsx"})
		return
	}

	rows, err := h.reports.BuildReport(query.DateFrom, query.DateTo)
	switch {
	case errors.Is(err, services.ErrBadDateRange):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Rango de fechas inválido"})
		return
	case errors.Is(err, services.ErrNoData):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "No hay formularios en el rango indicado"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al generar la exportación"})
		return
	}

	filename := fmt.Sprintf("formularios_%s_%s_%s", query.DateFrom, query.DateTo, time.Now().Format("20060102150405"))
	utils.LogAction(c, &claims.UserID, "exportacion", "exito",
		fmt.Sprintf("Exportación %s de %s a %s (%d filas)", query.Format, query.DateFrom, query.DateTo, len(rows)), nil, h.logRepo)

	if query.Format == "xlsx" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := h.reports.WriteXLSX(c.Writer, rows); err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al escribir el fichero xlsx"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := h.reports.WriteCSV(c.Writer, rows); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al escribir el fichero csv"})
	}
}
