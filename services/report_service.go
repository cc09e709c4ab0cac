package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
)

var (
	ErrNoData       = errors.New("no forms in the requested range")
	ErrBadDateRange = errors.New("invalid date range")
)

const reportDateLayout = "2006-01-02"

// ReportRow flattens one form of any kind into the export schema. Columns
// that do not apply to a kind stay empty.
type ReportRow struct {
	Kind          models.FormKind
	FormID        uint
	Date          string
	Time          string
	Supervisor    string
	Opening       *models.OpeningForm
	Closing       *models.ClosingForm
	Incident      *models.IncidentForm
	Status        models.NotificationStatus
	ProcessedAt   string
	ProcessedNote string
}

type ReportService struct {
	repos *repositories.Repos
}

func NewReportService(repos *repositories.Repos) *ReportService {
	return &ReportService{repos: repos}
}

// BuildReport collects every form created between from and to (inclusive,
// calendar days) together with its notification outcome. Forms whose
// notification never got created are reported as pendiente.
func (s *ReportService) BuildReport(fromStr, toStr string) ([]ReportRow, error) {
	from, err := time.Parse(reportDateLayout, fromStr)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_desde %q", ErrBadDateRange, fromStr)
	}
	to, err := time.Parse(reportDateLayout, toStr)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_hasta %q", ErrBadDateRange, toStr)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: fecha_hasta precedes fecha_desde", ErrBadDateRange)
	}
	// End of range is exclusive, so push it past the last requested day.
	to = to.Add(24 * time.Hour)

	openings, err := s.repos.Form.OpeningFormsBetween(from, to)
	if err != nil {
		return nil, err
	}
	closings, err := s.repos.Form.ClosingFormsBetween(from, to)
	if err != nil {
		return nil, err
	}
	incidents, err := s.repos.Form.IncidentFormsBetween(from, to)
	if err != nil {
		return nil, err
	}

	if len(openings) == 0 && len(closings) == 0 && len(incidents) == 0 {
		return nil, ErrNoData
	}

	rows := make([]ReportRow, 0, len(openings)+len(closings)+len(incidents))

	for i := range openings {
		form := openings[i]
		row := baseRow(models.FormKindOpening, form.ID, form.CreatedAt, form.User.Username)
		row.Opening = &openings[i]
		rows = append(rows, row)
	}
	for i := range closings {
		form := closings[i]
		row := baseRow(models.FormKindClosing, form.ID, form.CreatedAt, form.User.Username)
		row.Closing = &closings[i]
		rows = append(rows, row)
	}
	for i := range incidents {
		form := incidents[i]
		row := baseRow(models.FormKindIncident, form.ID, form.CreatedAt, form.User.Username)
		row.Incident = &incidents[i]
		rows = append(rows, row)
	}

	if err := s.attachStatuses(rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func baseRow(kind models.FormKind, id uint, createdAt time.Time, supervisor string) ReportRow {
	return ReportRow{
		Kind:       kind,
		FormID:     id,
		Date:       createdAt.Format(reportDateLayout),
		Time:       createdAt.Format("15:04:05"),
		Supervisor: supervisor,
		Status:     models.NotificationPending,
	}
}

// attachStatuses joins each row with its notification, looked up by form
// kind and ID. Notifications created on a later day than their form still
// match this way.
func (s *ReportService) attachStatuses(rows []ReportRow) error {
	type key struct {
		kind models.FormKind
		id   uint
	}
	ids := make(map[models.FormKind][]uint)
	for _, row := range rows {
		ids[row.Kind] = append(ids[row.Kind], row.FormID)
	}

	statuses := make(map[key]*models.Notification)
	for kind, formIDs := range ids {
		notifications, err := s.repos.Notification.ByKindForForms(kind, formIDs)
		if err != nil {
			return err
		}
		for i := range notifications {
			statuses[key{kind, notifications[i].FormID}] = &notifications[i]
		}
	}

	for i := range rows {
		notification, ok := statuses[key{rows[i].Kind, rows[i].FormID}]
		if !ok {
			continue
		}
		rows[i].Status = notification.Status
		rows[i].ProcessedNote = notification.ProcessingComment
		if notification.ProcessedAt != nil {
			rows[i].ProcessedAt = notification.ProcessedAt.Format(reportDateLayout + " 15:04:05")
		}
	}
	return nil
}

var reportHeader = []string{
	"tipo", "id", "fecha", "hora", "jefe_trafico",
	"empleados_no_operativos", "empleados_baja", "vehiculos_no_operativos",
	"necesitan_sustitucion", "no_conectados_plataforma", "sin_bateria_movil",
	"sin_bateria_vehiculo", "analisis_datos", "problemas_jornada",
	"propuesta_soluciones", "empleados_incidencia", "tipo_incidencia",
	"observaciones", "estado", "fecha_procesamiento", "observaciones_procesamiento",
}

func (r ReportRow) record() []string {
	rec := make([]string, 0, len(reportHeader))
	rec = append(rec,
		string(r.Kind),
		fmt.Sprintf("%d", r.FormID),
		r.Date,
		r.Time,
		r.Supervisor,
	)

	joined := func(values []string) string { return strings.Join(values, ", ") }

	switch {
	case r.Opening != nil:
		rec = append(rec,
			joined(r.Opening.NonOperativeStaff),
			joined(r.Opening.StaffOnLeave),
			joined(r.Opening.NonOperativeVehicles),
			joined(r.Opening.NeedReplacement),
			joined(r.Opening.NotConnected),
			joined(r.Opening.DeadPhoneBattery),
			joined(r.Opening.DeadVehicleBattery),
			"", "", "", "", "",
			r.Opening.Observations,
		)
	case r.Closing != nil:
		rec = append(rec,
			"", "", "", "", "", "", "",
			r.Closing.DataAnalysis,
			r.Closing.ShiftProblems,
			r.Closing.ProposedSolutions,
			"", "", "",
		)
	case r.Incident != nil:
		rec = append(rec,
			"", "", "", "", "", "", "", "", "", "",
			joined(r.Incident.Employees),
			r.Incident.IncidentType,
			r.Incident.Observations,
		)
	default:
		rec = append(rec, "", "", "", "", "", "", "", "", "", "", "", "", "")
	}

	rec = append(rec, string(r.Status), r.ProcessedAt, r.ProcessedNote)
	return rec
}

// WriteCSV streams the report as a single flat table, one row per form.
func (s *ReportService) WriteCSV(w io.Writer, rows []ReportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(reportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row.record()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX renders one sheet per form kind plus a summary sheet of totals
// by approval status.
func (s *ReportService) WriteXLSX(w io.Writer, rows []ReportRow) error {
	book := excelize.NewFile()
	defer book.Close()

	headerStyle, err := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2F5597"}},
	})
	if err != nil {
		return err
	}

	sheets := map[models.FormKind]string{
		models.FormKindOpening:  "Apertura",
		models.FormKindClosing:  "Cierre",
		models.FormKindIncident: "Incidencias",
	}

	counts := map[models.NotificationStatus]int{}

	for _, kind := range []models.FormKind{models.FormKindOpening, models.FormKindClosing, models.FormKindIncident} {
		sheet := sheets[kind]
		if _, err := book.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeSheetHeader(book, sheet, headerStyle); err != nil {
			return err
		}

		line := 2
		for _, row := range rows {
			if row.Kind != kind {
				continue
			}
			counts[row.Status]++
			cell, _ := excelize.CoordinatesToCellName(1, line)
			if err := book.SetSheetRow(sheet, cell, toAnySlice(row.record())); err != nil {
				return err
			}
			line++
		}
	}

	if err := writeSummarySheet(book, headerStyle, len(rows), counts); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on Apertura.
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	book.SetActiveSheet(0)

	return book.Write(w)
}

func writeSheetHeader(book *excelize.File, sheet string, style int) error {
	if err := book.SetSheetRow(sheet, "A1", toAnySlice(reportHeader)); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(reportHeader))
	if err != nil {
		return err
	}
	if err := book.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return err
	}
	return book.SetColWidth(sheet, "A", lastCol, 22)
}

func writeSummarySheet(book *excelize.File, style int, total int, counts map[models.NotificationStatus]int) error {
	const sheet = "Resumen"
	if _, err := book.NewSheet(sheet); err != nil {
		return err
	}
	if err := book.SetSheetRow(sheet, "A1", &[]any{"concepto", "total"}); err != nil {
		return err
	}
	if err := book.SetCellStyle(sheet, "A1", "B1", style); err != nil {
		return err
	}

	lines := [][]any{
		{"formularios", total},
		{"pendientes", counts[models.NotificationPending]},
		{"procesados", counts[models.NotificationProcessed]},
		{"rechazados", counts[models.NotificationRejected]},
	}
	for i, line := range lines {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := book.SetSheetRow(sheet, cell, &line); err != nil {
			return err
		}
	}
	return book.SetColWidth(sheet, "A", "B", 18)
}

func toAnySlice(values []string) *[]any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return &out
}
