package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func setupReportServiceMocks(t *testing.T) (*ReportService, *mock_repositories.MockFormRepo, *mock_repositories.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	repos := &repositories.Repos{
		Form:         mockForm,
		Notification: mockNotification,
	}
	return NewReportService(repos), mockForm, mockNotification
}

func expectEmptyNotifications(mockNotification *mock_repositories.MockNotificationRepo) {
	mockNotification.EXPECT().ByKindForForms(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func TestBuildReport_BadDates(t *testing.T) {
	svc, _, _ := setupReportServiceMocks(t)

	_, err := svc.BuildReport("01/01/2026", "2026-01-02")
	assert.ErrorIs(t, err, ErrBadDateRange)

	_, err = svc.BuildReport("2026-01-05", "2026-01-02")
	assert.ErrorIs(t, err, ErrBadDateRange)
}

func TestBuildReport_EmptyRange(t *testing.T) {
	svc, mockForm, _ := setupReportServiceMocks(t)

	mockForm.EXPECT().OpeningFormsBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockForm.EXPECT().ClosingFormsBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockForm.EXPECT().IncidentFormsBetween(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.BuildReport("2026-01-01", "2026-01-02")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuildReport_InclusiveEndDate(t *testing.T) {
	svc, mockForm, mockNotification := setupReportServiceMocks(t)

	wantFrom, _ := time.Parse("2006-01-02", "2026-01-01")
	wantTo, _ := time.Parse("2006-01-02", "2026-01-02")
	wantTo = wantTo.Add(24 * time.Hour)

	mockForm.EXPECT().OpeningFormsBetween(wantFrom, wantTo).Return([]models.OpeningForm{
		{ID: 1, CreatedAt: wantFrom.Add(8 * time.Hour), User: models.User{Username: "laura"}},
	}, nil)
	mockForm.EXPECT().ClosingFormsBetween(wantFrom, wantTo).Return(nil, nil)
	mockForm.EXPECT().IncidentFormsBetween(wantFrom, wantTo).Return(nil, nil)
	expectEmptyNotifications(mockNotification)

	rows, err := svc.BuildReport("2026-01-01", "2026-01-02")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "laura", rows[0].Supervisor)
	assert.Equal(t, models.NotificationPending, rows[0].Status)
}

func TestBuildReport_JoinsNotificationStatus(t *testing.T) {
	svc, mockForm, mockNotification := setupReportServiceMocks(t)

	processedAt := time.Date(2026, 1, 1, 18, 30, 0, 0, time.UTC)

	mockForm.EXPECT().OpeningFormsBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockForm.EXPECT().ClosingFormsBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockForm.EXPECT().IncidentFormsBetween(gomock.Any(), gomock.Any()).Return([]models.IncidentForm{
		{ID: 11, IncidentType: "accidente", Employees: []string{"E-104", "E-203"}},
	}, nil)

	mockNotification.EXPECT().ByKindForForms(models.FormKindIncident, []uint{11}).Return([]models.Notification{
		{FormKind: models.FormKindIncident, FormID: 11, Status: models.NotificationProcessed, ProcessingComment: "Revisado", ProcessedAt: &processedAt},
	}, nil)

	rows, err := svc.BuildReport("2026-01-01", "2026-01-02")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, models.NotificationProcessed, rows[0].Status)
	assert.Equal(t, "Revisado", rows[0].ProcessedNote)
	assert.Equal(t, "2026-01-01 18:30:00", rows[0].ProcessedAt)
}

// A form on the last day of the range whose notification row was written
// after midnight must still export with its real status. The join runs on
// form kind and ID, never on the notification's creation date.
func TestBuildReport_StatusJoinIgnoresNotificationDate(t *testing.T) {
	svc, mockForm, mockNotification := setupReportServiceMocks(t)

	lastDay := time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC)
	afterWindow := time.Date(2026, 1, 3, 0, 10, 0, 0, time.UTC)

	mockForm.EXPECT().OpeningFormsBetween(gomock.Any(), gomock.Any()).Return([]models.OpeningForm{
		{ID: 7, CreatedAt: lastDay, User: models.User{Username: "laura"}},
	}, nil)
	mockForm.EXPECT().ClosingFormsBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockForm.EXPECT().IncidentFormsBetween(gomock.Any(), gomock.Any()).Return(nil, nil)

	mockNotification.EXPECT().ByKindForForms(models.FormKindOpening, []uint{7}).Return([]models.Notification{
		{FormKind: models.FormKindOpening, FormID: 7, Status: models.NotificationRejected, CreatedAt: afterWindow},
	}, nil)

	rows, err := svc.BuildReport("2026-01-01", "2026-01-02")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, models.NotificationRejected, rows[0].Status)
}

func TestWriteCSV_JoinsArrays(t *testing.T) {
	svc, _, _ := setupReportServiceMocks(t)

	incident := models.IncidentForm{
		ID:           11,
		Employees:    []string{"E-104", "E-203"},
		IncidentType: "accidente",
		Observations: "Golpe, sin heridos",
	}
	rows := []ReportRow{{
		Kind:       models.FormKindIncident,
		FormID:     11,
		Date:       "2026-01-01",
		Time:       "09:00:00",
		Supervisor: "laura",
		Incident:   &incident,
		Status:     models.NotificationPending,
	}}

	var buf bytes.Buffer
	assert.NoError(t, svc.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, reportHeader, records[0])
	assert.Equal(t, "incidencia", records[1][0])
	assert.Equal(t, "E-104, E-203", records[1][15])
	assert.Equal(t, "pendiente", records[1][18])
}

func TestWriteXLSX_SheetsAndSummary(t *testing.T) {
	svc, _, _ := setupReportServiceMocks(t)

	opening := models.OpeningForm{ID: 1, Observations: "ok"}
	rows := []ReportRow{
		{Kind: models.FormKindOpening, FormID: 1, Opening: &opening, Status: models.NotificationProcessed},
	}

	var buf bytes.Buffer
	assert.NoError(t, svc.WriteXLSX(&buf, rows))

	book, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer book.Close()

	sheets := book.GetSheetList()
	assert.Contains(t, sheets, "Apertura")
	assert.Contains(t, sheets, "Cierre")
	assert.Contains(t, sheets, "Incidencias")
	assert.Contains(t, sheets, "Resumen")
	assert.NotContains(t, sheets, "Sheet1")

	total, err := book.GetCellValue("Resumen", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "1", total)

	processed, err := book.GetCellValue("Resumen", "B4")
	assert.NoError(t, err)
	assert.Equal(t, "1", processed)
}
