package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupNotificationServiceMocks(t *testing.T) (*NotificationService, *mock_repositories.MockNotificationRepo, *mock_repositories.MockFormRepo, *mock_repositories.MockLogRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockLog := mock_repositories.NewMockLogRepo(ctrl)
	repos := &repositories.Repos{
		Notification: mockNotification,
		Form:         mockForm,
		Log:          mockLog,
	}
	return NewNotificationService(repos), mockNotification, mockForm, mockLog
}

func TestProcess_PendingToProcessed(t *testing.T) {
	svc, mockNotification, _, mockLog := setupNotificationServiceMocks(t)

	pending := models.Notification{ID: 1, ManagerID: 9, Status: models.NotificationPending}
	mockNotification.EXPECT().GetByID(uint(1), uint(9)).Return(pending, nil)
	mockNotification.EXPECT().SaveNotification(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.Equal(t, models.NotificationProcessed, n.Status)
		assert.Equal(t, "Todo correcto", n.ProcessingComment)
		assert.NotNil(t, n.ProcessedAt)
		assert.True(t, n.Read)
		return nil
	})
	mockLog.EXPECT().CreateNotificationLog(gomock.Any()).DoAndReturn(func(entry *models.NotificationLog) error {
		assert.Equal(t, "procesamiento", entry.Action)
		assert.Contains(t, entry.Details, "procesada")
		return nil
	})

	got, err := svc.Process(1, 9, dto.ProcessNotificationDTO{Status: "procesada", Comment: "Todo correcto"})
	assert.NoError(t, err)
	assert.Equal(t, models.NotificationProcessed, got.Status)
}

func TestProcess_TerminalRejectsSecondTransition(t *testing.T) {
	svc, mockNotification, _, _ := setupNotificationServiceMocks(t)

	now := time.Now()
	done := models.Notification{ID: 1, ManagerID: 9, Status: models.NotificationRejected, ProcessedAt: &now}
	mockNotification.EXPECT().GetByID(uint(1), uint(9)).Return(done, nil)

	_, err := svc.Process(1, 9, dto.ProcessNotificationDTO{Status: "procesada"})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestProcess_NotFoundForOtherManager(t *testing.T) {
	svc, mockNotification, _, _ := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().GetByID(uint(1), uint(7)).Return(models.Notification{}, gorm.ErrRecordNotFound)

	_, err := svc.Process(1, 7, dto.ProcessNotificationDTO{Status: "procesada"})
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc, mockNotification, _, _ := setupNotificationServiceMocks(t)

	read := models.Notification{ID: 2, ManagerID: 9, Read: true}
	mockNotification.EXPECT().GetByID(uint(2), uint(9)).Return(read, nil)
	// Already read: no save issued.

	got, err := svc.MarkRead(2, 9)
	assert.NoError(t, err)
	assert.True(t, got.Read)
}

func TestMarkRead_SetsFlag(t *testing.T) {
	svc, mockNotification, _, _ := setupNotificationServiceMocks(t)

	unread := models.Notification{ID: 2, ManagerID: 9}
	mockNotification.EXPECT().GetByID(uint(2), uint(9)).Return(unread, nil)
	mockNotification.EXPECT().SaveNotification(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
		assert.True(t, n.Read)
		return nil
	})

	got, err := svc.MarkRead(2, 9)
	assert.NoError(t, err)
	assert.True(t, got.Read)
}

func TestDetail_LoadsIncidentSnapshot(t *testing.T) {
	svc, mockNotification, mockForm, mockLog := setupNotificationServiceMocks(t)

	n := models.Notification{ID: 3, ManagerID: 9, FormKind: models.FormKindIncident, FormID: 11}
	mockNotification.EXPECT().GetByID(uint(3), uint(9)).Return(n, nil)
	mockForm.EXPECT().GetIncidentFormByID(uint(11)).Return(models.IncidentForm{ID: 11, IncidentType: "accidente"}, nil)
	mockLog.EXPECT().CreateNotificationLog(gomock.Any()).DoAndReturn(func(entry *models.NotificationLog) error {
		assert.Equal(t, "visualizacion", entry.Action)
		return nil
	})

	detail, err := svc.Detail(3, 9)
	assert.NoError(t, err)
	form, ok := detail.Form.(models.IncidentForm)
	assert.True(t, ok)
	assert.Equal(t, "accidente", form.IncidentType)
}

func TestDelete_UnknownID(t *testing.T) {
	svc, mockNotification, _, _ := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().DeleteByID(uint(8), uint(9)).Return(int64(0), nil)

	err := svc.Delete(8, 9)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestDelete_Success(t *testing.T) {
	svc, mockNotification, _, _ := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().DeleteByID(uint(8), uint(9)).Return(int64(1), nil)

	assert.NoError(t, svc.Delete(8, 9))
}

func TestUnreadCount(t *testing.T) {
	svc, mockNotification, _, _ := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().UnreadCount(uint(9)).Return(int64(4), nil)

	count, err := svc.UnreadCount(9)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func setupNotificationFilesMocks(t *testing.T) (*NotificationService, *mock_repositories.MockNotificationRepo, *mock_repositories.MockFileRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	mockFile := mock_repositories.NewMockFileRepo(ctrl)
	repos := &repositories.Repos{
		Notification: mockNotification,
		File:         mockFile,
	}
	return NewNotificationService(repos), mockNotification, mockFile
}

func TestFiles_ReturnsIncidentAttachments(t *testing.T) {
	svc, mockNotification, mockFile := setupNotificationFilesMocks(t)

	mockNotification.EXPECT().GetByID(uint(1), uint(9)).Return(models.Notification{
		ID: 1, ManagerID: 9, FormKind: models.FormKindIncident, FormID: 11,
	}, nil)
	mockFile.EXPECT().ListByIncident(uint(11)).Return([]models.IncidentFile{
		{ID: 3, IncidentID: 11, OriginalName: "foto.png"},
	}, nil)

	files, err := svc.Files(1, 9)
	assert.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "foto.png", files[0].OriginalName)
}

func TestFiles_EmptyForNonIncidentKinds(t *testing.T) {
	svc, mockNotification, _ := setupNotificationFilesMocks(t)

	mockNotification.EXPECT().GetByID(uint(2), uint(9)).Return(models.Notification{
		ID: 2, ManagerID: 9, FormKind: models.FormKindOpening, FormID: 4,
	}, nil)

	files, err := svc.Files(2, 9)
	assert.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestFiles_UnknownNotification(t *testing.T) {
	svc, mockNotification, _ := setupNotificationFilesMocks(t)

	mockNotification.EXPECT().GetByID(uint(7), uint(9)).Return(models.Notification{}, gorm.ErrRecordNotFound)

	_, err := svc.Files(7, 9)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
