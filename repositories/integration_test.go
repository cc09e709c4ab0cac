package repositories

import (
	"os"
	"testing"
	"time"

	"github.com/solucioning/fleetforms/db"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIntegration(t *testing.T) *Repos {
	if os.Getenv("TEST_DB_DSN") == "" && os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("set TEST_DB_DSN or RUN_INTEGRATION_TESTS to run database tests")
	}

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	t.Cleanup(cleanup)
	db.InitWithGormDB(gormDB)
	return New()
}

func TestIncidentFlow(t *testing.T) {
	repos := setupIntegration(t)

	supervisor := models.User{Username: "laura", Password: "hash", Email: "laura@solucioning.net", Role: models.RoleTrafficChief}
	manager := models.User{Username: "operaciones", Password: "hash", Email: "ops@solucioning.net", Role: models.RoleOperationsChief}
	require.NoError(t, repos.User.CreateUser(&supervisor))
	require.NoError(t, repos.User.CreateUser(&manager))

	first, err := repos.User.FirstManager()
	require.NoError(t, err)
	assert.Equal(t, manager.ID, first.ID)

	incident := models.IncidentForm{
		UserID:       supervisor.ID,
		Employees:    []string{"E-104"},
		IncidentType: "accidente",
	}
	require.NoError(t, repos.Form.CreateIncidentForm(&incident))

	notification := models.Notification{
		ManagerID:    manager.ID,
		SupervisorID: supervisor.ID,
		FormKind:     models.FormKindIncident,
		FormID:       incident.ID,
		Title:        "Nueva incidencia reportada",
		Status:       models.NotificationPending,
	}
	require.NoError(t, repos.Notification.CreateNotification(&notification))

	unread, err := repos.Notification.UnreadCount(manager.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// Another manager's scope never sees it.
	_, err = repos.Notification.GetByID(notification.ID, supervisor.ID)
	assert.Error(t, err)

	got, err := repos.Notification.GetByID(notification.ID, manager.ID)
	require.NoError(t, err)
	now := time.Now()
	got.Status = models.NotificationProcessed
	got.Read = true
	got.ProcessedAt = &now
	require.NoError(t, repos.Notification.SaveNotification(&got))

	stats, err := repos.Notification.Stats(manager.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Processed)
}

func TestAttachmentCap(t *testing.T) {
	repos := setupIntegration(t)

	supervisor := models.User{Username: "cap", Password: "hash", Email: "cap@solucioning.net", Role: models.RoleTrafficChief}
	require.NoError(t, repos.User.CreateUser(&supervisor))

	incident := models.IncidentForm{UserID: supervisor.ID, Employees: []string{"E-1"}, IncidentType: "averia"}
	require.NoError(t, repos.Form.CreateIncidentForm(&incident))

	for i := 0; i < 2; i++ {
		file := models.IncidentFile{
			IncidentID:   incident.ID,
			OriginalName: "foto.png",
			StoredName:   "foto-" + string(rune('a'+i)),
			MimeType:     "image/png",
			Size:         int64(10 + i),
			StoragePath:  "incidencias/x",
			UploadedBy:   supervisor.ID,
		}
		require.NoError(t, repos.File.CreateWithCap(&file, 2))
	}

	over := models.IncidentFile{
		IncidentID:   incident.ID,
		OriginalName: "tercero.png",
		StoredName:   "tercero",
		MimeType:     "image/png",
		Size:         99,
		StoragePath:  "incidencias/y",
		UploadedBy:   supervisor.ID,
	}
	assert.ErrorIs(t, repos.File.CreateWithCap(&over, 2), ErrAttachmentLimit)

	count, err := repos.File.CountByIncident(incident.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestListFormsDateFilter(t *testing.T) {
	repos := setupIntegration(t)

	supervisor := models.User{Username: "fechas", Password: "hash", Email: "fechas@solucioning.net", Role: models.RoleTrafficChief}
	require.NoError(t, repos.User.CreateUser(&supervisor))

	form := models.OpeningForm{UserID: supervisor.ID, Observations: "hoy"}
	require.NoError(t, repos.Form.CreateOpeningForm(&form))

	today := time.Now().Format("2006-01-02")
	forms, total, err := repos.Form.ListOpeningForms(FormListParams{Page: 1, Limit: 10, Date: today})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(1))
	assert.NotEmpty(t, forms)

	_, none, err := repos.Form.ListOpeningForms(FormListParams{Page: 1, Limit: 10, Date: "1999-01-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), none)
}
