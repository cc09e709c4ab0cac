package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/solucioning/fleetforms/config"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/repositories/mock_repositories"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/services"
	"github.com/solucioning/fleetforms/storage"
	"github.com/solucioning/fleetforms/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps objects in a map; enough for handler tests.
type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *memStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.objects[key]
	return ok, nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func addPNGPart(t *testing.T, writer *multipart.Writer, filename string) {
	t.Helper()
	part := textproto.MIMEHeader{}
	part.Set("Content-Disposition", `form-data; name="archivos"; filename="`+filename+`"`)
	part.Set("Content-Type", "image/png")
	w, err := writer.CreatePart(part)
	require.NoError(t, err)
	_, err = w.Write([]byte("png"))
	require.NoError(t, err)
}

// An incident submitted with more files than the attachment cap must report
// every file: the ones past the cap come back with their own error instead
// of vanishing from the response.
func TestCreateIncident_FilesPastCapGetTheirOwnError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	config.MaxFileSizeMB = 5
	config.MaxFilesPerIncident = 5
	config.NotifyRecipient = ""

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockFile := mock_repositories.NewMockFileRepo(ctrl)
	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)
	mockLog := mock_repositories.NewMockLogRepo(ctrl)
	repos := &repositories.Repos{
		User:         mockUser,
		Form:         mockForm,
		File:         mockFile,
		Notification: mockNotification,
		Log:          mockLog,
	}
	svc := services.New(repos, newMemStore())
	h := NewFormHandler(svc.Form, svc.File, svc.Report, repos.Log)

	mockForm.EXPECT().CreateIncidentForm(gomock.Any()).DoAndReturn(func(form *models.IncidentForm) error {
		form.ID = 1
		return nil
	})
	mockUser.EXPECT().FirstManager().Return(models.User{ID: 2, Role: models.RoleOperationsChief}, nil)
	mockNotification.EXPECT().CreateNotification(gomock.Any()).Return(nil)
	mockLog.EXPECT().CreateActionLog(gomock.Any()).Return(nil).AnyTimes()

	mockForm.EXPECT().GetIncidentFormByID(uint(1)).Return(models.IncidentForm{ID: 1, UserID: 5}, nil)
	mockFile.EXPECT().ExistsByNameAndSize(uint(1), gomock.Any(), gomock.Any()).Return(false, nil).Times(6)
	stored := 0
	mockFile.EXPECT().CreateWithCap(gomock.Any(), 5).DoAndReturn(func(_ *models.IncidentFile, max int) error {
		if stored >= max {
			return repositories.ErrAttachmentLimit
		}
		stored++
		return nil
	}).Times(6)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("empleados_incidencia", "E-104"))
	require.NoError(t, writer.WriteField("tipo_incidencia", "accidente"))
	for i := 0; i < 6; i++ {
		addPNGPart(t, writer, "foto"+strconv.Itoa(i)+".png")
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/formularios/incidencias", &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	c.Set("claims", &types.Claims{UserID: 5, Username: "laura", Role: models.RoleTrafficChief})

	h.CreateIncident(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got struct {
		Archivos []response.UploadResult `json:"archivos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Archivos, 6)
	for i := 0; i < 5; i++ {
		assert.True(t, got.Archivos[i].Stored, got.Archivos[i].OriginalName)
	}
	assert.False(t, got.Archivos[5].Stored)
	assert.Equal(t, "foto5.png", got.Archivos[5].OriginalName)
	assert.Equal(t, services.ErrTooManyFiles.Error(), got.Archivos[5].Error)
}
