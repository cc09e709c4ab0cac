package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/middleware"
	"github.com/solucioning/fleetforms/models"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	return NewUserService(repos), mockUser
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

// --------------------- Login ---------------------

func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	user := models.User{
		ID:       1,
		Username: "laura",
		Password: hashPassword(t, "secreto1"),
		Role:     models.RoleTrafficChief,
	}
	mockUser.EXPECT().GetUserByUsername("laura").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username string, role models.UserRole, expire time.Duration) (string, error) {
		assert.Equal(t, uint(1), userID)
		assert.Equal(t, models.RoleTrafficChief, role)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	got, token, err := svc.Login("laura", "secreto1")
	assert.NoError(t, err)
	assert.Equal(t, "laura", got.Username)
	assert.Equal(t, "token123", token)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("nadie").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nadie", "loquesea")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	user := models.User{ID: 2, Username: "laura", Password: hashPassword(t, "secreto1")}
	mockUser.EXPECT().GetUserByUsername("laura").Return(user, nil)

	got, _, err := svc.Login("laura", "incorrecta")
	assert.ErrorIs(t, err, ErrWrongPassword)
	// The user is still returned so the caller can audit the attempt.
	assert.Equal(t, uint(2), got.ID)
}

// --------------------- ChangePassword ---------------------

func TestChangePassword_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	user := models.User{ID: 3, Username: "laura", Password: hashPassword(t, "vieja123")}
	mockUser.EXPECT().GetUserByID(uint(3)).Return(user, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("nueva456")))
		return nil
	})

	err := svc.ChangePassword(3, "vieja123", "nueva456")
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	user := models.User{ID: 3, Password: hashPassword(t, "vieja123")}
	mockUser.EXPECT().GetUserByID(uint(3)).Return(user, nil)

	err := svc.ChangePassword(3, "otra", "nueva456")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestChangePassword_UserMissing(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	err := svc.ChangePassword(99, "a", "b")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- CreateUser ---------------------

func TestCreateUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := dto.CreateUserDTO{
		Username: "nuevo",
		Password: "secreto1",
		Email:    "nuevo@solucioning.net",
		Role:     "jefe_trafico",
	}

	mockUser.EXPECT().UsernameOrEmailTaken("nuevo", "nuevo@solucioning.net").Return(false, nil)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.RoleTrafficChief, u.Role)
		assert.NotEqual(t, "secreto1", u.Password)
		return nil
	})

	user, err := svc.CreateUser(input)
	assert.NoError(t, err)
	assert.Equal(t, "nuevo", user.Username)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.CreateUser(dto.CreateUserDTO{Username: "x", Password: "secreto1", Email: "x@y.z", Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().UsernameOrEmailTaken("laura", "laura@solucioning.net").Return(true, nil)

	_, err := svc.CreateUser(dto.CreateUserDTO{
		Username: "laura",
		Password: "secreto1",
		Email:    "laura@solucioning.net",
		Role:     "jefe_operaciones",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestCreateUser_RepoFailure(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().UsernameOrEmailTaken("nuevo", "n@s.net").Return(false, nil)
	mockUser.EXPECT().CreateUser(gomock.Any()).Return(errors.New("db down"))

	_, err := svc.CreateUser(dto.CreateUserDTO{Username: "nuevo", Password: "secreto1", Email: "n@s.net", Role: "jefe_trafico"})
	assert.Error(t, err)
}
