package repositories

import (
	"github.com/solucioning/fleetforms/db"
	"github.com/solucioning/fleetforms/models"
)

type UserRepo interface {
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
	GetUserByUsername(username string) (models.User, error)
	GetUserByID(id uint) (models.User, error)
	UsernameOrEmailTaken(username, email string) (bool, error)
	GetManagerByUsername(username string) (models.User, error)
	FirstManager() (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) UsernameOrEmailTaken(username, email string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *DBUserRepo) GetManagerByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.
		Where("username = ? AND role = ?", username, models.RoleOperationsChief).
		First(&user).Error
	return user, err
}

func (r *DBUserRepo) FirstManager() (models.User, error) {
	var user models.User
	err := db.DB.
		Where("role = ?", models.RoleOperationsChief).
		Order("id asc").
		First(&user).Error
	return user, err
}
