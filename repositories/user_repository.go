package repositories

import (
	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/models"
)

type UserRepo interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindAll() ([]models.User, error)
	FindByRole(role models.UserRole) ([]models.User, error)
	Update(user *models.User) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return &user, err
}

func (r *DBUserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *DBUserRepo) FindAll() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := db.DB.Where("role = ?", role).Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Update(user *models.User) error {
	return db.DB.Save(user).Error
}
