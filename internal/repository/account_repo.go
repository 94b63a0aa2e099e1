package repository

import (
	"errors"

	"go-admin-console/internal/model"

	"gorm.io/gorm"
)

type AccountRepository interface {
	FindByID(id uint) (*model.Account, error)
	FindByUsername(username string) (*model.Account, error)
	Create(account *model.Account) error
	Update(account *model.Account) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) FindByID(id uint) (*model.Account, error) {
	var account model.Account
	err := r.db.First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindByUsername(username string) (*model.Account, error) {
	var account model.Account
	err := r.db.Where("username = ?", username).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) Create(account *model.Account) error {
	return r.db.Create(account).Error
}

func (r *accountRepo) Update(account *model.Account) error {
	return r.db.Save(account).Error
}
