package models

import (
	"github.com/craftbase/appcatalog/accesscontrol"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Model
	Name         string             `json:"name" gorm:"type:text;not null;"`
	Email        string             `json:"email" gorm:"type:text;uniqueIndex;not null;"`
	PasswordHash string             `json:"-" gorm:"type:text;not null;"`
	Role         accesscontrol.Role `json:"role" gorm:"type:text;not null;default:'Viewer';"`
}

func (m User) TableName() string {
	return "users"
}

func (m *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.PasswordHash = string(hash)
	return nil
}

func (m *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(plain)) == nil
}
