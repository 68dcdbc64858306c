package models

import (
	"gorm.io/gorm"
)

type Guest struct {
	gorm.Model

	FullName    string `json:"fullName"`
	Email       string `json:"email" gorm:"index"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`

	IDType   string `json:"idType"`
	IDNumber string `json:"idNumber"`
}
