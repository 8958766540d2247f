package domain

import (
	"github.com/google/uuid"
	"github.com/smallbiznis/coffeestore/pkg/repository"
)

// Address is a postal address owned by exactly one client.
type Address struct {
	repository.Model
	Street       string    `gorm:"column:street"`
	Number       string    `gorm:"column:number"`
	Complement   string    `gorm:"column:complement"`
	Neighborhood string    `gorm:"column:neighborhood"`
	City         string    `gorm:"column:city"`
	State        string    `gorm:"column:state"`
	ZipCode      string    `gorm:"column:zip_code"`
	ClientID     uuid.UUID `gorm:"column:client_id;size:36;not null;index"`
}

func (Address) TableName() string {
	return "address"
}
