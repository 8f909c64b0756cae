package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is one row of the user master (m_user). Every attribute is optional;
// the id is generated when the caller does not supply one.
type User struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	Name        *string `gorm:"column:name" json:"name"`
	Lastname    *string `gorm:"column:lastname" json:"lastname"`
	Age         *int    `gorm:"column:age" json:"age"`
	Country     *string `gorm:"column:country" json:"country"`
	HomeAddress *string `gorm:"column:home_address" json:"home_address"`
}

func (User) TableName() string { return "m_user" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRecord is one caller-supplied user mutation.
type UserRecord struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Lastname    *string `json:"lastname"`
	Age         *int    `json:"age"`
	Country     *string `json:"country"`
	HomeAddress *string `json:"home_address"`
}

func (r UserRecord) NewUser() *User {
	u := &User{}
	if r.ID != nil {
		u.ID = *r.ID
	}
	r.ApplyTo(u)
	return u
}

func (r UserRecord) ApplyTo(u *User) {
	if r.Name != nil {
		u.Name = r.Name
	}
	if r.Lastname != nil {
		u.Lastname = r.Lastname
	}
	if r.Age != nil {
		u.Age = r.Age
	}
	if r.Country != nil {
		u.Country = r.Country
	}
	if r.HomeAddress != nil {
		u.HomeAddress = r.HomeAddress
	}
}
