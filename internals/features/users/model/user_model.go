package model

import (
	"time"
)

// UserModel usa o CPF como chave primária (identidade nacional do voluntário).
// A identidade é imutável depois de criada.
type UserModel struct {
	UserCPF       string    `gorm:"column:user_cpf;type:varchar(64);primaryKey" json:"user_cpf"`
	UserName      string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:ux_users_email" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
