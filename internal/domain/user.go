package domain

import "time"

type User struct {
	ID             UserID    `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Email          string    `gorm:"type:citext;uniqueIndex:ux_users_email" db:"email" json:"email"`
	PasswordDigest string    `gorm:"type:text;not null" db:"password_digest" json:"-"`
	CreatedAt      time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (User) TableName() string { return "users" }
