package employee

import "time"

type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	LastName     string    `gorm:"column:nom;not null"`
	FirstName    string    `gorm:"column:prenom;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Position     string    `gorm:"column:poste"`
	Phone        string    `gorm:"column:telephone"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null;default:employee"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
