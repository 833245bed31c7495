package model

import "time"

// 顧客は必ず1つのDivisionに属する
type Customer struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:customer_id" json:"id"`
	FirstName  string    `gorm:"type:varchar(255);not null;column:customer_first_name" json:"first_name"`
	LastName   string    `gorm:"type:varchar(255);not null;column:customer_last_name" json:"last_name"`
	Address    string    `gorm:"type:varchar(255);not null" json:"address"`
	PostalCode string    `gorm:"type:varchar(20);not null;column:postal_code" json:"postal_code"`
	Phone      string    `gorm:"type:varchar(30);not null" json:"phone"`
	DivisionID int64     `gorm:"not null;index" json:"division_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime;column:create_date" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime;column:last_update" json:"updated_at"`
}
