package model

import "time"

type CartStatus string

const (
	CartStatusUnsubmitted CartStatus = "UNSUBMITTED"
	CartStatusOrdered     CartStatus = "ORDERED"
)

// order_tracking_numberはORDEREDになった時だけ入る
type Cart struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID          int64      `gorm:"index" json:"customer_id"`
	OrderTrackingNumber *string    `gorm:"type:varchar(255);uniqueIndex" json:"order_tracking_number"`
	Status              CartStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt           time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
