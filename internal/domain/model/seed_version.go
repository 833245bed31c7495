package model

import "time"

// 適用済みシードのマーカー
// 件数カウントではなくこのレコードの有無で冪等性を判定する
type SeedVersion struct {
	Version   string    `gorm:"primaryKey;type:varchar(100)" json:"version"`
	AppliedAt time.Time `gorm:"not null" json:"applied_at"`
}
