package model

// 顧客をグルーピングする参照データ（販売地域など）
// シード後は変更しない
type Division struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}
