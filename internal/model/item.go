package model

// Item — единственный хранимый ресурс сервиса.
// ID назначается базой при вставке и никогда не переиспользуется.
type Item struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}
