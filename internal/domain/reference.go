package domain

// Category and Gender are the lookup tables product rows reference.
// They are seeded at startup and read-only afterwards.

type Category struct {
	CategoryID   uint   `gorm:"primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"size:100;uniqueIndex" json:"category_name"`
}

type Gender struct {
	GenderID   uint   `gorm:"primaryKey;autoIncrement" json:"gender_id"`
	GenderName string `gorm:"size:60;uniqueIndex" json:"gender_name"`
}
