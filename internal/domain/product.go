package domain

import "time"

type Product struct {
	ProductID   uint          `gorm:"primaryKey;autoIncrement" json:"product_id"`
	ProductName string        `gorm:"size:180;index" json:"product_name"`
	Description string        `gorm:"type:text" json:"description"`
	CategoryID  uint          `gorm:"index" json:"category_id"`
	GenderID    uint          `gorm:"index" json:"gender_id"`
	Items       []ProductItem `gorm:"foreignKey:ProductID;references:ProductID" json:"product_items"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ProductItem struct {
	ItemID    uint      `gorm:"primaryKey;autoIncrement" json:"item_id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	Color     string    `gorm:"size:60" json:"color"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
	Sizes     []Size    `gorm:"foreignKey:ItemID;references:ItemID" json:"sizes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Size struct {
	SizeID    uint      `gorm:"primaryKey;autoIncrement" json:"size_id"`
	ItemID    uint      `gorm:"index" json:"item_id"`
	Size      string    `gorm:"column:size;size:40" json:"size"`
	Price     int       `gorm:"not null" json:"price"`
	Stock     Stock     `gorm:"foreignKey:SizeID;references:SizeID" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductSubmission is the full aggregate a caller submits to create a
// product: every item with its sizes and their opening stock counts.
type ProductSubmission struct {
	ProductName string           `json:"product_name"`
	Description string           `json:"description"`
	CategoryID  uint             `json:"category_id"`
	GenderID    uint             `json:"gender_id"`
	Items       []ItemSubmission `json:"product_items"`
}

type ItemSubmission struct {
	Color    string           `json:"color"`
	ImageURL string           `json:"image_url"`
	Sizes    []SizeSubmission `json:"sizes"`
}

type SizeSubmission struct {
	Size  string `json:"size"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

// ProductPatch carries only the fields the caller wants changed. Nil
// means untouched. Nested patches address existing rows by identity.
type ProductPatch struct {
	ProductName *string     `json:"product_name"`
	Description *string     `json:"description"`
	CategoryID  *uint       `json:"category_id"`
	GenderID    *uint       `json:"gender_id"`
	Items       []ItemPatch `json:"product_items"`
	Sizes       []SizePatch `json:"sizes"`
}

type ItemPatch struct {
	ItemID   uint    `json:"item_id"`
	Color    *string `json:"color"`
	ImageURL *string `json:"image_url"`
}

type SizePatch struct {
	SizeID uint    `json:"size_id"`
	Size   *string `json:"size"`
	Price  *int    `json:"price"`
	Stock  *int    `json:"stock"`
}
