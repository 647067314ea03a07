package models

import (
	"time"

	"gorm.io/gorm"
)

// CartLine is a pending per-user, per-menu-item quantity selection not yet
// committed to an order. UnitPrice is snapshotted from the menu item when
// the line is added and does not track later menu price changes.
type CartLine struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItem   MenuItem  `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	UnitPrice  float64   `json:"unit_price" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeSave keeps Price equal to Quantity × UnitPrice.
func (cl *CartLine) BeforeSave(tx *gorm.DB) error {
	cl.Price = float64(cl.Quantity) * cl.UnitPrice
	return nil
}
