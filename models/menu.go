package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Menu is the single published menu an admin owns. The unique index on
// AdminID is what enforces one menu per admin; LinkID is the opaque public
// lookup key.
type Menu struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	AdminID        uint       `json:"admin_id" gorm:"uniqueIndex;not null"`
	Admin          Admin      `json:"admin,omitempty" gorm:"foreignKey:AdminID"`
	RestaurantName string     `json:"restaurant_name" gorm:"not null"`
	LinkID         string     `json:"link_id" gorm:"uniqueIndex;not null"`
	MenuItems      []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:MenuID"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MenuID      uint      `json:"menu_id" gorm:"not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Tags        Tags      `json:"tags" gorm:"type:text"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Tags is a free-form string set stored as a JSON text column, since sqlite
// has no native array type.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src interface{}) error {
	if src == nil {
		*t = Tags{}
		return nil
	}
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), t)
	case []byte:
		return json.Unmarshal(v, t)
	default:
		return fmt.Errorf("cannot scan %T into Tags", src)
	}
}
