package entity

import "time"

// ServiceCategory groups professionals by kind of service.
type ServiceCategory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(140);uniqueIndex;not null" json:"name"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}
