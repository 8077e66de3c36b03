package models

import (
	"time"
)

type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Tasks     []Task    `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Name      string    `gorm:"not null;size:200" json:"name"`
}
