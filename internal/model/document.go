package model

import (
	"time"
)

type Document struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`

	// 关联关系
	Tags []*Tag `gorm:"many2many:document_tags;joinForeignKey:DocumentID;joinReferences:TagID" json:"tags"`
}

func (Document) TableName() string {
	return "documents"
}
