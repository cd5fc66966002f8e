package db

import "time"

// ContactMessage 保存访客通过联系表单提交的留言，只追加不修改
type ContactMessage struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:80;not null"`
	Email     string `gorm:"size:120;not null"`
	Phone     string `gorm:"size:32;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName 返回自定义表名
func (ContactMessage) TableName() string {
	return "contact_messages"
}
