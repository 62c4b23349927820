package database

import (
	"Folio/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// RegisterJoinTables 注册 document_tags 关联模型，Preload 与 AutoMigrate 之前调用
func RegisterJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Document{}, "Tags", &model.DocumentTag{}); err != nil {
		return fmt.Errorf("failed to setup join table: %w", err)
	}
	return nil
}

// Migrate 建表
func Migrate(db *gorm.DB) error {
	if err := RegisterJoinTables(db); err != nil {
		return err
	}

	if err := db.AutoMigrate(&model.Tag{}, &model.Document{}, &model.DocumentTag{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// MySQL 默认排序规则忽略大小写，标签名需按原样区分
	if db.Dialector.Name() == "mysql" {
		err := db.Exec("ALTER TABLE tags MODIFY name VARCHAR(100) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL").Error
		if err != nil {
			return fmt.Errorf("failed to set tag name collation: %w", err)
		}
	}

	return nil
}
