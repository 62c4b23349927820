package repository

import (
	"Folio/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo interface {
	// ResolveOrCreate 按名称精确查找标签，不存在则创建。tx 为空时使用默认连接
	ResolveOrCreate(ctx context.Context, tx *gorm.DB, name string) (*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) ResolveOrCreate(ctx context.Context, tx *gorm.DB, name string) (*model.Tag, error) {
	if tx == nil {
		tx = s.db
	}
	conn := tx.WithContext(ctx)

	tag, err := findTagByName(conn, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newTag := model.Tag{
		Name:      name,
		CreatedAt: time.Now(),
	}
	res := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&newTag)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &newTag, nil
	}

	// 并发写入方已插入同名标签。REPEATABLE READ 下普通读仍停留在首次查询的快照，
	// 需用加锁读取拿到已提交的行
	return findTagByName(lockingRead(conn), name)
}

func (s *tagRepoImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := s.db.WithContext(ctx).Order("name").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// lockingRead MySQL 使用 SELECT ... FOR UPDATE；SQLite 写事务本身串行，无需加锁
func lockingRead(conn *gorm.DB) *gorm.DB {
	if conn.Dialector.Name() != "mysql" {
		return conn
	}
	return conn.Clauses(clause.Locking{Strength: "UPDATE"})
}

func findTagByName(conn *gorm.DB, name string) (*model.Tag, error) {
	var tag model.Tag
	err := conn.Where("name = ?", name).Take(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
