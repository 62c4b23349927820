package repository

import (
	"Folio/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// raceTagInsert 在标签 INSERT 之前以同一连接抢先写入同名标签，模拟并发写入方先提交
func raceTagInsert(t *testing.T, db *gorm.DB, name string) {
	t.Helper()
	fired := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:race_tags", func(tx *gorm.DB) {
		tag, ok := tx.Statement.Dest.(*model.Tag)
		if fired || !ok || tag.Name != name {
			return
		}
		fired = true
		err := tx.Session(&gorm.Session{NewDB: true}).
			Exec("INSERT INTO tags (name, created_at) VALUES (?, ?)", name, time.Now()).Error
		require.NoError(t, err)
	}))
	t.Cleanup(func() {
		_ = db.Callback().Create().Remove("test:race_tags")
		require.True(t, fired)
	})
}

func TestTagRepo_ResolveOrCreate_ConflictRefetchesExisting(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	raceTagInsert(t, db, "Kafka")

	tag, err := repo.ResolveOrCreate(context.Background(), nil, "Kafka")
	require.NoError(t, err)
	require.Equal(t, "Kafka", tag.Name)

	var stored model.Tag
	require.NoError(t, db.Where("name = ?", "Kafka").Take(&stored).Error)
	require.Equal(t, stored.ID, tag.ID)
	require.Equal(t, int64(1), countRows(t, db, "tags"))
}

func TestDocumentRepo_CreateDocument_TagConflictInsideTransaction(t *testing.T) {
	db, repo := newDocumentRepo(t)
	raceTagInsert(t, db, "Redis")

	doc := &model.Document{Title: "Cache", Content: "c"}
	require.NoError(t, repo.CreateDocument(context.Background(), doc, []string{"Redis", "Go"}))
	require.Equal(t, []string{"Redis", "Go"}, tagNames(doc))

	got, err := repo.GetDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Redis", "Go"}, tagNames(got))
	require.Equal(t, int64(2), countRows(t, db, "tags"))
	require.Equal(t, int64(2), countRows(t, db, "document_tags"))
}

func TestLockingRead(t *testing.T) {
	mysqlDB, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "folio:folio@tcp(127.0.0.1:3306)/folio",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, Logger: logger.Discard})
	require.NoError(t, err)

	var tag model.Tag
	stmt := lockingRead(mysqlDB).Where("name = ?", "Go").Take(&tag).Statement
	require.Contains(t, stmt.SQL.String(), "FOR UPDATE")

	sqliteDB := newTestDB(t).Session(&gorm.Session{DryRun: true})
	stmt = lockingRead(sqliteDB).Where("name = ?", "Go").Take(&tag).Statement
	require.NotContains(t, stmt.SQL.String(), "FOR UPDATE")
}
