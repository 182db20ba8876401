package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"devconnector/internal/model"
)

// dryRunDB returns a MySQL-dialect gorm DB that builds statements without a
// server, and the rendered SQL of every write and query it builds.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	gdb, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:3306)/devconnector?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	var stmts []string
	capture := func(tx *gorm.DB) {
		stmts = append(stmts, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	}
	require.NoError(t, gdb.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, gdb.Callback().Update().After("gorm:update").Register("test:capture_update", capture))
	require.NoError(t, gdb.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture))
	require.NoError(t, gdb.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	return gdb, &stmts
}

func TestProfileRepository_UpdateWritesEmptiedFields(t *testing.T) {
	gdb, stmts := dryRunDB(t)
	repo := NewProfileRepository(gdb)

	err := repo.Update(context.Background(), &model.Profile{
		ID:         "p1",
		UserID:     "u1",
		Status:     "Developer",
		Skills:     []string{"Go"},
		Experience: []model.Experience{},
		Education:  []model.Education{},
		Date:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, *stmts, 1)

	sql := (*stmts)[0]
	assert.Contains(t, sql, "UPDATE `profiles` SET")
	assert.Contains(t, sql, "`experience`='[]'")
	assert.Contains(t, sql, "`education`='[]'")
	assert.Contains(t, sql, "`company`=''")
	assert.Contains(t, sql, "`skills`='[\"Go\"]'")
	assert.NotContains(t, sql, "`date`=")
	assert.NotContains(t, sql, "SET `id`=")
	assert.NotContains(t, sql, ",`id`=")
	assert.Contains(t, sql, "`id` = 'p1'")
}

func TestPostRepository_UpdateWritesEmptiedLists(t *testing.T) {
	gdb, stmts := dryRunDB(t)
	repo := NewPostRepository(gdb)

	err := repo.Update(context.Background(), &model.Post{
		ID:       "x1",
		UserID:   "u1",
		Text:     "hello",
		Likes:    []model.Like{},
		Comments: []model.Comment{},
	})
	require.NoError(t, err)
	require.Len(t, *stmts, 1)

	sql := (*stmts)[0]
	assert.Contains(t, sql, "UPDATE `posts` SET")
	assert.Contains(t, sql, "`likes`='[]'")
	assert.Contains(t, sql, "`comments`='[]'")
	assert.NotContains(t, sql, "`date`=")
	assert.Contains(t, sql, "`id` = 'x1'")
}

func TestPostRepository_Delete(t *testing.T) {
	gdb, stmts := dryRunDB(t)
	repo := NewPostRepository(gdb)

	// Nothing is executed, so no row is affected.
	err := repo.Delete(context.Background(), "x1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, repo.DeleteByUserID(context.Background(), "u1"))

	require.Len(t, *stmts, 2)
	assert.Contains(t, (*stmts)[0], "DELETE FROM `posts` WHERE id = 'x1'")
	assert.Contains(t, (*stmts)[1], "DELETE FROM `posts` WHERE user_id = 'u1'")
}

func TestGormRepositories_CreateAssignsIDs(t *testing.T) {
	gdb, stmts := dryRunDB(t)
	store := NewGormStore(gdb)

	profile := &model.Profile{UserID: "u1", Status: "Developer"}
	require.NoError(t, store.Profiles.Create(context.Background(), profile))
	assert.Len(t, profile.ID, 36)

	post := &model.Post{UserID: "u1", Text: "hello"}
	require.NoError(t, store.Posts.Create(context.Background(), post))
	assert.Len(t, post.ID, 36)

	require.Len(t, *stmts, 2)
	assert.Contains(t, (*stmts)[0], "INSERT INTO `profiles`")
	assert.Contains(t, (*stmts)[1], "INSERT INTO `posts`")
}

func TestGormRepositories_ListOrdering(t *testing.T) {
	gdb, stmts := dryRunDB(t)
	store := NewGormStore(gdb)

	_, err := store.Profiles.List(context.Background())
	require.NoError(t, err)
	_, err = store.Posts.List(context.Background())
	require.NoError(t, err)

	require.Len(t, *stmts, 2)
	assert.Contains(t, (*stmts)[0], "ORDER BY date ASC")
	assert.Contains(t, (*stmts)[1], "ORDER BY date DESC")
}
