package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"microblog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	content := "hello world"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WithArgs("First post", content, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	post := &models.Post{Title: "First post", Content: &content, AuthorID: 1}
	err := repo.Create(ctx, post)

	require.NoError(t, err)
	assert.Equal(t, uint(1), post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create_UnknownAuthor(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "posts_author_id_fkey"})
	mock.ExpectRollback()

	err := repo.Create(ctx, &models.Post{Title: "Orphan", AuthorID: 42})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeInvalidReference, appErr.Code)
	assert.Equal(t, "Author not found", appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func postJoinColumns() []string {
	return []string{
		"id", "title", "content", "author_id", "created_at", "updated_at",
		"Author__id", "Author__email", "Author__name",
	}
}

func TestPostRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	newer := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(postJoinColumns()).
		AddRow(2, "Second", nil, 1, newer, newer, 1, "a@x.com", "A").
		AddRow(1, "First", "body", 1, older, older, 1, "a@x.com", "A")
	mock.ExpectQuery(`SELECT (.+) FROM "posts" LEFT JOIN "users" "Author" ON`).
		WillReturnRows(rows)

	posts, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.True(t, !posts[0].CreatedAt.Before(posts[1].CreatedAt),
		"posts should be ordered newest first")
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "A", posts[0].Author.Name)
	assert.Equal(t, "a@x.com", posts[0].Author.Email)
	assert.Nil(t, posts[0].Content)
	require.NotNil(t, posts[1].Content)
	assert.Equal(t, "body", *posts[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List_UnresolvedAuthorKeepsRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows(postJoinColumns()).
		AddRow(1, "Orphaned", nil, 42, now, now, nil, nil, nil)
	mock.ExpectQuery(`SELECT (.+) FROM "posts" LEFT JOIN "users" "Author" ON`).
		WillReturnRows(rows)

	posts, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	joined := posts[0].WithAuthor()
	assert.Nil(t, joined.Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tests := []struct {
		name         string
		postID       uint
		mockBehavior func()
		expectedCode string
	}{
		{
			name:   "Success",
			postID: 1,
			mockBehavior: func() {
				now := time.Now()
				rows := sqlmock.NewRows(postJoinColumns()).
					AddRow(1, "First", "body", 1, now, now, 1, "a@x.com", "A")
				mock.ExpectQuery(`SELECT (.+) FROM "posts" LEFT JOIN "users" "Author" ON`).
					WillReturnRows(rows)
			},
		},
		{
			name:   "Not Found",
			postID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(`SELECT (.+) FROM "posts" LEFT JOIN "users" "Author" ON`).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedCode: models.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			post, err := repo.GetByID(ctx, tt.postID)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, appErrCode(t, err))
			} else if assert.NotNil(t, post) {
				assert.Equal(t, "First", post.Title)
				require.NotNil(t, post.Author)
				assert.Equal(t, "a@x.com", post.Author.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_GetByAuthorID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id", "created_at", "updated_at"}).
		AddRow(3, "Third", nil, 1, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE author_id = $1`)).
		WithArgs(1).
		WillReturnRows(rows)

	posts, err := repo.GetByAuthorID(ctx, 1)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint(1), posts[0].AuthorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByAuthorID_UnknownAuthorIsEmpty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id", "created_at", "updated_at"})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE author_id = $1`)).
		WithArgs(404).
		WillReturnRows(rows)

	posts, err := repo.GetByAuthorID(ctx, 404)

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	content := "kept"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts"`)).
		WithArgs("Renamed", content, 1, sqlmock.AnyArg(), sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	post := &models.Post{ID: 1, Title: "Renamed", Content: &content, AuthorID: 1}
	err := repo.Update(ctx, post)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts"`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, &models.Post{ID: 1})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
