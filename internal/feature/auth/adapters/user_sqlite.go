// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"weather_app/internal/feature/auth/domain/entity"
	"weather_app/internal/feature/auth/usecase"
)

// userSQLite はUserRepositoryインターフェースのSQLite実装です。
// GORMを使用してデータベース操作を行います。
type userSQLite struct {
	db *gorm.DB
}

// userSQLiteがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userSQLite)(nil)

// NewUserSQLite は指定されたgorm.DB接続でuserSQLiteの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserSQLite(db *gorm.DB) *userSQLite {
	return &userSQLite{db: db}
}

// Create はユーザーをデータベースに追加します。
// 同じユーザー名のユーザーが既に存在する場合、usecase.ErrUsernameAlreadyExistsを返します。
func (r *userSQLite) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// SQLITE_CONSTRAINT_UNIQUE: ユニークキーの重複エントリ
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return usecase.ErrUsernameAlreadyExists
		}
		return err
	}
	return nil
}

// FindByUsername はユーザー名でユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userSQLite) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userSQLite) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
