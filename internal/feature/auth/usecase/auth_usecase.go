// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"weather_app/internal/feature/auth/domain/entity"
	"weather_app/internal/platform/hash"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じユーザー名のユーザーが既に存在する場合、ErrUsernameAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher hash.PasswordHasher
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher hash.PasswordHasher) *authUsecase {
	return &authUsecase{users: users, hasher: hasher}
}

// Register はダイジェスト化されたパスワードで新規ユーザーを登録します。
// ハッシュ化に失敗した場合、平文を保存するフォールバックは行わず操作全体を失敗させます。
func (u *authUsecase) Register(ctx context.Context, username, password string) error {
	digest, err := u.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Username: username, Password: digest}
	return u.users.Create(ctx, user)
}

// dummyDigest はユーザーが存在しない場合のタイミング攻撃緩和用ダイジェストです。
// 検証が常に実行されることを保証します。
const dummyDigest = "c775e7b757ede630cd0aa1113bd102661ab38829ca52a6422ab782862f268646"

// Authenticate はユーザーを認証し、成功時にユーザーIDを返します。
// ユーザー未検出とパスワード不一致は呼び出し元から区別できないよう、
// どちらの場合もErrInvalidCredentialsを返します。
func (u *authUsecase) Authenticate(ctx context.Context, username, password string) (uint, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// タイミング攻撃防止のため、ユーザーが存在しない場合でもダイジェスト比較を実行
	digest := dummyDigest
	if err == nil {
		digest = user.Password
	}

	ok := u.hasher.Verify(digest, password)
	if err != nil || !ok {
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}
