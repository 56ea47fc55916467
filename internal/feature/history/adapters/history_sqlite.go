// Package adapters はhistoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"weather_app/internal/feature/history/domain/entity"
	"weather_app/internal/feature/history/usecase"
)

// historySQLite はHistoryRepositoryインターフェースのSQLite実装です。
type historySQLite struct {
	db *gorm.DB
}

// historySQLiteがHistoryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.HistoryRepository = (*historySQLite)(nil)

// NewHistorySQLite は指定されたDB接続でhistorySQLiteリポジトリの新しいインスタンスを生成します。
func NewHistorySQLite(db *gorm.DB) *historySQLite {
	return &historySQLite{db: db}
}

// Insert は検索履歴をデータベースに追加します。
// タイムスタンプは呼び出し元ではなくストアが挿入時に付与します。
func (r *historySQLite) Insert(ctx context.Context, rec *entity.SearchHistory) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListByUser は指定ユーザーの検索履歴を挿入順（id昇順）に返します。
// 履歴が存在しない場合は空のスライスを返します。エラーではありません。
func (r *historySQLite) ListByUser(ctx context.Context, userID uint) ([]entity.SearchHistory, error) {
	recs := make([]entity.SearchHistory, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListJoined は全検索履歴をusersテーブルと内部結合して返します。
// user_idがNULLまたは未解決のエントリは結合条件により除外されます。
func (r *historySQLite) ListJoined(ctx context.Context) ([]entity.SearchLog, error) {
	logs := make([]entity.SearchLog, 0)
	if err := r.db.WithContext(ctx).
		Table("search_history").
		Select("users.username, search_history.city, search_history.timestamp").
		Joins("JOIN users ON users.id = search_history.user_id").
		Order("search_history.id ASC").
		Scan(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
