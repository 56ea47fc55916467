// Package usecase はweatherフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
)

// WeatherRepository は外部の天気情報源を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type WeatherRepository interface {
	// FetchCurrent は指定された都市の現在の天気テキストを返します。
	FetchCurrent(ctx context.Context, city string) (string, error)
}

// HistoryRecorder は成功した検索の記録先を抽象化します。
type HistoryRecorder interface {
	// Record は指定ユーザーの検索を1件保存します。
	Record(ctx context.Context, userID uint, city string) error
}

// LookupResult is the outcome of one weather lookup.
type LookupResult struct {
	// Report is the raw response text from the weather service.
	Report string

	// RecordErr is non-nil when the fetch succeeded but the history write
	// failed. The report is still valid in that case; only the persistence
	// is degraded.
	RecordErr error
}

// WeatherUsecase は認証済みユーザーの天気検索を取りまとめます。
type WeatherUsecase struct {
	weather WeatherRepository
	history HistoryRecorder
}

// NewWeatherUsecase はWeatherUsecaseの新しいインスタンスを生成します。
func NewWeatherUsecase(weather WeatherRepository, history HistoryRecorder) *WeatherUsecase {
	return &WeatherUsecase{weather: weather, history: history}
}

// Lookup は都市の天気を取得し、成功時に検索履歴を1件記録します。
// 取得に失敗した場合、履歴は書き込まれません。リトライも行いません。
// 取得成功後の履歴書き込み失敗は結果に記録されますが、天気データ自体は返されます。
func (u *WeatherUsecase) Lookup(ctx context.Context, userID uint, city string) (*LookupResult, error) {
	report, err := u.weather.FetchCurrent(ctx, city)
	if err != nil {
		return nil, err
	}

	res := &LookupResult{Report: report}
	if err := u.history.Record(ctx, userID, city); err != nil {
		slog.Warn("failed to record search history", "user_id", userID, "city", city, "error", err)
		res.RecordErr = err
	}
	return res, nil
}
