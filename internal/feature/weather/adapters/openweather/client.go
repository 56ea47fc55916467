package openweather

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"weather_app/internal/feature/weather/usecase"
)

// OpenWeatherClient はOpenWeatherMap外部APIから現在の天気を取得するWeatherRepository実装です。
type OpenWeatherClient struct {
	cfg    Config
	client *http.Client
}

// OpenWeatherClientがWeatherRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WeatherRepository = (*OpenWeatherClient)(nil)

// NewOpenWeatherClient は指定された設定とHTTPクライアントでOpenWeatherClientの新しいインスタンスを生成します。
func NewOpenWeatherClient(cfg Config, client *http.Client) *OpenWeatherClient {
	return &OpenWeatherClient{cfg: cfg, client: client}
}

// FetchCurrent は指定された都市の現在の天気を取得し、レスポンスボディをそのまま返します。
// レスポンスのスキーマ解析は行いません。表示・解釈は呼び出し元の責務です。
func (c *OpenWeatherClient) FetchCurrent(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("q", city)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", c.cfg.Units)

	// URLを生成
	u := fmt.Sprintf("%s/data/2.5/weather?%s", c.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	// リクエストを実行
	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openweather request failed: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("openweather http %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
