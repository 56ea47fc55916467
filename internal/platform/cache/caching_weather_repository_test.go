package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

// mockWeatherRepository はテスト用のWeatherRepositoryモック実装です。
type mockWeatherRepository struct {
	fetchFn func(ctx context.Context, city string) (string, error)
	calls   int
}

// FetchCurrent はモックのfetch関数を呼び出します。
func (m *mockWeatherRepository) FetchCurrent(ctx context.Context, city string) (string, error) {
	m.calls++
	if m.fetchFn != nil {
		return m.fetchFn(ctx, city)
	}
	return "", nil
}

// TestNewCachingWeatherRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingWeatherRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "weather",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "weather",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingWeatherRepository(nil, tt.ttl, &mockWeatherRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingWeatherRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部クライアントを直接呼び出すことを検証します。
func TestCachingWeatherRepository_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockWeatherRepository{
		fetchFn: func(ctx context.Context, city string) (string, error) {
			return "sunny,20C", nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingWeatherRepository(nil, 5*time.Minute, inner, "weather")

	out, err := repo.FetchCurrent(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "sunny,20C" {
		t.Errorf("expected passthrough payload, got %q", out)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
}

// TestCachingWeatherRepository_CacheHit はキャッシュヒット時にRedisからデータを返し、内部クライアントを呼ばないことを検証します。
func TestCachingWeatherRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockWeatherRepository{
		fetchFn: func(ctx context.Context, city string) (string, error) {
			return "", errors.New("must not reach the external API")
		},
	}

	repo := NewCachingWeatherRepository(rdb, 5*time.Minute, inner, "weather")

	mock.ExpectGet("weather:tokyo").SetVal("cached-payload")

	out, err := repo.FetchCurrent(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "cached-payload" {
		t.Errorf("expected cached payload, got %q", out)
	}
	if inner.calls != 0 {
		t.Errorf("inner must not be called on cache hit, got %d", inner.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingWeatherRepository_CacheMiss はキャッシュミス時に内部クライアントを呼び出し、結果をキャッシュに保存することを検証します。
func TestCachingWeatherRepository_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockWeatherRepository{
		fetchFn: func(ctx context.Context, city string) (string, error) {
			return "fresh-payload", nil
		},
	}

	repo := NewCachingWeatherRepository(rdb, 5*time.Minute, inner, "weather")

	mock.ExpectGet("weather:tokyo").RedisNil()
	mock.ExpectSet("weather:tokyo", "fresh-payload", 5*time.Minute).SetVal("OK")

	out, err := repo.FetchCurrent(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "fresh-payload" {
		t.Errorf("expected fresh payload, got %q", out)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestCachingWeatherRepository_FetchError は内部クライアントの失敗がそのまま伝播し、キャッシュに何も書かれないことを検証します。
func TestCachingWeatherRepository_FetchError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("network error")
	inner := &mockWeatherRepository{
		fetchFn: func(ctx context.Context, city string) (string, error) {
			return "", expectedErr
		},
	}

	repo := NewCachingWeatherRepository(rdb, 5*time.Minute, inner, "weather")

	mock.ExpectGet("weather:tokyo").RedisNil()

	_, err := repo.FetchCurrent(context.Background(), "Tokyo")
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error '%v', got: %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

// TestSafe はRedisキーに使えない文字のエスケープを検証します。
func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{"Tokyo", "tokyo"},
		{"New York", "new_york"},
		{"a:b c", "a_b_c"},
	}

	for _, tt := range tests {
		if got := safe(tt.in); got != tt.expected {
			t.Errorf("safe(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
