// Package cli implements the interactive console surface: numeric menus,
// prompts and result printing. All state changes go through the usecases;
// this package owns nothing but I/O.
package cli

import (
	"bufio"
	"context"
	"io"

	historyentity "weather_app/internal/feature/history/domain/entity"
	weatherusecase "weather_app/internal/feature/weather/usecase"
)

// AuthService is the credential surface the menus need.
// The real auth usecase satisfies this interface; tests provide stubs.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (uint, error)
}

// WeatherService performs a lookup for an authenticated user.
type WeatherService interface {
	Lookup(ctx context.Context, userID uint, city string) (*weatherusecase.LookupResult, error)
}

// HistoryService reads back a user's recorded lookups.
type HistoryService interface {
	ListForUser(ctx context.Context, userID uint) ([]historyentity.SearchHistory, error)
}

// AdminService exposes the gated aggregate report.
type AdminService interface {
	SearchLogs(ctx context.Context, secret string) ([]historyentity.SearchLog, error)
}

// App drives one interactive session over the injected services.
type App struct {
	auth    AuthService
	weather WeatherService
	history HistoryService
	admin   AdminService

	in  *bufio.Reader
	out io.Writer
}

// NewApp creates an App reading from in and writing to out.
func NewApp(auth AuthService, weather WeatherService, history HistoryService, admin AdminService, in io.Reader, out io.Writer) *App {
	return &App{
		auth:    auth,
		weather: weather,
		history: history,
		admin:   admin,
		in:      bufio.NewReader(in),
		out:     out,
	}
}
