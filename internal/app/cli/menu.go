package cli

import (
	"context"
	"errors"
	"fmt"

	adminusecase "weather_app/internal/feature/admin/usecase"
	authusecase "weather_app/internal/feature/auth/usecase"
)

// timeLayout matches the original report format of the history tables.
const timeLayout = "2006-01-02 15:04:05"

// Run drives the top-level menu until the user exits or input runs out.
// Failures inside a menu action abort only that action; the loop continues.
func (a *App) Run(ctx context.Context) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1. Login")
		fmt.Fprintln(a.out, "2. Register")
		fmt.Fprintln(a.out, "3. Admin Interface")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := a.promptLine("Select an option: ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.login(ctx)
		case "2":
			a.register(ctx)
		case "3":
			a.adminReport(ctx)
		case "4":
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

// register prompts for credentials and creates a new account.
func (a *App) register(ctx context.Context) {
	username, err := a.promptLine("Enter username: ")
	if err != nil {
		return
	}
	password, err := a.promptPassword("Enter password: ")
	if err != nil {
		return
	}

	if err := a.auth.Register(ctx, username, password); err != nil {
		if errors.Is(err, authusecase.ErrUsernameAlreadyExists) {
			fmt.Fprintln(a.out, "Username already taken. Please choose another.")
			return
		}
		fmt.Fprintf(a.out, "Error during registration: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Registration successful!")
}

// login prompts for credentials and, on success, enters the session menu.
func (a *App) login(ctx context.Context) {
	username, err := a.promptLine("Enter username: ")
	if err != nil {
		return
	}
	password, err := a.promptPassword("Enter password: ")
	if err != nil {
		return
	}

	userID, err := a.auth.Authenticate(ctx, username, password)
	if err != nil {
		// 未登録ユーザーとパスワード誤りを区別しない
		fmt.Fprintln(a.out, "Invalid login or password.")
		return
	}

	a.session(ctx, userID)
}

// session drives the authenticated menu until logout.
func (a *App) session(ctx context.Context, userID uint) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1. Get Weather")
		fmt.Fprintln(a.out, "2. View Search History")
		fmt.Fprintln(a.out, "3. Logout")

		choice, err := a.promptLine("Select an option: ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.getWeather(ctx, userID)
		case "2":
			a.viewHistory(ctx, userID)
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
	}
}

// getWeather fetches the weather for a city and reports the outcome.
func (a *App) getWeather(ctx context.Context, userID uint) {
	city, err := a.promptLine("Enter city: ")
	if err != nil {
		return
	}

	res, err := a.weather.Lookup(ctx, userID, city)
	if err != nil {
		fmt.Fprintf(a.out, "Error fetching weather data: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Weather data:", res.Report)
	if res.RecordErr != nil {
		fmt.Fprintln(a.out, "Warning: could not save search history.")
	}
}

// viewHistory prints the user's recorded lookups.
func (a *App) viewHistory(ctx context.Context, userID uint) {
	recs, err := a.history.ListForUser(ctx, userID)
	if err != nil {
		fmt.Fprintf(a.out, "Error fetching search history: %v\n", err)
		return
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No search history found.")
		return
	}
	for _, rec := range recs {
		fmt.Fprintf(a.out, "City: %s, Time: %s\n", rec.City, rec.Timestamp.Format(timeLayout))
	}
}

// adminReport prompts for the shared secret and prints the aggregate report.
func (a *App) adminReport(ctx context.Context) {
	secret, err := a.promptPassword("Enter admin password: ")
	if err != nil {
		return
	}

	logs, err := a.admin.SearchLogs(ctx, secret)
	if err != nil {
		if errors.Is(err, adminusecase.ErrAccessDenied) {
			fmt.Fprintln(a.out, "Incorrect admin password.")
			return
		}
		fmt.Fprintf(a.out, "Error fetching search logs: %v\n", err)
		return
	}
	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No search history logs found.")
		return
	}
	for _, l := range logs {
		fmt.Fprintf(a.out, "User: %s, City: %s, Time: %s\n", l.Username, l.City, l.Timestamp.Format(timeLayout))
	}
}
