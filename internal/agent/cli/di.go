package cli

import (
	"github.com/IvanChernomyrdin/go-bookmarks/internal/agent/api"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = readPassword
)

func (a *App) client() *api.Client {
	return NewAPIClient(a.ServerURL, a.Insecure)
}
