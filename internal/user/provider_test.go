package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/app"
	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/internal/user"
)

func TestServiceProvider_MountsRoutesOverDatabase(t *testing.T) {
	db := openDB(t)
	a, err := app.New(&config.Config{App: config.AppConfig{Name: "test", Env: "testing"}}, zap.NewNop())
	require.NoError(t, err)
	a.Instance("db", db)
	require.NoError(t, a.Register(&user.ServiceProvider{}))
	require.NoError(t, a.Boot())

	repo, err := container.Resolve[user.Repository](a.Container, "users.repository")
	require.NoError(t, err)
	require.NoError(t, user.Seed(context.Background(), repo, zap.NewNop()))

	rr := httptest.NewRecorder()
	a.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got []user.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.ElementsMatch(t, user.Fixtures, got)
}

func TestServiceProvider_BootFailsWithoutDatabase(t *testing.T) {
	a, err := app.New(&config.Config{App: config.AppConfig{Name: "test", Env: "testing"}}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, a.Register(&user.ServiceProvider{}))

	assert.ErrorIs(t, a.Boot(), container.ErrNotBound)
}
