package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thentamil/novelreader/internal/client/models"
	_ "modernc.org/sqlite"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return NewManager(db)
}

func TestManager_TokenRoundTrip(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	token, err := m.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, m.SetToken(ctx, "abc"))

	token, err = m.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	require.NoError(t, m.RemoveToken(ctx))

	token, err = m.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestManager_UserRoundTrip(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	u, err := m.User(ctx)
	require.NoError(t, err)
	require.Nil(t, u)

	want := &models.User{ID: "u1", Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, m.SetUser(ctx, want))

	u, err = m.User(ctx)
	require.NoError(t, err)
	require.Equal(t, want, u)

	require.NoError(t, m.RemoveUser(ctx))
	u, err = m.User(ctx)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestManager_SaveSessionAndClearAuth(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	user := &models.User{ID: "u1", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, m.SaveSession(ctx, "abc", user))

	ok, err := m.IsAuthenticated(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := m.User(ctx)
	require.NoError(t, err)
	require.Equal(t, user, got)

	require.NoError(t, m.ClearAuth(ctx))

	ok, err = m.IsAuthenticated(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	got, err = m.User(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	// a second clear is a no-op
	require.NoError(t, m.ClearAuth(ctx))
}
