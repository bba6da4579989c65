package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thentamil/novelreader/internal/client/models"
	"github.com/thentamil/novelreader/internal/client/repositories/metadata"
	"github.com/thentamil/novelreader/internal/common"
	"github.com/thentamil/novelreader/internal/dbx"
)

// Manager is the process-wide token store.
type Manager struct {
	db *sql.DB
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{db: db}
}

func (m *Manager) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Token returns the persisted bearer token, or "" when none is stored.
func (m *Manager) Token(ctx context.Context) (string, error) {
	v, err := m.repo(m.db).Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (m *Manager) SetToken(ctx context.Context, token string) error {
	return m.repo(m.db).Set(ctx, common.TokenStorageKey, []byte(token))
}

func (m *Manager) RemoveToken(ctx context.Context) error {
	return m.repo(m.db).Delete(ctx, common.TokenStorageKey)
}

// User returns the cached user record, or nil when none is stored.
func (m *Manager) User(ctx context.Context) (*models.User, error) {
	v, err := m.repo(m.db).Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

func (m *Manager) SetUser(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return m.repo(m.db).Set(ctx, common.UserStorageKey, data)
}

func (m *Manager) RemoveUser(ctx context.Context) error {
	return m.repo(m.db).Delete(ctx, common.UserStorageKey)
}

// SaveSession persists token and user in a single transaction.
func (m *Manager) SaveSession(ctx context.Context, token string, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.repo(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, data)
	})
}

// ClearAuth removes token and user in a single transaction.
func (m *Manager) ClearAuth(ctx context.Context) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.repo(tx)
		if err := repo.Delete(ctx, common.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserStorageKey)
	})
}

// IsAuthenticated reports whether a token is present. No expiry validation
// happens client-side; an expired token simply earns a 401 on first use.
func (m *Manager) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := m.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
