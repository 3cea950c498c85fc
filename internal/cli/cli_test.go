package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authsqlite "github.com/goserg/sportscheduler/auth/storage/sqlite"
	"github.com/goserg/sportscheduler/internal/domain"
	"github.com/goserg/sportscheduler/internal/storage"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "cli.sqlite")
	path := filepath.Join(dir, "server.toml")
	content := fmt.Sprintf(`[server]
sqlite_file = %q

[auth]
token = "cli-secret"
bcrypt_cost = 4
`, dbFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path, dbFile
}

func execute(args ...string) error {
	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCommands(t *testing.T) {
	cmd := NewRootCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "create-admin"})
}

func TestMigrate(t *testing.T) {
	path, dbFile := writeConfig(t)
	require.NoError(t, execute("--config", path, "migrate"))
	_, err := os.Stat(dbFile)
	require.NoError(t, err)
}

func TestCreateAdmin(t *testing.T) {
	path, dbFile := writeConfig(t)
	require.NoError(t, execute("--config", path, "create-admin", "--email", "Boss@Test.com", "--password", "secret-password"))

	l := logrus.New()
	l.SetOutput(io.Discard)
	db, err := storage.New(l, dbFile)
	require.NoError(t, err)
	user, err := authsqlite.New(l, db).GetUserByEmail(context.Background(), "boss@test.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	require.NoError(t, db.Close())

	err = execute("--config", path, "create-admin", "--email", "boss@test.com", "--password", "secret-password")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateAdminNeedsPassword(t *testing.T) {
	path, _ := writeConfig(t)
	assert.Error(t, execute("--config", path, "create-admin", "--email", "boss@test.com"))
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\n"), 0o600))
	assert.Error(t, execute("--config", path, "migrate"))
}
