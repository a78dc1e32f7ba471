package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersions_Ordered(t *testing.T) {
	got, err := Versions()
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_users", "0002_email_tokens"}, got)
}

func TestMigrations_CreateGatewayTables(t *testing.T) {
	body, err := migrationsFS.ReadFile("migrations/0001_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "users_email_key")
	assert.Contains(t, string(body), "users_username_key")

	body, err = migrationsFS.ReadFile("migrations/0002_email_tokens.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "REFERENCES users")
}
