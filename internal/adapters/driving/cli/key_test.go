package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCmd_HasSubcommands(t *testing.T) {
	commands := keyCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "clear")
}

func TestKeySetCmd_StoresKey(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"key", "set", "sk-new-key-98765"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "API key stored")

	key, err := settingsService.APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-new-key-98765", key)
}

func TestKeyShowCmd_MasksKey(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"key", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	// The seeded key is sk-test-key-12345; only the edges show.
	assert.Contains(t, buf.String(), "sk-t...2345")
	assert.NotContains(t, buf.String(), "sk-test-key-12345")
}

func TestKeyShowCmd_NotSet(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	require.NoError(t, settingsService.ClearAPIKey(context.Background()))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"key", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "(not set)")
}

func TestKeyClearCmd_RemovesKey(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"key", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "API key removed")

	key, err := settingsService.APIKey(context.Background())
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestKeySetCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	oldService := settingsService
	settingsService = nil
	defer func() {
		settingsService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"key", "set", "sk-whatever"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
