package main

import (
	"bytes"
	"strings"
	"testing"

	"cipher-backend/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_EncryptDecrypt(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"key encrypt", []string{"encrypt", "--key", "KEYWORD", "Hello, World!"}, "Rijhc, Gsphr!\n"},
		{"key decrypt", []string{"decrypt", "-k", "keyword", "Rijhc, Gsphr!"}, "Hello, World!\n"},
		{"shift encrypt", []string{"encrypt", "--shift", "3", "Hello,", "World!"}, "Khoor, Zruog!\n"},
		{"negative shift decrypt", []string{"decrypt", "--shift=-23", "Khoor, Zruog!"}, "Hello, World!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCLI_Stdin(t *testing.T) {
	out, err := execute(t, "Hello, World!\n", "encrypt", "--shift", "3")
	require.NoError(t, err)
	assert.Equal(t, "Khoor, Zruog!\n", out)

	out, err = execute(t, "", "decrypt", "--key", "KEY")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestCLI_Errors(t *testing.T) {
	_, err := execute(t, "", "encrypt", "text")
	require.Error(t, err)

	_, err = execute(t, "", "encrypt", "--key", "KEY", "--shift", "1", "text")
	require.Error(t, err)

	_, err = execute(t, "", "encrypt", "--key", "K3Y", "text")
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)

	_, err = execute(t, "", "encrypt", "--key", "", "text")
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestCLI_ServeRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "", "serve", "--config", t.TempDir()+"/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration file")

	_, err = execute(t, "", "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}
