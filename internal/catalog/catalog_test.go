package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

func TestStatic_ReturnsDetachedCopy(t *testing.T) {
	p := NewStatic([]models.PocketOption{{ID: "poc-1", Name: "Tabungan"}})

	first, err := p.Pockets()
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := p.Pockets()
	require.NoError(t, err)
	assert.Equal(t, "Tabungan", second[0].Name)
}

func TestFile_LoadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pockets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`pockets:
  - id: poc-tabungan
    name: Tabungan
  - id: poc-emoney
    name: E-Money
`), 0o600))

	pockets, err := NewFile(path).Pockets()
	require.NoError(t, err)

	assert.Equal(t, []models.PocketOption{
		{ID: "poc-tabungan", Name: "Tabungan"},
		{ID: "poc-emoney", Name: "E-Money"},
	}, pockets)
}

func TestFile_RereadsOnEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pockets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pockets:\n  - id: poc-1\n    name: Tabungan\n"), 0o600))
	provider := NewFile(path)

	first, err := provider.Pockets()
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, os.WriteFile(path, []byte("pockets:\n  - id: poc-1\n    name: Tabungan\n  - id: poc-2\n    name: Investasi\n"), 0o600))

	second, err := provider.Pockets()
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestFile_EntryMissingIDOrName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pockets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pockets:\n  - name: Tabungan\n"), 0o600))

	_, err := NewFile(path).Pockets()
	assert.ErrorContains(t, err, "needs both id and name")
}

func TestFile_MissingFile(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "absent.yaml")).Pockets()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFile_RelativePathResolvedFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "pockets.yaml"),
		[]byte("pockets:\n  - id: poc-1\n    name: Tabungan\n"), 0o600))
	chdir(t, dir)

	pockets, err := NewFile("pockets.yaml").Pockets()
	require.NoError(t, err)
	assert.Len(t, pockets, 1)
}
