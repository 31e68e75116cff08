package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"tracking/internal/adapters/out/filestore"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReportFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func mustSerial(t *testing.T, value string) kernel.Serial {
	t.Helper()
	serial, err := kernel.NewSerial(value)
	require.NoError(t, err)
	return serial
}

func TestNewReportStore_RequiresDir(t *testing.T) {
	_, err := filestore.NewReportStore("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestReportStoreListSerials(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeReportFile(t, dir, "78532608-69.txt", "north 3\n")
	writeReportFile(t, dir, "12345678-01.txt", "south 1\n")
	writeReportFile(t, dir, "notes.md", "ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o700))

	store, err := filestore.NewReportStore(dir)
	require.NoError(t, err)

	// Act
	serials, err := store.ListSerials()

	// Assert
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"78532608-69", "12345678-01"}, serials)
}

func TestReportStoreListSerials_MissingDir(t *testing.T) {
	// Arrange
	store, err := filestore.NewReportStore(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)

	// Act
	_, err = store.ListSerials()

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReportStoreMovements(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	serial := mustSerial(t, "78532608-69")
	writeReportFile(t, dir, "78532608-69.txt",
		"north 3\n"+
			"EAST 2.5\n"+
			"garbage\n"+
			"west -1\n"+
			"north NaN\n"+
			"east +Inf\n"+
			"south ten\n"+
			"up 1 extra\n"+
			"south 4\n")

	store, err := filestore.NewReportStore(dir)
	require.NoError(t, err)

	// Act
	movements, err := store.Movements(serial)

	// Assert
	require.NoError(t, err)
	require.Len(t, movements, 3)

	// Well-formed lines survive in file order, direction lowercased.
	assert.Equal(t, "north", movements[0].Direction)
	assert.InDelta(t, 3, movements[0].Distance, 1e-9)
	assert.Equal(t, "east", movements[1].Direction)
	assert.InDelta(t, 2.5, movements[1].Distance, 1e-9)
	assert.Equal(t, "south", movements[2].Direction)
	assert.InDelta(t, 4, movements[2].Distance, 1e-9)
}

func TestReportStoreMovements_MissingFile(t *testing.T) {
	// Arrange
	store, err := filestore.NewReportStore(t.TempDir())
	require.NoError(t, err)

	// Act
	_, err = store.Movements(mustSerial(t, "78532608-69"))

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestReportStoreMovements_EmptyFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeReportFile(t, dir, "78532608-69.txt", "")

	store, err := filestore.NewReportStore(dir)
	require.NoError(t, err)

	// Act
	movements, err := store.Movements(mustSerial(t, "78532608-69"))

	// Assert
	require.NoError(t, err)
	assert.Empty(t, movements)
}
