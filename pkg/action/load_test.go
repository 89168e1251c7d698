package action

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_DefaultFilenames(t *testing.T) {
	ctx := context.Background()

	t.Run("action.yml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "action.yml"), "yml")

		data, path, err := Load(ctx, dir, "")
		require.NoError(t, err)
		assert.Equal(t, "yml", string(data))
		assert.Equal(t, filepath.Join(dir, "action.yml"), path)
	})

	t.Run("action.yaml fallback", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "action.yaml"), "yaml")

		data, path, err := Load(ctx, dir, "")
		require.NoError(t, err)
		assert.Equal(t, "yaml", string(data))
		assert.Equal(t, filepath.Join(dir, "action.yaml"), path)
	})

	t.Run("action.yml wins over action.yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "action.yml"), "yml")
		writeFile(t, filepath.Join(dir, "action.yaml"), "yaml")

		data, _, err := Load(ctx, dir, "")
		require.NoError(t, err)
		assert.Equal(t, "yml", string(data))
	})

	t.Run("neither exists", func(t *testing.T) {
		_, _, err := Load(ctx, t.TempDir(), "")
		require.Error(t, err)
		assert.True(t, os.IsNotExist(errors.Cause(err)))
		assert.Contains(t, err.Error(), "action.yaml")
	})
}

func TestLoad_ExplicitPath(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dir", "action.yml"), "nested")
	writeFile(t, filepath.Join(dir, "action.yml"), "root")

	data, path, err := Load(ctx, dir, "dir/action.yml")
	require.NoError(t, err)
	assert.Equal(t, "nested", string(data))
	assert.Equal(t, filepath.Join(dir, "dir", "action.yml"), path)

	data, _, err = Load(ctx, "/nonexistent", filepath.Join(dir, "dir", "action.yml"))
	require.NoError(t, err)
	assert.Equal(t, "nested", string(data))

	_, _, err = Load(ctx, dir, "not-found-file.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-found-file.yml")
}

func TestSchema(t *testing.T) {
	schema := Schema()
	require.NotNil(t, schema)

	raw, err := json.Marshal(schema)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "object", doc["type"])
	assert.ElementsMatch(t, []any{"name", "description"}, doc["required"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"name", "author", "description", "inputs", "outputs", "branding"} {
		assert.Contains(t, props, key)
	}

	inputs, ok := props["inputs"].(map[string]any)
	require.True(t, ok)
	entry, ok := inputs["additionalProperties"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"description"}, entry["required"])
}
