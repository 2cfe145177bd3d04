package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *FileStorage {
	t.Helper()
	fs, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return fs
}

func TestSaveAndLoadFile(t *testing.T) {
	fs := newTestStorage(t)
	content := []byte("深夜的第一封邮件")

	require.NoError(t, fs.SaveFile("uploads", "note.txt", content))

	loaded, err := fs.LoadFile("uploads", "note.txt")
	require.NoError(t, err)
	assert.Equal(t, content, loaded)

	// 二次读取走缓存，内容一致
	cached, err := fs.LoadFile("uploads", "note.txt")
	require.NoError(t, err)
	assert.Equal(t, content, cached)
}

func TestSaveAndLoadJSONFile(t *testing.T) {
	fs := newTestStorage(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, fs.SaveJSONFile("stats", "record.json", record{Name: "年度报告", Count: 42}))

	var loaded record
	require.NoError(t, fs.LoadJSONFile("stats", "record.json", &loaded))
	assert.Equal(t, "年度报告", loaded.Name)
	assert.Equal(t, 42, loaded.Count)
}

func TestFileExists(t *testing.T) {
	fs := newTestStorage(t)

	assert.False(t, fs.FileExists("uploads", "missing.png"))

	require.NoError(t, fs.SaveFile("uploads", "qr.png", []byte{1, 2, 3}))
	assert.True(t, fs.FileExists("uploads", "qr.png"))
}

func TestFullPath(t *testing.T) {
	fs := newTestStorage(t)
	require.NoError(t, fs.SaveFile("exports", "page.png", []byte{1}))

	full := fs.FullPath("exports", "page.png")
	assert.Equal(t, "page.png", filepath.Base(full))

	_, err := os.Stat(full)
	assert.NoError(t, err)
}

func TestDeleteFile(t *testing.T) {
	fs := newTestStorage(t)
	require.NoError(t, fs.SaveFile("uploads", "qr.png", []byte{1, 2, 3}))

	require.NoError(t, fs.DeleteFile("uploads", "qr.png"))
	assert.False(t, fs.FileExists("uploads", "qr.png"))

	// 删除后缓存也失效
	_, err := fs.LoadFile("uploads", "qr.png")
	assert.Error(t, err)
}

func TestDeleteDir(t *testing.T) {
	fs := newTestStorage(t)
	require.NoError(t, fs.SaveFile("uploads", "a.png", []byte{1}))
	require.NoError(t, fs.SaveFile("uploads", "b.png", []byte{2}))

	require.NoError(t, fs.DeleteDir("uploads"))
	assert.False(t, fs.FileExists("uploads", "a.png"))
	assert.False(t, fs.FileExists("uploads", "b.png"))
}

func TestListFiles(t *testing.T) {
	fs := newTestStorage(t)

	t.Run("目录不存在返回空", func(t *testing.T) {
		files, err := fs.ListFiles("nowhere")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("列出已保存的文件", func(t *testing.T) {
		require.NoError(t, fs.SaveFile("exports", "a.png", []byte{1}))
		require.NoError(t, fs.SaveFile("exports", "b.png", []byte{2}))

		files, err := fs.ListFiles("exports")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.png", "b.png"}, files)
	})
}

func TestOverwriteInvalidatesCache(t *testing.T) {
	fs := newTestStorage(t)

	require.NoError(t, fs.SaveFile("uploads", "note.txt", []byte("第一版")))
	_, err := fs.LoadFile("uploads", "note.txt")
	require.NoError(t, err)

	require.NoError(t, fs.SaveFile("uploads", "note.txt", []byte("第二版")))
	loaded, err := fs.LoadFile("uploads", "note.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("第二版"), loaded)
}
