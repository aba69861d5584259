package workbench

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadRecorder collects the multipart field names of every upload, which
// carry the target-relative paths.
type uploadRecorder struct {
	targets []string
	failOn  string
}

func (u *uploadRecorder) handler() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.Write([]byte(`{}`))
			return
		}
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for field := range r.MultipartForm.File {
			u.targets = append(u.targets, field)
			if field == u.failOn {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message":"disk full"}`))
				return
			}
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestUploadFileTargetPath(t *testing.T) {
	rec := &uploadRecorder{}
	backend := newFakeBackend(t, rec.handler())
	c := backend.client(t, "p1")

	local := filepath.Join(t.TempDir(), "train.py")
	require.NoError(t, os.WriteFile(local, []byte("print('hi')"), 0o644))

	res := c.UploadFile(context.Background(), Params{
		"file_path":   local,
		"target_dir":  "/src/",
		"target_name": "entry.py",
	})
	require.True(t, res.Success)
	assert.Equal(t, "Successfully uploaded file: src/entry.py", res.Message)
	assert.Equal(t, []string{"src/entry.py"}, rec.targets)

	target, ok := res.Field("target_path")
	require.True(t, ok)
	assert.Equal(t, "src/entry.py", target)
}

func TestUploadFileRejectsMissingOrDirectory(t *testing.T) {
	backend := newFakeBackend(t, nil)
	c := backend.client(t, "p1")

	res := c.UploadFile(context.Background(), Params{"file_path": "/no/such/file.py"})
	require.False(t, res.Success)
	assert.Equal(t, "/no/such/file.py is not a valid file", res.Message)

	dir := t.TempDir()
	res = c.UploadFile(context.Background(), Params{"file_path": dir})
	require.False(t, res.Success)
	assert.Equal(t, dir+" is not a valid file", res.Message)
	assert.Empty(t, backend.requests)
}

func TestUploadFolderSkipsIgnoredDirectories(t *testing.T) {
	rec := &uploadRecorder{}
	backend := newFakeBackend(t, rec.handler())
	c := backend.client(t, "p1")

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.py":               "print('main')",
		"src/util.py":           "pass",
		"node_modules/lib/x.js": "ignored",
		".git/HEAD":             "ignored",
		"dist/bundle.js":        "ignored",
		"src/node_modules/y.js": "ignored",
		"docs/guide.md":         "hello",
	})

	res := c.UploadFolder(context.Background(), Params{"folder_path": root})
	require.True(t, res.Success)
	assert.Equal(t, "Upload completed. Successfully uploaded 3 files.", res.Message)

	sort.Strings(rec.targets)
	assert.Equal(t, []string{"docs/guide.md", "main.py", "src/util.py"}, rec.targets)

	count, _ := res.Field("successful_count")
	assert.Equal(t, 3, count)
	failedCount, _ := res.Field("failed_count")
	assert.Equal(t, 0, failedCount)
}

func TestUploadFolderCustomIgnoreList(t *testing.T) {
	rec := &uploadRecorder{}
	backend := newFakeBackend(t, rec.handler())
	c := backend.client(t, "p1")

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.py":         "x",
		"secrets/key.pem": "x",
	})

	res := c.UploadFolder(context.Background(), Params{
		"folder_path":    root,
		"ignore_folders": []string{"secrets"},
	})
	require.True(t, res.Success)
	assert.Equal(t, []string{"keep.py"}, rec.targets)
}

func TestUploadFolderPartialFailure(t *testing.T) {
	rec := &uploadRecorder{failOn: "bad.py"}
	backend := newFakeBackend(t, rec.handler())
	c := backend.client(t, "p1")

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"bad.py":  "x",
		"good.py": "x",
	})

	res := c.UploadFolder(context.Background(), Params{"folder_path": root})
	require.False(t, res.Success)
	assert.Equal(t, "Uploaded 1 files, but failed to upload 1 files", res.Message)

	results, ok := res.Field("results")
	require.True(t, ok)
	outcome := results.(map[string]any)
	assert.Equal(t, []string{"good.py"}, outcome["success"])
	failed := outcome["failed"].([]map[string]any)
	require.Len(t, failed, 1)
	assert.Equal(t, "bad.py", failed[0]["file"])
}

func TestUploadFolderRejectsNonDirectory(t *testing.T) {
	backend := newFakeBackend(t, nil)
	c := backend.client(t, "p1")

	res := c.UploadFolder(context.Background(), Params{"folder_path": "/no/such/dir"})
	require.False(t, res.Success)
	assert.Equal(t, "/no/such/dir is not a valid directory", res.Message)
	assert.Empty(t, backend.requests)
}

func TestDeleteProjectFileQuery(t *testing.T) {
	backend := newFakeBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := backend.client(t, "p1")

	res := c.DeleteProjectFile(context.Background(), Params{"file_path": "src/old.py"})
	require.True(t, res.Success)
	assert.Equal(t, "File 'src/old.py' deleted successfully", res.Message)

	req := backend.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/v2/projects/p1/files", req.Path)
	assert.Equal(t, "path=src%2Fold.py", req.Query)
}

func TestListProjectFilesOptionalPath(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{"files":[]}`))
	c := backend.client(t, "p1")

	res := c.ListProjectFiles(context.Background(), Params{})
	require.True(t, res.Success)
	assert.Empty(t, backend.last(t).Query)

	res = c.ListProjectFiles(context.Background(), Params{"path": "src"})
	require.True(t, res.Success)
	assert.Equal(t, "path=src", backend.last(t).Query)
}

func TestUpdateProjectFileMetadataBody(t *testing.T) {
	backend := newFakeBackend(t, jsonResponse(200, `{}`))
	c := backend.client(t, "p1")

	res := c.UpdateProjectFileMetadata(context.Background(), Params{
		"file_path": "README.md",
		"hidden":    true,
	})
	require.True(t, res.Success)
	assert.Equal(t, "Metadata updated for 'README.md'", res.Message)

	req := backend.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, map[string]any{"path": "README.md", "hidden": true}, req.Body)
}
