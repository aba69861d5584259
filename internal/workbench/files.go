package workbench

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

// Directory names skipped by folder upload when the caller provides none.
var defaultIgnoreFolders = []string{"node_modules", ".git", ".vscode", "dist", "out"}

// ListProjectFiles lists files under a path in the project.
func (c *Client) ListProjectFiles(ctx context.Context, params Params) envelope.Result {
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	requestURL := c.v2("projects", projectID, "files")
	if path := params.String("path"); path != "" {
		query := url.Values{}
		query.Set("path", path)
		requestURL += "?" + query.Encode()
	}

	data, err := c.do(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return failure(err)
	}
	return envelope.Ok("Successfully retrieved project files").With("data", data)
}

// DeleteProjectFile deletes one file from the project.
func (c *Client) DeleteProjectFile(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("file_path"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	filePath := params.String("file_path")
	query := url.Values{}
	query.Set("path", filePath)
	requestURL := c.v2("projects", projectID, "files") + "?" + query.Encode()

	if _, err := c.do(ctx, http.MethodDelete, requestURL, nil); err != nil {
		return failure(err)
	}
	return envelope.Okf("File '%s' deleted successfully", filePath).With("file_path", filePath)
}

// UpdateProjectFileMetadata patches description or visibility of a file.
func (c *Client) UpdateProjectFileMetadata(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("file_path"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	filePath := params.String("file_path")
	body := map[string]any{"path": filePath}
	mergeOptional(body, params, "description", "hidden")

	data, err := c.do(ctx, http.MethodPatch, c.v2("projects", projectID, "files"), body)
	if err != nil {
		return failure(err)
	}
	return envelope.Okf("Metadata updated for '%s'", filePath).With("data", data)
}

// UploadFile uploads one local file into the project. target_dir and
// target_name override the destination; by default the file lands at the
// project root under its own name.
func (c *Client) UploadFile(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("file_path"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	localPath := params.String("file_path")
	info, statErr := os.Stat(localPath)
	if statErr != nil || info.IsDir() {
		return envelope.Failf("%s is not a valid file", localPath)
	}

	targetName := params.String("target_name")
	if targetName == "" {
		targetName = filepath.Base(localPath)
	}
	targetPath := targetName
	if dir := strings.Trim(params.String("target_dir"), "/"); dir != "" {
		targetPath = dir + "/" + targetName
	}

	if err := c.uploadOne(ctx, projectID, localPath, targetPath); err != nil {
		return envelope.Failf("Failed to upload file: %s", err)
	}
	return envelope.Okf("Successfully uploaded file: %s", targetPath).With("target_path", targetPath)
}

// UploadFolder walks a local directory tree and uploads every file that is
// not under an ignored directory. Per-file failures do not stop the walk;
// outcomes are aggregated and overall success requires zero failures.
func (c *Client) UploadFolder(ctx context.Context, params Params) envelope.Result {
	if err := params.Require("folder_path"); err != nil {
		return envelope.Fail(err.Error())
	}
	projectID, err := c.resolveProject(params)
	if err != nil {
		return envelope.Fail(err.Error())
	}

	root := params.String("folder_path")
	info, statErr := os.Stat(root)
	if statErr != nil || !info.IsDir() {
		return envelope.Failf("%s is not a valid directory", root)
	}

	ignored := params.StringSlice("ignore_folders")
	if len(ignored) == 0 {
		ignored = defaultIgnoreFolders
	}
	ignoredSet := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		ignoredSet[name] = struct{}{}
	}

	var uploaded []string
	var failed []map[string]any

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if _, skip := ignoredSet[entry.Name()]; skip && path != root {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		target := filepath.ToSlash(rel)

		if uploadErr := c.uploadOne(ctx, projectID, path, target); uploadErr != nil {
			failed = append(failed, map[string]any{"file": target, "error": uploadErr.Error()})
			return nil
		}
		uploaded = append(uploaded, target)
		return nil
	})
	if walkErr != nil {
		return envelope.Failf("Error uploading folder: %s", walkErr)
	}

	res := envelope.Okf("Upload completed. Successfully uploaded %d files.", len(uploaded))
	if len(failed) > 0 {
		res = envelope.Failf("Uploaded %d files, but failed to upload %d files", len(uploaded), len(failed))
	}
	return res.
		With("successful_count", len(uploaded)).
		With("failed_count", len(failed)).
		With("results", map[string]any{"success": uploaded, "failed": failed})
}

// uploadOne sends one file as a multipart PUT where the form field name is
// the target relative path and the value is the raw file bytes. Uploads
// are paced by the client's limiter so bulk uploads do not hammer the
// platform.
func (c *Client) uploadOne(ctx context.Context, projectID, localPath, targetPath string) error {
	if err := c.uploads.Wait(ctx); err != nil {
		return err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(targetPath, filepath.Base(localPath))
	if err != nil {
		return fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read %s: %w", localPath, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.v2("projects", projectID, "files"), &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if c.logger != nil {
		c.logger.Debug("uploading file", "target", targetPath)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("upload failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
