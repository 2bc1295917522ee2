package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/apperrors"
	"backend/models"
)

type fakeBackupStore struct {
	projects []models.ProjectExport
}

func (f *fakeBackupStore) CountProjects(_ context.Context, _ string) (int, error) {
	return len(f.projects), nil
}

func (f *fakeBackupStore) ListProjectExports(_ context.Context, _ string, offset, limit int) ([]models.ProjectExport, error) {
	if offset >= len(f.projects) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.projects) {
		end = len(f.projects)
	}
	return f.projects[offset:end], nil
}

func backupStoreWith(n int) *fakeBackupStore {
	store := &fakeBackupStore{}
	for i := 0; i < n; i++ {
		store.projects = append(store.projects, models.ProjectExport{
			Project: models.Project{ID: fmt.Sprintf("p%d", i), Reference: fmt.Sprintf("PRJ-%05d", i)},
		})
	}
	return store
}

func TestExportBackupChunking(t *testing.T) {
	var chunks []backupChunkPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload backupChunkPayload
		require.NoError(t, json.Unmarshal(body, &payload))
		chunks = append(chunks, payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := &BackupService{Store: backupStoreWith(7), BaseDelay: time.Millisecond}
	result, err := svc.ExportOrganizationBackup(context.Background(), "org", server.URL, BackupOptions{ChunkSize: 3})
	require.NoError(t, err)

	// ceil(7/3) = 3 chunks of sizes 3, 3, 1.
	assert.Equal(t, 3, result.TotalChunks)
	assert.Equal(t, 7, result.TotalProjects)
	assert.True(t, result.Success)
	assert.Empty(t, result.FailedChunks)

	require.Len(t, chunks, 3)
	assert.Equal(t, 3, chunks[0].Count)
	assert.Equal(t, 3, chunks[1].Count)
	assert.Equal(t, 1, chunks[2].Count)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.ChunkIndex)
		assert.Equal(t, 3, chunk.TotalChunks)
		assert.Len(t, chunk.Projects, chunk.Count)
	}
}

func TestExportBackupRetriesThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := &BackupService{Store: backupStoreWith(1), BaseDelay: time.Millisecond}
	result, err := svc.ExportOrganizationBackup(context.Background(), "org", server.URL, BackupOptions{})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "two failures then a success")
}

func TestExportBackupRecordsFailedChunkAndContinues(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload backupChunkPayload
		_ = json.Unmarshal(body, &payload)
		atomic.AddInt32(&calls, 1)
		if payload.ChunkIndex == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := &BackupService{Store: backupStoreWith(4), BaseDelay: time.Millisecond}
	result, err := svc.ExportOrganizationBackup(context.Background(), "org", server.URL, BackupOptions{ChunkSize: 2})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, []int{0}, result.FailedChunks)
	assert.Equal(t, 2, result.TotalChunks, "the second chunk is still attempted")
	// Chunk 0 exhausts its 3 attempts, chunk 1 succeeds first try.
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestExportBackupEmptyOrganization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no chunk should be sent for an empty organization")
	}))
	defer server.Close()

	svc := &BackupService{Store: backupStoreWith(0), BaseDelay: time.Millisecond}
	result, err := svc.ExportOrganizationBackup(context.Background(), "org", server.URL, BackupOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalChunks)
	assert.True(t, result.Success)
}

func TestBackupWebhookURLValidation(t *testing.T) {
	svc := &BackupService{Store: backupStoreWith(1)}
	for _, bad := range []string{"", "not-a-url", "ftp://example.com/hook", "http://"} {
		_, err := svc.ExportOrganizationBackup(context.Background(), "org", bad, BackupOptions{})
		require.Error(t, err, "url %q", bad)
		assert.True(t, apperrors.IsValidation(err), "url %q: %v", bad, err)
	}
}

func TestTestBackupWebhookSendsPing(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := &BackupService{BaseDelay: time.Millisecond}
	require.NoError(t, svc.TestBackupWebhook(context.Background(), server.URL))
	assert.Equal(t, true, got["ping"])

	assert.Error(t, svc.TestBackupWebhook(context.Background(), "nope"))
}
