package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"backend/apperrors"
	"backend/logger"
	"backend/models"
)

const (
	defaultChunkSize     = 50
	backupMaxAttempts    = 3
	backupWebhookTimeout = 60 * time.Second
)

type BackupStore interface {
	CountProjects(ctx context.Context, orgID string) (int, error)
	ListProjectExports(ctx context.Context, orgID string, offset, limit int) ([]models.ProjectExport, error)
}

type BackupService struct {
	Store  BackupStore
	Client *http.Client
	// BaseDelay is the first retry delay; attempt n waits BaseDelay × 2^(n−1).
	BaseDelay time.Duration
}

type BackupOptions struct {
	ChunkSize int `json:"chunk_size"`
}

type BackupResult struct {
	TotalChunks   int   `json:"total_chunks"`
	TotalProjects int   `json:"total_projects"`
	FailedChunks  []int `json:"failed_chunks"`
	Success       bool  `json:"success"`
}

type backupChunkPayload struct {
	ChunkIndex  int                    `json:"chunkIndex"`
	TotalChunks int                    `json:"totalChunks"`
	ExportedAt  time.Time              `json:"exportedAt"`
	Count       int                    `json:"count"`
	Projects    []models.ProjectExport `json:"projects"`
}

func (s *BackupService) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s *BackupService) baseDelay() time.Duration {
	if s.BaseDelay > 0 {
		return s.BaseDelay
	}
	return 500 * time.Millisecond
}

// ExportOrganizationBackup pushes every project of the organization (with
// nested chantiers, quotes and invoices) to the webhook in fixed-size JSON
// chunks. A chunk that exhausts its retries is recorded in FailedChunks and
// the remaining chunks are still attempted; the job never aborts on a
// partial failure.
func (s *BackupService) ExportOrganizationBackup(ctx context.Context, orgID, webhookURL string, opts BackupOptions) (*BackupResult, error) {
	if err := validateWebhookURL(webhookURL); err != nil {
		return nil, err
	}
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	total, err := s.Store.CountProjects(ctx, orgID)
	if err != nil {
		return nil, err
	}

	totalChunks := (total + chunkSize - 1) / chunkSize
	result := &BackupResult{
		TotalChunks:   totalChunks,
		TotalProjects: total,
		FailedChunks:  []int{},
	}
	exportedAt := time.Now()

	for chunkIndex := 0; chunkIndex < totalChunks; chunkIndex++ {
		projects, err := s.Store.ListProjectExports(ctx, orgID, chunkIndex*chunkSize, chunkSize)
		if err != nil {
			logger.Error("backup export: fetch chunk %d/%d for org %s failed: %v", chunkIndex, totalChunks, orgID, err)
			result.FailedChunks = append(result.FailedChunks, chunkIndex)
			continue
		}
		payload := backupChunkPayload{
			ChunkIndex:  chunkIndex,
			TotalChunks: totalChunks,
			ExportedAt:  exportedAt,
			Count:       len(projects),
			Projects:    projects,
		}
		if err := s.sendWithRetry(ctx, webhookURL, payload); err != nil {
			logger.Error("backup export: chunk %d/%d for org %s gave up: %v", chunkIndex, totalChunks, orgID, err)
			result.FailedChunks = append(result.FailedChunks, chunkIndex)
		}
	}

	result.Success = len(result.FailedChunks) == 0
	return result, nil
}

// TestBackupWebhook validates the URL then sends a single ping payload
// through the shared retry helper.
func (s *BackupService) TestBackupWebhook(ctx context.Context, webhookURL string) error {
	if err := validateWebhookURL(webhookURL); err != nil {
		return err
	}
	return s.sendWithRetry(ctx, webhookURL, map[string]interface{}{
		"ping":       true,
		"exportedAt": time.Now(),
	})
}

// sendWithRetry POSTs the payload as JSON, retrying up to backupMaxAttempts
// with exponential backoff. Each attempt carries a 60-second timeout; a
// timeout counts as a failed attempt, not a crash.
func (s *BackupService) sendWithRetry(ctx context.Context, webhookURL string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= backupMaxAttempts; attempt++ {
		if attempt > 1 {
			delay := s.baseDelay() * time.Duration(1<<(attempt-2))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		lastErr = s.sendOnce(ctx, webhookURL, body)
		if lastErr == nil {
			return nil
		}
		logger.Warn("backup webhook attempt %d/%d failed: %v", attempt, backupMaxAttempts, lastErr)
	}
	return fmt.Errorf("webhook failed after %d attempts: %w", backupMaxAttempts, lastErr)
}

func (s *BackupService) sendOnce(ctx context.Context, webhookURL string, body []byte) error {
	callCtx, cancel := context.WithTimeout(ctx, backupWebhookTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func validateWebhookURL(webhookURL string) error {
	parsed, err := url.ParseRequestURI(webhookURL)
	if err != nil {
		return apperrors.Validation("URL de webhook invalide: %q", webhookURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return apperrors.Validation("URL de webhook invalide: %q", webhookURL)
	}
	return nil
}
