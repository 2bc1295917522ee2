package services

import (
	"context"

	"backend/apperrors"
	"backend/logger"
	"backend/models"
)

// ChantierSyncStore is the persistence surface the status engine needs.
// Every call is scoped to an organization id; repository.GormStore is the
// production implementation.
type ChantierSyncStore interface {
	GetProject(ctx context.Context, orgID, projectID string) (*models.Project, error)
	UpdateProjectStatus(ctx context.Context, orgID, projectID, status string) error
	ListChantiersByProject(ctx context.Context, orgID, projectID string) ([]models.Chantier, error)
	GetChantier(ctx context.Context, orgID, chantierID string) (*models.Chantier, error)
	UpdateChantierStatus(ctx context.Context, orgID, chantierID, status string) error
}

// StatusSyncService keeps a project's status consistent with its chantiers.
type StatusSyncService struct {
	Store ChantierSyncStore
}

// DeriveProjectStatusFromChantiers returns the project-equivalent status
// implied by the most advanced chantier, or "" when there are none. Legacy
// chantier statuses are translated; values known to neither vocabulary are
// skipped as history.
func DeriveProjectStatusFromChantiers(chantiers []models.Chantier) string {
	best := -1
	bestStatus := ""
	for _, c := range chantiers {
		normalized, ok := NormalizeChantierStatus(c.Status)
		if !ok {
			continue
		}
		idx, _ := StatusIndex(normalized)
		if idx > best {
			best = idx
			bestStatus = normalized
		}
	}
	return bestStatus
}

// SyncProjectStatusWithChantiers raises the project status to the floor
// implied by its chantiers. One-directional ratchet: chantier progress pulls
// the project forward, never backward. Returns the project and whether a
// write happened; a second call with unchanged chantiers is a no-op.
func (s *StatusSyncService) SyncProjectStatusWithChantiers(ctx context.Context, orgID, projectID string) (*models.Project, bool, error) {
	project, err := s.Store.GetProject(ctx, orgID, projectID)
	if err != nil {
		return nil, false, err
	}
	chantiers, err := s.Store.ListChantiersByProject(ctx, orgID, projectID)
	if err != nil {
		return nil, false, err
	}

	derived := DeriveProjectStatusFromChantiers(chantiers)
	if derived == "" {
		return project, false, nil
	}

	derivedIdx, _ := StatusIndex(derived)
	currentIdx, ok := StatusIndex(project.Status)
	if ok && derivedIdx <= currentIdx {
		return project, false, nil
	}

	if err := s.Store.UpdateProjectStatus(ctx, orgID, projectID, derived); err != nil {
		return nil, false, err
	}
	project.Status = derived
	return project, true, nil
}

// UpdateProjectStatus is the manual project edit path: the transition guard
// applies, and the edit is rejected when it would leave the project behind
// its most advanced chantier.
func (s *StatusSyncService) UpdateProjectStatus(ctx context.Context, orgID, projectID, next string) (*models.Project, error) {
	project, err := s.Store.GetProject(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}
	if err := EnsureProjectStatusTransition(project.Status, next); err != nil {
		return nil, err
	}
	chantiers, err := s.Store.ListChantiersByProject(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}
	if err := EnsureProjectStatusNotBehindChantiers(next, chantiers); err != nil {
		return nil, err
	}
	if err := s.Store.UpdateProjectStatus(ctx, orgID, projectID, next); err != nil {
		return nil, err
	}
	project.Status = next
	return project, nil
}

// UpdateChantierStatus writes a chantier status then syncs the parent
// project. The two writes go through independent repository calls, so when
// the project sync fails after the chantier write succeeded, the chantier
// write is compensated back to its prior status. A failed compensation
// leaves the two entities disagreeing and is logged as a consistency alert.
func (s *StatusSyncService) UpdateChantierStatus(ctx context.Context, orgID, chantierID, next string) (*models.Chantier, error) {
	chantier, err := s.Store.GetChantier(ctx, orgID, chantierID)
	if err != nil {
		return nil, err
	}
	if err := EnsureChantierStatusTransition(chantier.Status, next); err != nil {
		return nil, err
	}

	previous := chantier.Status
	if err := s.Store.UpdateChantierStatus(ctx, orgID, chantierID, next); err != nil {
		return nil, err
	}
	chantier.Status = next

	if _, _, err := s.SyncProjectStatusWithChantiers(ctx, orgID, chantier.ProjectID); err != nil {
		if rbErr := s.Store.UpdateChantierStatus(ctx, orgID, chantierID, previous); rbErr != nil {
			logger.Error("DATA CONSISTENCY ALERT: chantier %s stuck at %s after failed project sync, rollback failed: %v (sync error: %v)",
				chantierID, next, rbErr, err)
			return nil, apperrors.Wrap(apperrors.KindUnexpected, err, "échec de synchronisation du projet et du retour arrière chantier")
		}
		return nil, apperrors.Wrap(apperrors.KindUnexpected, err, "échec de synchronisation du statut projet, chantier rétabli")
	}

	return chantier, nil
}
