package portfolio

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
)

// ErrProjectNotFound is returned by UpdateProject and DeleteProject when no
// project with the given id is in the published list. Updating an unknown id
// never upserts.
var ErrProjectNotFound = errs.NewNotFound("project")

// ProjectRepository is the remote document-store contract the store depends
// on. Any document-collection client satisfies it.
type ProjectRepository interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	Add(ctx context.Context, project models.Project) (string, error)
	Update(ctx context.Context, id string, project models.Project) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, projects []models.Project) error
}

// Store owns the authoritative in-memory project list for the running
// process. On Load it reconciles the remote store against the bundled seed
// data; afterwards mutations apply to the remote store first and to memory
// only once persistence confirms. The store is the sole writer of the list;
// readers get deep copies.
type Store struct {
	mu     sync.RWMutex
	repo   ProjectRepository
	logger zerolog.Logger

	projects []models.Project
}

// NewStore builds a store pre-populated with the seed project list, so the
// published view is non-empty even before Load runs.
func NewStore(repo ProjectRepository) *Store {
	return &Store{
		repo:     repo,
		logger:   log.With().Str("component", "portfolioStore").Logger(),
		projects: SeedProjects(),
	}
}

// Load performs the one-time reconciliation of remote documents with the
// seed data. A remote failure is logged and recovered by publishing the seed
// list; it is never returned as a blocking error. Load is not re-run after
// mutations.
func (s *Store) Load(ctx context.Context) {
	remote, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("remote store unreachable, serving seed projects")
		s.publish(SeedProjects())
		return
	}
	if len(remote) == 0 {
		// An empty collection means "not yet seeded", not "intentionally
		// zero projects".
		s.logger.Info().Msg("remote store empty, serving seed projects")
		s.publish(SeedProjects())
		return
	}
	merged := s.reconcile(remote, SeedProjects())
	s.logger.Info().
		Int("remote", len(remote)).
		Int("published", len(merged)).
		Msg("reconciled remote projects with seed data")
	s.publish(merged)
}

// reconcile merges remote documents with the seed list. A remote project
// that matches a seed project by id, or by title as a migration fallback, is
// the same entity: the remote fields win, with gallery and imageUrl
// back-filled from the seed when the remote side has none. Seed projects
// that match nothing remote are appended so new bundled entries are never
// dropped by a stale remote store.
func (s *Store) reconcile(remote, seeds []models.Project) []models.Project {
	matched := make([]bool, len(seeds))
	merged := make([]models.Project, 0, len(remote)+len(seeds))

	for _, remoteProject := range remote {
		idx := -1
		for i, seed := range seeds {
			if !matched[i] && seed.ID == remoteProject.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			for i, seed := range seeds {
				if !matched[i] && seed.Title == remoteProject.Title {
					idx = i
					// Title matching only exists for records created before
					// ids were aligned; flag it so the ids get fixed.
					s.logger.Warn().
						Str("title", seed.Title).
						Str("remoteID", remoteProject.ID).
						Str("seedID", seed.ID).
						Msg("project matched by title instead of id, assign stable ids")
					break
				}
			}
		}

		if idx < 0 {
			merged = append(merged, remoteProject)
			continue
		}

		matched[idx] = true
		entry := remoteProject
		if len(entry.Gallery) == 0 {
			entry.Gallery = seeds[idx].Gallery
		}
		if entry.ImageURL == "" {
			entry.ImageURL = seeds[idx].ImageURL
		}
		merged = append(merged, entry)
	}

	for i, seed := range seeds {
		if !matched[i] {
			merged = append(merged, seed)
		}
	}
	return merged
}

// AddProject persists the project to the remote store and, on confirmed
// success, inserts it at the head of the published list under the
// store-assigned identity. On failure nothing is added to memory. Project
// invariants are enforced by the caller's form validation.
func (s *Store) AddProject(ctx context.Context, project models.Project) (models.Project, error) {
	id, err := s.repo.Add(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("title", project.Title).Msg("failed to persist new project")
		return models.Project{}, errs.NewRemoteUnavailableError("add project", err)
	}

	project.ID = id

	s.mu.Lock()
	s.projects = append([]models.Project{project.Clone()}, s.projects...)
	s.mu.Unlock()

	return project, nil
}

// UpdateProject persists the full field set keyed by the project's id, then
// replaces the matching in-memory entry. The replacement happens only after
// persistence confirms, same policy as AddProject. An id absent from the
// published list is a not-found error, never an upsert.
func (s *Store) UpdateProject(ctx context.Context, project models.Project) error {
	if !s.has(project.ID) {
		return ErrProjectNotFound
	}

	if err := s.repo.Update(ctx, project.ID, project); err != nil {
		if errs.IsDocumentNotFound(err) {
			// In memory but gone remotely: the entry was deleted out from
			// under this session.
			s.logger.Warn().Str("projectID", project.ID).Msg("update target missing from remote store")
			return ErrProjectNotFound
		}
		s.logger.Error().Err(err).Str("projectID", project.ID).Msg("failed to persist project update")
		return errs.NewRemoteUnavailableError("update project", err)
	}

	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = project.Clone()
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteProject removes the remote document, then the in-memory entry. On
// failure the entry stays in memory and the error is returned so the caller
// can surface it; a failed delete is never silent.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if !s.has(id) {
		return ErrProjectNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errs.IsDocumentNotFound(err) {
			// Already gone remotely; dropping the stale in-memory entry is
			// the converged outcome the caller asked for.
			s.logger.Warn().Str("projectID", id).Msg("delete target already missing from remote store")
			s.remove(id)
			return nil
		}
		s.logger.Error().Err(err).Str("projectID", id).Msg("failed to delete project")
		return errs.NewRemoteUnavailableError("delete project", err)
	}

	s.remove(id)
	return nil
}

// Reset overwrites the entire remote collection with the bundled seed
// projects, preserving seed ids as document identities, then republishes the
// seed list. Destructive: any remotely-stored edits not present in the seed
// data are discarded. Callers must gate this behind explicit confirmation.
func (s *Store) Reset(ctx context.Context) error {
	seeds := SeedProjects()
	if err := s.repo.ReplaceAll(ctx, seeds); err != nil {
		s.logger.Error().Err(err).Msg("failed to reset remote store to seed data")
		return errs.NewRemoteUnavailableError("reset", err)
	}

	s.publish(seeds)
	s.logger.Info().Int("projects", len(seeds)).Msg("remote store reset to seed data")
	return nil
}

// Data returns the merged read-only view: static sections from the seed
// dataset plus the live project list.
func (s *Store) Data() models.PortfolioData {
	data := Seed()
	data.Projects = s.Projects()
	return data
}

// Projects returns a deep copy of the published project list.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneProjects(s.projects)
}

// AIShowcase returns the published projects whose aiToolsUsed is non-empty.
func (s *Store) AIShowcase() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	showcase := make([]models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		if project.InAIShowcase() {
			showcase = append(showcase, project.Clone())
		}
	}
	return showcase
}

func (s *Store) publish(projects []models.Project) {
	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
}

func (s *Store) has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, project := range s.projects {
		if project.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.projects[:0]
	for _, project := range s.projects {
		if project.ID != id {
			kept = append(kept, project)
		}
	}
	s.projects = kept
}
