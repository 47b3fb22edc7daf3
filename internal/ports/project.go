package ports

import "github.com/devbush/cueline/internal/domain"

// ProjectStore loads and saves full project snapshots. The core treats
// persistence as a pass-through of the entity set; no migration logic.
type ProjectStore interface {
	Load(path string) (*domain.Project, error)
	Save(path string, p *domain.Project) error
}
