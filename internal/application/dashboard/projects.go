package dashboard

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain"
	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

var columnTitles = map[entity.ProjectStatus]string{
	entity.ProjectPlanning:   "Planning",
	entity.ProjectInProgress: "In Progress",
	entity.ProjectOnHold:     "On Hold",
	entity.ProjectCompleted:  "Completed",
	entity.ProjectCancelled:  "Cancelled",
}

// ListProjects filtra por búsqueda en título, cliente o descripción.
func (s *Store) ListProjects(f dto.ProjectFilter) []dto.ProjectRow {
	return s.Projects.Filter(func(p dto.ProjectRow) bool {
		return anyContainsFold(f.Search, p.Title, p.Client, p.Description)
	})
}

// CreateProject agrega un proyecto al frente. Título y cliente son obligatorios.
func (s *Store) CreateProject(in dto.CreateProjectRequest) (*dto.ProjectRow, error) {
	if in.Title == "" || in.Client == "" {
		return nil, fmt.Errorf("project: title y client son requeridos: %w", domain.ErrInvalidInput)
	}
	status, err := enumOrDefault(in.Status, entity.ProjectPlanning, entity.ParseProjectStatus)
	if err != nil {
		return nil, err
	}
	priority, err := enumOrDefault(in.Priority, entity.PriorityMedium, entity.ParsePriority)
	if err != nil {
		return nil, err
	}
	if in.Progress < 0 || in.Progress > 100 {
		return nil, fmt.Errorf("project progress %d: %w", in.Progress, domain.ErrOutOfRange)
	}
	today := s.today()
	start, deadline := today, today
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if in.Deadline != nil {
		deadline = *in.Deadline
	}
	row := dto.ProjectRow{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		Client:      in.Client,
		StartDate:   start,
		Deadline:    deadline,
		Progress:    in.Progress,
		Budget:      in.Budget,
		Team:        []string{},
		Tags:        []string{},
	}
	s.Projects.Prepend(row)
	return &row, nil
}

// Board agrupa los proyectos filtrados en las cinco columnas fijas del kanban.
// Dentro de cada columna se respeta el orden de la lista.
func (s *Store) Board(f dto.ProjectFilter) []dto.BoardColumn {
	statuses := entity.ProjectStatuses()
	cols := make([]dto.BoardColumn, len(statuses))
	index := make(map[entity.ProjectStatus]int, len(statuses))
	for i, st := range statuses {
		cols[i] = dto.BoardColumn{Status: st, Title: columnTitles[st], Projects: []dto.ProjectRow{}}
		index[st] = i
	}
	for _, p := range s.ListProjects(f) {
		if i, ok := index[p.Status]; ok {
			cols[i].Projects = append(cols[i].Projects, p)
		}
	}
	return cols
}

// MoveProject mueve un proyecto a la columna destStatus dejándolo como la tarjeta
// número destIndex de esa columna (acotado a su largo). El resto de proyectos
// conserva estado y orden relativo.
func (s *Store) MoveProject(id, destStatus string, destIndex int) (*dto.ProjectRow, error) {
	status, err := entity.ParseProjectStatus(destStatus)
	if err != nil {
		return nil, err
	}
	var moved dto.ProjectRow
	err = s.Projects.Mutate(func(items []dto.ProjectRow) ([]dto.ProjectRow, error) {
		from := slices.IndexFunc(items, func(p dto.ProjectRow) bool { return p.ID == id })
		if from < 0 {
			return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
		}
		moved = items[from]
		rest := slices.Delete(items, from, from+1)
		moved.Status = status

		var column []int
		for i, p := range rest {
			if p.Status == status {
				column = append(column, i)
			}
		}
		at := len(rest)
		switch {
		case destIndex <= 0 && len(column) > 0:
			at = column[0]
		case destIndex > 0 && destIndex < len(column):
			at = column[destIndex]
		case len(column) > 0:
			at = column[len(column)-1] + 1
		}
		return slices.Insert(rest, at, moved), nil
	})
	if err != nil {
		return nil, err
	}
	return &moved, nil
}
