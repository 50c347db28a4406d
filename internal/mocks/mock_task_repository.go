package mocks

import (
	"context"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// MockTaskRepository implements domain.TaskRepository interface for testing
type MockTaskRepository struct {
	CreateFunc     func(ctx context.Context, task *domain.Task) error
	FindByIDFunc   func(ctx context.Context, orgID, id uint) (*domain.Task, error)
	ListByOrgFunc  func(ctx context.Context, orgID uint) ([]domain.Task, error)
	UpdateFunc     func(ctx context.Context, task *domain.Task) error
	DeleteFunc     func(ctx context.Context, orgID, id uint) error
	CreateNoteFunc func(ctx context.Context, note *domain.TaskNote) error
	ListNotesFunc  func(ctx context.Context, taskID uint) ([]domain.TaskNote, error)
}

// NewMockTaskRepository creates a new MockTaskRepository with default behaviors
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

// Create creates a new task
func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	// Default behavior: assign an ID
	if task.ID == 0 {
		task.ID = 1
	}
	return nil
}

// FindByID finds a task within the org
func (m *MockTaskRepository) FindByID(ctx context.Context, orgID, id uint) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, orgID, id)
	}
	// Default behavior: not found
	return nil, domain.NotFound("Task")
}

// ListByOrg returns the org's tasks
func (m *MockTaskRepository) ListByOrg(ctx context.Context, orgID uint) ([]domain.Task, error) {
	if m.ListByOrgFunc != nil {
		return m.ListByOrgFunc(ctx, orgID)
	}
	// Default behavior: empty
	return []domain.Task{}, nil
}

// Update updates a task
func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	// Default behavior: success
	return nil
}

// Delete removes a task and its notes
func (m *MockTaskRepository) Delete(ctx context.Context, orgID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, orgID, id)
	}
	// Default behavior: success
	return nil
}

// CreateNote attaches a note to a task
func (m *MockTaskRepository) CreateNote(ctx context.Context, note *domain.TaskNote) error {
	if m.CreateNoteFunc != nil {
		return m.CreateNoteFunc(ctx, note)
	}
	// Default behavior: assign an ID
	if note.ID == 0 {
		note.ID = 1
	}
	return nil
}

// ListNotes returns a task's notes
func (m *MockTaskRepository) ListNotes(ctx context.Context, taskID uint) ([]domain.TaskNote, error) {
	if m.ListNotesFunc != nil {
		return m.ListNotesFunc(ctx, taskID)
	}
	// Default behavior: empty
	return []domain.TaskNote{}, nil
}
