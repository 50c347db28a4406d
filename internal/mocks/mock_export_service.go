package mocks

import (
	"context"
	"io"
)

// MockExportService implements domain.ExportService interface for testing
type MockExportService struct {
	WriteTasksCSVFunc func(ctx context.Context, w io.Writer, orgID uint) error
}

// NewMockExportService creates a new MockExportService with default behaviors
func NewMockExportService() *MockExportService {
	return &MockExportService{}
}

// WriteTasksCSV streams tasks as CSV
func (m *MockExportService) WriteTasksCSV(ctx context.Context, w io.Writer, orgID uint) error {
	if m.WriteTasksCSVFunc != nil {
		return m.WriteTasksCSVFunc(ctx, w, orgID)
	}
	// Default behavior: header only
	_, err := w.Write([]byte("id,title,status,assignee_id,created_at\n"))
	return err
}
