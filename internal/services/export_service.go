package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// ExportServiceImpl implements domain.ExportService. encoding/csv handles
// the quoting rules: fields containing separators, quotes, or newlines are
// quoted and embedded quotes doubled.
type ExportServiceImpl struct {
	taskRepo domain.TaskRepository
}

// NewExportService creates a new export service
func NewExportService(taskRepo domain.TaskRepository) domain.ExportService {
	return &ExportServiceImpl{taskRepo: taskRepo}
}

// WriteTasksCSV implements domain.ExportService
func (s *ExportServiceImpl) WriteTasksCSV(ctx context.Context, w io.Writer, orgID uint) error {
	tasks, err := s.taskRepo.ListByOrg(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "status", "assignee_id", "created_at"}); err != nil {
		return err
	}

	for _, task := range tasks {
		assignee := ""
		if task.AssigneeID != nil {
			assignee = strconv.FormatUint(uint64(*task.AssigneeID), 10)
		}
		row := []string{
			strconv.FormatUint(uint64(task.ID), 10),
			task.Title,
			task.Status,
			assignee,
			task.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
