package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// TaskRepositoryImpl implements domain.TaskRepository using GORM
type TaskRepositoryImpl struct {
	db *gorm.DB
}

// DBTask represents the database model for Task
type DBTask struct {
	ID         uint   `gorm:"primaryKey"`
	OrgID      uint   `gorm:"index"`
	Title      string `gorm:"size:255"`
	Status     string `gorm:"size:16;index"`
	AssigneeID *uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DBTask) TableName() string {
	return "tasks"
}

// DBTaskNote represents the database model for TaskNote
type DBTaskNote struct {
	ID        uint `gorm:"primaryKey"`
	TaskID    uint `gorm:"index"`
	Content   string
	CreatedAt time.Time
}

func (DBTaskNote) TableName() string {
	return "task_notes"
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

// Create implements domain.TaskRepository
func (r *TaskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	dbTask := &DBTask{
		OrgID:      task.OrgID,
		Title:      task.Title,
		Status:     task.Status,
		AssigneeID: task.AssigneeID,
	}
	if err := r.db.WithContext(ctx).Create(dbTask).Error; err != nil {
		return err
	}
	task.ID = dbTask.ID
	task.CreatedAt = dbTask.CreatedAt
	task.UpdatedAt = dbTask.UpdatedAt
	return nil
}

// FindByID implements domain.TaskRepository. Notes come back with the task.
func (r *TaskRepositoryImpl) FindByID(ctx context.Context, orgID, id uint) (*domain.Task, error) {
	var dbTask DBTask
	err := r.db.WithContext(ctx).Where("org_id = ? AND id = ?", orgID, id).First(&dbTask).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Task")
		}
		return nil, err
	}
	notes, err := r.ListNotes(ctx, dbTask.ID)
	if err != nil {
		return nil, err
	}
	task := taskToDomain(&dbTask)
	task.Notes = notes
	return task, nil
}

// ListByOrg implements domain.TaskRepository
func (r *TaskRepositoryImpl) ListByOrg(ctx context.Context, orgID uint) ([]domain.Task, error) {
	var dbTasks []DBTask
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("id").Find(&dbTasks).Error; err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(dbTasks))
	for i := range dbTasks {
		t := taskToDomain(&dbTasks[i])
		t.Notes = []domain.TaskNote{}
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

// Update implements domain.TaskRepository
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	res := r.db.WithContext(ctx).Model(&DBTask{}).
		Where("org_id = ? AND id = ?", task.OrgID, task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"status":      task.Status,
			"assignee_id": task.AssigneeID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Task")
	}
	return nil
}

// Delete implements domain.TaskRepository. Task notes cascade.
func (r *TaskRepositoryImpl) Delete(ctx context.Context, orgID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("org_id = ? AND id = ?", orgID, id).Delete(&DBTask{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("Task")
		}
		return tx.Where("task_id = ?", id).Delete(&DBTaskNote{}).Error
	})
}

// CreateNote implements domain.TaskRepository. Task existence is the
// handler's pre-check; this only writes the note row.
func (r *TaskRepositoryImpl) CreateNote(ctx context.Context, note *domain.TaskNote) error {
	dbNote := &DBTaskNote{
		TaskID:  note.TaskID,
		Content: note.Content,
	}
	if err := r.db.WithContext(ctx).Create(dbNote).Error; err != nil {
		return err
	}
	note.ID = dbNote.ID
	note.CreatedAt = dbNote.CreatedAt
	return nil
}

// ListNotes implements domain.TaskRepository
func (r *TaskRepositoryImpl) ListNotes(ctx context.Context, taskID uint) ([]domain.TaskNote, error) {
	var dbNotes []DBTaskNote
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("id").Find(&dbNotes).Error; err != nil {
		return nil, err
	}
	notes := make([]domain.TaskNote, 0, len(dbNotes))
	for _, n := range dbNotes {
		notes = append(notes, domain.TaskNote{
			ID:        n.ID,
			TaskID:    n.TaskID,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
		})
	}
	return notes, nil
}

func taskToDomain(dbTask *DBTask) *domain.Task {
	return &domain.Task{
		ID:         dbTask.ID,
		OrgID:      dbTask.OrgID,
		Title:      dbTask.Title,
		Status:     dbTask.Status,
		AssigneeID: dbTask.AssigneeID,
		CreatedAt:  dbTask.CreatedAt,
		UpdatedAt:  dbTask.UpdatedAt,
	}
}
