package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fam-OS/truenorth-sub002/domain"
	"github.com/fam-OS/truenorth-sub002/internal/http/httpx"
	"github.com/fam-OS/truenorth-sub002/internal/http/middleware"
)

// TaskHandlers handles task and note HTTP requests
type TaskHandlers struct {
	taskRepo  domain.TaskRepository
	exportSvc domain.ExportService
}

// NewTaskHandlers creates new task handlers
func NewTaskHandlers(taskRepo domain.TaskRepository, exportSvc domain.ExportService) *TaskHandlers {
	return &TaskHandlers{taskRepo: taskRepo, exportSvc: exportSvc}
}

// TaskRequest is the create/update payload.
type TaskRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255"`
	Status     string `json:"status" binding:"required,oneof=TODO IN_PROGRESS DONE"`
	AssigneeID *uint  `json:"assigneeId"`
}

// NoteRequest is the note create payload.
type NoteRequest struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
}

// List returns the org's tasks.
func (h *TaskHandlers) List(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	tasks, err := h.taskRepo.ListByOrg(c.Request.Context(), session.OrgID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, tasks)
}

// Create adds a task. The created body carries its (empty) notes list.
func (h *TaskHandlers) Create(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	var req TaskRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	task := &domain.Task{
		OrgID:      session.OrgID,
		Title:      req.Title,
		Status:     req.Status,
		AssigneeID: req.AssigneeID,
		Notes:      []domain.TaskNote{},
	}
	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, task)
}

// Get returns one task with its notes.
func (h *TaskHandlers) Get(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskRepo.FindByID(c.Request.Context(), session.OrgID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, task)
}

// Update rewrites a task.
func (h *TaskHandlers) Update(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	task := &domain.Task{
		ID:         id,
		OrgID:      session.OrgID,
		Title:      req.Title,
		Status:     req.Status,
		AssigneeID: req.AssigneeID,
	}
	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		httpx.Error(c, err)
		return
	}

	updated, err := h.taskRepo.FindByID(c.Request.Context(), session.OrgID, id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, updated)
}

// Delete removes a task and its notes.
func (h *TaskHandlers) Delete(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Deleted(c)
}

// ListNotes returns the task's notes. The task must exist in the caller's
// org before anything is listed.
func (h *TaskHandlers) ListNotes(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.taskRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	notes, err := h.taskRepo.ListNotes(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, notes)
}

// CreateNote adds a note to a task. A missing task short-circuits to 404
// before anything is written.
func (h *TaskHandlers) CreateNote(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	id, ok := httpx.IDParam(c, "id")
	if !ok {
		return
	}

	var req NoteRequest
	if !httpx.BindJSON(c, &req) {
		return
	}

	if _, err := h.taskRepo.FindByID(c.Request.Context(), session.OrgID, id); err != nil {
		httpx.Error(c, err)
		return
	}

	note := &domain.TaskNote{
		TaskID:  id,
		Content: req.Content,
	}
	if err := h.taskRepo.CreateNote(c.Request.Context(), note); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, note)
}

// ExportCSV streams the org's tasks as a CSV download.
func (h *TaskHandlers) ExportCSV(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	filename := fmt.Sprintf("tasks-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := h.exportSvc.WriteTasksCSV(c.Request.Context(), c.Writer, session.OrgID); err != nil {
		// Headers may already be out; all we can do is abort the stream.
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
