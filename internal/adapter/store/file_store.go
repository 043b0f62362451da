package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/ports"
)

const storeFileName = "tasks.json"

// document is the persisted state: one JSON file with three flat arrays.
type document struct {
	Goals        []goalRecord       `json:"goals"`
	Tasks        []taskRecord       `json:"tasks"`
	Dependencies []dependencyRecord `json:"dependencies"`
}

type goalRecord struct {
	ID        string    `json:"id"`
	GoalText  string    `json:"goal_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type taskRecord struct {
	ID                string    `json:"id"`
	GoalID            string    `json:"goal_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	EstimatedDuration string    `json:"estimated_duration"`
	Deadline          *string   `json:"deadline"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	OrderIndex        int       `json:"order_index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type dependencyRecord struct {
	ID              int       `json:"id"`
	TaskID          string    `json:"task_id"`
	DependsOnTaskID string    `json:"depends_on_task_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// FileStore keeps the whole dataset in a single JSON document. Every write
// is a read-modify-write of the full document under a store-wide mutex, so
// at most one writer runs at a time; writes go through a temp file and a
// rename so a crash mid-write cannot corrupt the document.
type FileStore struct {
	mu   sync.RWMutex
	path string
	now  func() time.Time
}

var _ ports.PlanStore = (*FileStore)(nil)

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, &domain.StoreError{Op: "init", Err: err}
	}

	s := &FileStore{
		path: filepath.Join(dataDir, storeFileName),
		now:  func() time.Time { return time.Now().UTC() },
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.persist(emptyDocument()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func emptyDocument() document {
	return document{
		Goals:        []goalRecord{},
		Tasks:        []taskRecord{},
		Dependencies: []dependencyRecord{},
	}
}

func (s *FileStore) load() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyDocument(), nil
		}
		return document{}, &domain.StoreError{Op: "read", Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, &domain.StoreError{Op: "decode", Err: err}
	}
	return doc, nil
}

func (s *FileStore) persist(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.StoreError{Op: "encode", Err: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &domain.StoreError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &domain.StoreError{Op: "rename", Err: err}
	}
	return nil
}

func (s *FileStore) CreateGoal(_ context.Context, text string) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.Goal{}, err
	}

	now := s.now()
	record := goalRecord{
		ID:        uuid.NewString(),
		GoalText:  text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	doc.Goals = append(doc.Goals, record)

	if err := s.persist(doc); err != nil {
		return domain.Goal{}, err
	}
	return mapGoal(record), nil
}

func (s *FileStore) GetGoal(_ context.Context, goalID string) (domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return domain.Goal{}, err
	}

	for _, record := range doc.Goals {
		if record.ID == goalID {
			return mapGoal(record), nil
		}
	}
	return domain.Goal{}, domain.ErrGoalNotFound
}

func (s *FileStore) ListGoals(_ context.Context) ([]domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	goals := make([]domain.Goal, 0, len(doc.Goals))
	for _, record := range doc.Goals {
		goals = append(goals, mapGoal(record))
	}
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}

// ReplaceTasks swaps the goal's full task list: existing tasks and their
// dependency edges are removed, the new list is written with zero-based
// order indexes, and the goal's updated_at is bumped.
func (s *FileStore) ReplaceTasks(_ context.Context, goalID string, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	goalIndex := -1
	for i, record := range doc.Goals {
		if record.ID == goalID {
			goalIndex = i
			break
		}
	}
	if goalIndex < 0 {
		return domain.ErrGoalNotFound
	}

	doc = dropGoalTasks(doc, goalID)

	now := s.now()
	doc.Goals[goalIndex].UpdatedAt = now
	for i, task := range tasks {
		doc.Tasks = append(doc.Tasks, taskRecord{
			ID:                task.ID,
			GoalID:            goalID,
			Title:             task.Title,
			Description:       task.Description,
			EstimatedDuration: task.EstimatedDuration,
			Deadline:          task.Deadline,
			Priority:          string(task.Priority),
			Status:            string(task.Status),
			OrderIndex:        i,
			CreatedAt:         now,
			UpdatedAt:         now,
		})

		for _, dep := range task.Dependencies {
			doc.Dependencies = append(doc.Dependencies, dependencyRecord{
				ID:              len(doc.Dependencies) + 1,
				TaskID:          task.ID,
				DependsOnTaskID: dep,
				CreatedAt:       now,
			})
		}
	}

	return s.persist(doc)
}

func (s *FileStore) GetTasks(_ context.Context, goalID string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return collectTasks(doc, goalID), nil
}

func (s *FileStore) UpdateTaskStatus(_ context.Context, taskID string, status domain.TaskStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	for i := range doc.Tasks {
		if doc.Tasks[i].ID != taskID {
			continue
		}
		doc.Tasks[i].Status = string(status)
		doc.Tasks[i].UpdatedAt = s.now()
		if err := s.persist(doc); err != nil {
			return false, err
		}
		return true, nil
	}

	// Unknown task: report not-changed without touching the document.
	return false, nil
}

func (s *FileStore) DeleteGoal(_ context.Context, goalID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	kept := doc.Goals[:0]
	removed := 0
	for _, record := range doc.Goals {
		if record.ID == goalID {
			removed++
			continue
		}
		kept = append(kept, record)
	}
	if removed == 0 {
		return 0, nil
	}
	doc.Goals = kept

	doc = dropGoalTasks(doc, goalID)
	if err := s.persist(doc); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *FileStore) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.load()
	return err
}

// dropGoalTasks removes the goal's tasks and every dependency edge owned by
// one of them.
func dropGoalTasks(doc document, goalID string) document {
	removedTasks := make(map[string]bool)
	keptTasks := doc.Tasks[:0]
	for _, task := range doc.Tasks {
		if task.GoalID == goalID {
			removedTasks[task.ID] = true
			continue
		}
		keptTasks = append(keptTasks, task)
	}
	doc.Tasks = keptTasks

	keptEdges := doc.Dependencies[:0]
	for _, edge := range doc.Dependencies {
		if removedTasks[edge.TaskID] {
			continue
		}
		keptEdges = append(keptEdges, edge)
	}
	doc.Dependencies = keptEdges
	return doc
}

func collectTasks(doc document, goalID string) []domain.Task {
	records := make([]taskRecord, 0)
	for _, task := range doc.Tasks {
		if task.GoalID == goalID {
			records = append(records, task)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OrderIndex < records[j].OrderIndex
	})

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		task := domain.Task{
			ID:                record.ID,
			GoalID:            record.GoalID,
			Title:             record.Title,
			Description:       record.Description,
			EstimatedDuration: record.EstimatedDuration,
			Priority:          domain.TaskPriority(record.Priority),
			Status:            domain.TaskStatus(record.Status),
			Deadline:          record.Deadline,
			OrderIndex:        record.OrderIndex,
			Dependencies:      []string{},
			CreatedAt:         record.CreatedAt,
			UpdatedAt:         record.UpdatedAt,
		}
		// Dependency order follows edge insertion order.
		for _, edge := range doc.Dependencies {
			if edge.TaskID == record.ID {
				task.Dependencies = append(task.Dependencies, edge.DependsOnTaskID)
			}
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func mapGoal(record goalRecord) domain.Goal {
	return domain.Goal{
		ID:        record.ID,
		Text:      record.GoalText,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
