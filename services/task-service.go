package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zenith-project/backend/models"
)

type TaskService struct {
	TasksCollection *mongo.Collection
}

func NewTaskService(tasksCollection *mongo.Collection) *TaskService {
	return &TaskService{TasksCollection: tasksCollection}
}

// CreateTask kreira zadatak direktnim upisom. Ako status ili prioritet nisu
// navedeni, postavljaju se na backlog i medium.
func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	if task.ProjectID == "" {
		return nil, fmt.Errorf("projectId is required")
	}
	if task.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if task.Status == "" {
		task.Status = models.StatusBacklog
	}
	if !task.Status.IsValid() {
		return nil, fmt.Errorf("invalid task status: %s", task.Status)
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !task.Priority.IsValid() {
		return nil, fmt.Errorf("invalid task priority: %s", task.Priority)
	}

	now := time.Now().UTC()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = &now

	result, err := s.TasksCollection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}

	task.ID = result.InsertedID.(primitive.ObjectID)
	return &task, nil
}

// CreateTasksBatch ubacuje grupu zadataka odjednom (AI razbijanje cilja).
func (s *TaskService) CreateTasksBatch(ctx context.Context, tasks []models.Task) ([]models.Task, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks to insert")
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(tasks))
	for i := range tasks {
		if tasks[i].ProjectID == "" {
			return nil, fmt.Errorf("projectId is required on every task")
		}
		if tasks[i].Status == "" {
			tasks[i].Status = models.StatusBacklog
		}
		if tasks[i].Priority == "" {
			tasks[i].Priority = models.PriorityMedium
		}
		tasks[i].ID = primitive.NewObjectID()
		tasks[i].CreatedAt = &now
		docs = append(docs, tasks[i])
	}

	if _, err := s.TasksCollection.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to insert task batch: %v", err)
	}
	return tasks, nil
}

// TaskUpdate su opciona polja za delimično ažuriranje; nil znači bez izmene.
type TaskUpdate struct {
	Title         *string              `json:"title"`
	Description   *string              `json:"description"`
	Status        *models.TaskStatus   `json:"status"`
	Priority      *models.TaskPriority `json:"priority"`
	DueDate       *time.Time           `json:"dueDate"`
	StartDate     *time.Time           `json:"startDate"`
	Assignee      *models.TeamMember   `json:"assignee"`
	Collaborators *[]models.TeamMember `json:"collaborators"`
	Tags          *[]string            `json:"tags"`
	Order         *int                 `json:"order"`
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) error {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return fmt.Errorf("invalid task ID format: %v", err)
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		if !update.Status.IsValid() {
			return fmt.Errorf("invalid task status: %s", *update.Status)
		}
		set["status"] = *update.Status
	}
	if update.Priority != nil {
		if !update.Priority.IsValid() {
			return fmt.Errorf("invalid task priority: %s", *update.Priority)
		}
		set["priority"] = *update.Priority
	}
	if update.DueDate != nil {
		set["dueDate"] = *update.DueDate
	}
	if update.StartDate != nil {
		set["startDate"] = *update.StartDate
	}
	if update.Assignee != nil {
		set["assignee"] = *update.Assignee
	}
	if update.Collaborators != nil {
		set["collaborators"] = *update.Collaborators
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}
	if len(set) == 0 {
		return nil
	}

	result, err := s.TasksCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update task: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ChangeTaskStatus - menja status taska
func (s *TaskService) ChangeTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (*models.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID format: %v", err)
	}

	update := bson.M{"$set": bson.M{"status": status}}
	result, err := s.TasksCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrTaskNotFound
	}

	var task models.Task
	if err := s.TasksCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated task: %v", err)
	}
	return &task, nil
}

// AssignTask postavlja ili skida izvršioca; nil briše dodelu.
func (s *TaskService) AssignTask(ctx context.Context, taskID string, assignee *models.TeamMember) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID format: %v", err)
	}

	var update bson.M
	if assignee == nil {
		update = bson.M{"$unset": bson.M{"assignee": ""}}
	} else {
		update = bson.M{"$set": bson.M{"assignee": assignee}}
	}

	result, err := s.TasksCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to assign task: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrTaskNotFound
	}

	var task models.Task
	if err := s.TasksCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated task: %v", err)
	}
	return &task, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, taskID string) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID format: %v", err)
	}

	var task models.Task
	err = s.TasksCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to retrieve task: %v", err)
	}
	return &task, nil
}

// GetTasksByProject vraća zadatke projekta sortirane po order polju.
// Pretplata sama po sebi ne poštuje order; sortiranje je posao čitaoca.
func (s *TaskService) GetTasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := s.TasksCollection.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}
	return tasks, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return fmt.Errorf("invalid task ID format: %v", err)
	}

	result, err := s.TasksCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete task: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}
