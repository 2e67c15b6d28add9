package services

import (
	"context"
	"fmt"

	"zenith-project/backend/llm"
	"zenith-project/backend/logging"
	"zenith-project/backend/models"
)

// AIService spaja LLM tokove sa podacima projekta. Svaki tok je jedan
// poziv modelu: razbijanje cilja na zadatke, predlog izvršioca i sažetak
// beleški sa sastanka.
type AIService struct {
	llmClient      *llm.Client
	taskService    *TaskService
	projectService *ProjectService
}

func NewAIService(llmClient *llm.Client, taskService *TaskService, projectService *ProjectService) *AIService {
	return &AIService{
		llmClient:      llmClient,
		taskService:    taskService,
		projectService: projectService,
	}
}

// BreakdownIntoTasks traži od modela da razbije cilj projekta na zadatke i
// upisuje ih u backlog projekta. Ako model ne uspe, projekat ostaje bez
// zadataka i greška se vraća pozivaocu; već kreirani projekat se ne dira.
func (s *AIService) BreakdownIntoTasks(ctx context.Context, projectID, goal string) ([]models.Task, error) {
	if _, err := s.projectService.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	drafts, err := s.llmClient.BreakdownGoal(ctx, goal)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(drafts))
	for i, draft := range drafts {
		tasks = append(tasks, models.Task{
			ProjectID:   projectID,
			Title:       draft.Title,
			Description: draft.Description,
			Status:      models.StatusBacklog,
			Priority:    models.PriorityMedium,
			Order:       i,
		})
	}

	created, err := s.taskService.CreateTasksBatch(ctx, tasks)
	if err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: AI_BREAKDOWN_DONE, Description: Created %d tasks for project %s from goal.",
		len(created), projectID)
	return created, nil
}

// SuggestAssigneeForTask predlaže člana projekta za zadatak na osnovu
// opisa zadatka i sastava tima. Predlog se ne upisuje; odluka ostaje na
// korisniku.
func (s *AIService) SuggestAssigneeForTask(ctx context.Context, projectID, description string) (*llm.AssigneeSuggestion, error) {
	project, err := s.projectService.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(project.Members) == 0 {
		return nil, fmt.Errorf("project %s has no members to suggest from", projectID)
	}

	return s.llmClient.SuggestAssignee(ctx, description, project.Members)
}

// SummarizeMeetingNotes vraća sažetak sirovih beleški sa sastanka.
func (s *AIService) SummarizeMeetingNotes(ctx context.Context, notes string) (*llm.MeetingSummary, error) {
	return s.llmClient.SummarizeNotes(ctx, notes)
}
