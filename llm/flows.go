package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zenith-project/backend/metrics"
	"zenith-project/backend/models"
)

// TaskDraft je jedan predlog zadatka iz razbijanja cilja projekta.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AssigneeSuggestion je predlog izvršioca za zadatak.
type AssigneeSuggestion struct {
	SuggestedPerson string `json:"suggestedPerson"`
	Reason          string `json:"reason"`
}

// MeetingSummary je sažetak beleški sa sastanka.
type MeetingSummary struct {
	Summary string `json:"summary"`
}

const breakdownSystem = `You are a project planning assistant. Break the given project goal into concrete, actionable tasks.
Respond ONLY with a JSON array of objects, each with exactly two string fields: "title" and "description".
Produce between 3 and 8 tasks. No prose, no markdown outside the JSON.`

const suggestSystem = `You are a staffing assistant. Given a task description and a team roster, pick the single best person for the task.
Respond ONLY with a JSON object with exactly two string fields: "suggestedPerson" (a name from the roster) and "reason".`

const summarizeSystem = `You summarize meeting notes for a project management tool.
Respond ONLY with a JSON object with exactly one string field: "summary".`

// BreakdownGoal razbija cilj projekta u niz predloga zadataka.
func (c *Client) BreakdownGoal(ctx context.Context, goal string) ([]TaskDraft, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, fmt.Errorf("project goal is required")
	}

	content, err := c.Complete(ctx, breakdownSystem, goal)
	if err != nil {
		metrics.LLMRequests.WithLabelValues("breakdown", "error").Inc()
		return nil, err
	}

	raw := ExtractJSONArray(content)
	if raw == "" {
		metrics.LLMRequests.WithLabelValues("breakdown", "error").Inc()
		return nil, fmt.Errorf("no JSON array found in LLM response")
	}

	var drafts []TaskDraft
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
		metrics.LLMRequests.WithLabelValues("breakdown", "error").Inc()
		return nil, fmt.Errorf("failed to decode task breakdown: %v", err)
	}
	if len(drafts) == 0 {
		metrics.LLMRequests.WithLabelValues("breakdown", "error").Inc()
		return nil, fmt.Errorf("LLM returned an empty task breakdown")
	}

	metrics.LLMRequests.WithLabelValues("breakdown", "success").Inc()
	return drafts, nil
}

// SuggestAssignee predlaže izvršioca na osnovu opisa zadatka i rostera tima.
func (c *Client) SuggestAssignee(ctx context.Context, description string, roster []models.TeamMember) (*AssigneeSuggestion, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("task description is required")
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("team roster is empty")
	}

	var sb strings.Builder
	sb.WriteString("Task: ")
	sb.WriteString(description)
	sb.WriteString("\n\nTeam roster:\n")
	for _, member := range roster {
		fmt.Fprintf(&sb, "- %s (expertise: %s, current workload: %d%%)\n", member.Name, member.Expertise, member.Workload)
	}

	content, err := c.Complete(ctx, suggestSystem, sb.String())
	if err != nil {
		metrics.LLMRequests.WithLabelValues("suggest-assignee", "error").Inc()
		return nil, err
	}

	raw := ExtractJSON(content)
	if raw == "" {
		metrics.LLMRequests.WithLabelValues("suggest-assignee", "error").Inc()
		return nil, fmt.Errorf("no JSON object found in LLM response")
	}

	var suggestion AssigneeSuggestion
	if err := json.Unmarshal([]byte(raw), &suggestion); err != nil {
		metrics.LLMRequests.WithLabelValues("suggest-assignee", "error").Inc()
		return nil, fmt.Errorf("failed to decode assignee suggestion: %v", err)
	}
	if suggestion.SuggestedPerson == "" {
		metrics.LLMRequests.WithLabelValues("suggest-assignee", "error").Inc()
		return nil, fmt.Errorf("LLM suggestion did not name a person")
	}

	metrics.LLMRequests.WithLabelValues("suggest-assignee", "success").Inc()
	return &suggestion, nil
}

// SummarizeNotes sažima beleške sa sastanka.
func (c *Client) SummarizeNotes(ctx context.Context, notes string) (*MeetingSummary, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("meeting notes are required")
	}

	content, err := c.Complete(ctx, summarizeSystem, notes)
	if err != nil {
		metrics.LLMRequests.WithLabelValues("summarize", "error").Inc()
		return nil, err
	}

	raw := ExtractJSON(content)
	if raw == "" {
		metrics.LLMRequests.WithLabelValues("summarize", "error").Inc()
		return nil, fmt.Errorf("no JSON object found in LLM response")
	}

	var summary MeetingSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		metrics.LLMRequests.WithLabelValues("summarize", "error").Inc()
		return nil, fmt.Errorf("failed to decode meeting summary: %v", err)
	}

	metrics.LLMRequests.WithLabelValues("summarize", "success").Inc()
	return &summary, nil
}
