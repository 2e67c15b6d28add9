package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenith-project/backend/models"
)

func newTestBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "llm-test-cb",
		Timeout: time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	})
}

// newTestServer vraća endpoint koji govori chat-completions format i
// odgovara fiksnim sadržajem.
func newTestServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func TestBreakdownGoal(t *testing.T) {
	srv := newTestServer(t, "```json\n[\n  {\"title\": \"Set up repo\", \"description\": \"Init\"},\n  {\"title\": \"Build API\", \"description\": \"Endpoints\"},\n  {\"title\": \"Ship\", \"description\": \"Deploy\"}\n]\n```")
	defer srv.Close()

	client := NewClient(srv.URL, "key", "test-model", newTestBreaker())
	drafts, err := client.BreakdownGoal(context.Background(), "Launch the product")
	require.NoError(t, err)

	require.Len(t, drafts, 3)
	assert.Equal(t, "Set up repo", drafts[0].Title)
	assert.Equal(t, "Deploy", drafts[2].Description)
}

func TestBreakdownGoalEmptyGoal(t *testing.T) {
	client := NewClient("http://unused", "", "test-model", newTestBreaker())
	_, err := client.BreakdownGoal(context.Background(), "   ")
	assert.Error(t, err)
}

func TestBreakdownGoalEmptyArray(t *testing.T) {
	srv := newTestServer(t, "[]")
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", newTestBreaker())
	_, err := client.BreakdownGoal(context.Background(), "goal")
	assert.ErrorContains(t, err, "empty task breakdown")
}

func TestBreakdownGoalNoJSON(t *testing.T) {
	srv := newTestServer(t, "Sorry, I cannot help with that.")
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", newTestBreaker())
	_, err := client.BreakdownGoal(context.Background(), "goal")
	assert.ErrorContains(t, err, "no JSON array")
}

func TestSuggestAssignee(t *testing.T) {
	srv := newTestServer(t, `{"suggestedPerson": "Ana", "reason": "Backend expertise and low workload"}`)
	defer srv.Close()

	roster := []models.TeamMember{
		{Name: "Ana", Expertise: "backend", Workload: 20},
		{Name: "Bob", Expertise: "design", Workload: 80},
	}

	client := NewClient(srv.URL, "", "test-model", newTestBreaker())
	suggestion, err := client.SuggestAssignee(context.Background(), "Implement the API", roster)
	require.NoError(t, err)

	assert.Equal(t, "Ana", suggestion.SuggestedPerson)
	assert.NotEmpty(t, suggestion.Reason)
}

func TestSuggestAssigneeEmptyRoster(t *testing.T) {
	client := NewClient("http://unused", "", "test-model", newTestBreaker())
	_, err := client.SuggestAssignee(context.Background(), "task", nil)
	assert.ErrorContains(t, err, "roster is empty")
}

func TestSuggestAssigneeNoPersonNamed(t *testing.T) {
	srv := newTestServer(t, `{"suggestedPerson": "", "reason": "nobody fits"}`)
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", newTestBreaker())
	_, err := client.SuggestAssignee(context.Background(), "task", []models.TeamMember{{Name: "Ana"}})
	assert.ErrorContains(t, err, "did not name a person")
}

func TestSummarizeNotes(t *testing.T) {
	srv := newTestServer(t, "```json\n{\"summary\": \"Decided to ship on Friday.\"}\n```")
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", newTestBreaker())
	summary, err := client.SummarizeNotes(context.Background(), "long meeting notes")
	require.NoError(t, err)

	assert.Equal(t, "Decided to ship on Friday.", summary.Summary)
}

func TestSummarizeNotesEmptyInput(t *testing.T) {
	client := NewClient("http://unused", "", "test-model", newTestBreaker())
	_, err := client.SummarizeNotes(context.Background(), "")
	assert.Error(t, err)
}

func TestCompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", newTestBreaker())
	_, err := client.Complete(context.Background(), "sys", "user")
	assert.ErrorContains(t, err, "status 502")
}

func TestCompleteBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", newTestBreaker())
	for i := 0; i < 5; i++ {
		_, _ = client.Complete(context.Background(), "sys", "user")
	}

	_, err := client.Complete(context.Background(), "sys", "user")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
