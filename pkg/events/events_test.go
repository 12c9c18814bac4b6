package events

import (
	"encoding/json"
	"testing"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
)

func event(t *testing.T, eventType string, payload any) *github.Event {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	msg := json.RawMessage(raw)
	return &github.Event{
		Type:       github.Ptr(eventType),
		RawPayload: &msg,
	}
}

func TestContributionCount(t *testing.T) {
	tests := []struct {
		name     string
		event    *github.Event
		expected int
	}{
		{
			name:     "fork",
			event:    event(t, EventTypeFork, &github.ForkEvent{}),
			expected: 1,
		},
		{
			name: "push to default branch",
			event: event(t, EventTypePush, &github.PushEvent{
				Ref: github.Ptr("refs/heads/main"),
				Commits: []*github.HeadCommit{
					{SHA: github.Ptr("aaa")},
					{SHA: github.Ptr("bbb")},
					{SHA: github.Ptr("ccc")},
				},
			}),
			expected: 3,
		},
		{
			name: "push to feature branch",
			event: event(t, EventTypePush, &github.PushEvent{
				Ref: github.Ptr("refs/heads/feature/shiny"),
				Commits: []*github.HeadCommit{
					{SHA: github.Ptr("aaa")},
				},
			}),
			expected: 0,
		},
		{
			name: "opened issue",
			event: event(t, EventTypeIssue, &github.IssuesEvent{
				Action: github.Ptr("opened"),
			}),
			expected: 1,
		},
		{
			name: "closed issue",
			event: event(t, EventTypeIssue, &github.IssuesEvent{
				Action: github.Ptr("closed"),
			}),
			expected: 0,
		},
		{
			name: "opened pull request",
			event: event(t, EventTypePullRequest, &github.PullRequestEvent{
				Action: github.Ptr("opened"),
			}),
			expected: 1,
		},
		{
			name: "created review",
			event: event(t, EventTypePullRequestReview, &github.PullRequestReviewEvent{
				Action: github.Ptr("created"),
			}),
			expected: 1,
		},
		{
			name:     "uncounted event type",
			event:    event(t, "WatchEvent", &github.WatchEvent{}),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contributionCount(tt.event))
		})
	}
}

func TestIsDefaultBranchRef(t *testing.T) {
	assert.True(t, isDefaultBranchRef("refs/heads/main"))
	assert.True(t, isDefaultBranchRef("refs/heads/master"))
	assert.True(t, isDefaultBranchRef("refs/heads/gh-pages"))
	assert.False(t, isDefaultBranchRef("refs/heads/develop"))
	assert.False(t, isDefaultBranchRef("refs/tags/v1.0.0"))
}

func TestGetBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		maxPerDay int
		dilute    bool
		expected  Boundaries
	}{
		{
			name:      "dilute spreads by the busiest day",
			maxPerDay: 10,
			dilute:    true,
			expected:  Boundaries{0, 10, 20, 30, 40},
		},
		{
			name:      "no dilute steps by a quarter",
			maxPerDay: 8,
			dilute:    false,
			expected:  Boundaries{0, 2, 4, 6, 8},
		},
		{
			name:      "quiet user still gets visible levels",
			maxPerDay: 0,
			dilute:    false,
			expected:  Boundaries{0, 1, 2, 3, 4},
		},
		{
			name:      "small maximum floors the step at one",
			maxPerDay: 3,
			dilute:    false,
			expected:  Boundaries{0, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetBoundaries(tt.maxPerDay, tt.dilute))
		})
	}
}
