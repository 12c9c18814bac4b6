// Package events samples user activity from the GitHub events API and
// derives the commit counts needed to place a day into a given data level
// on the contribution calendar.
package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// Event type names as reported by the GitHub events API, see
// https://docs.github.com/en/developers/webhooks-and-events/events/github-event-types
const (
	EventTypeFork              = "ForkEvent"
	EventTypeIssue             = "IssuesEvent"
	EventTypePullRequest       = "PullRequestEvent"
	EventTypePullRequestReview = "PullRequestReviewEvent"
	EventTypePush              = "PushEvent"
)

// The events API only exposes the last 90 days of a user's timeline, so
// any activity sample is at best a recent approximation.
const timelineWindow = 90 * 24 * time.Hour

const eventsPerPage = 100

// Client wraps the GitHub API operations forgehub needs.
type Client struct {
	gh *github.Client
}

// NewClient returns a client, authenticated when token is non-empty.
func NewClient(token string) *Client {
	if token == "" {
		return &Client{gh: github.NewClient(nil)}
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{gh: github.NewClient(oauth2.NewClient(context.Background(), src))}
}

// ResolveLogin returns the login to operate on. An empty login resolves to
// the authenticated user, which requires a token.
func (c *Client) ResolveLogin(ctx context.Context, login string) (string, error) {
	user, _, err := c.gh.Users.Get(ctx, login)
	if err != nil {
		return "", fmt.Errorf("failed to fetch github user: %w", err)
	}

	return user.GetLogin(), nil
}

// MaxEventsPerDay returns the busiest day within the event timeline window
// and the amount of calendar activity on it. A user with no countable
// activity yields a zero day and count of zero.
func (c *Client) MaxEventsPerDay(ctx context.Context, login string) (time.Time, int, error) {
	cutoff := time.Now().Add(-timelineWindow)
	freq := make(map[time.Time]int)

	opts := &github.ListOptions{PerPage: eventsPerPage}
	for {
		events, resp, err := c.gh.Activity.ListEventsPerformedByUser(ctx, login, true, opts)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("failed to list events for '%s': %w", login, err)
		}

		for _, event := range events {
			created := event.GetCreatedAt().Time
			if created.Before(cutoff) {
				continue
			}

			day := created.UTC().Truncate(24 * time.Hour)
			freq[day] += contributionCount(event)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	var maxDay time.Time
	var maxCount int
	for day, count := range freq {
		if count > maxCount || (count == maxCount && day.After(maxDay)) {
			maxDay = day
			maxCount = count
		}
	}

	return maxDay, maxCount, nil
}

// contributionCount returns the amount of contribution calendar activity an
// event is worth. Only forks, pushes to a default-style branch, opened
// issues and pull requests, and created reviews are counted, see
// https://docs.github.com/en/account-and-profile/setting-up-and-managing-your-github-profile/managing-contribution-graphs-on-your-profile/viewing-contributions-on-your-profile#what-counts-as-a-contribution
func contributionCount(event *github.Event) int {
	payload, err := event.ParsePayload()
	if err != nil {
		return 0
	}

	switch event.GetType() {
	case EventTypeFork:
		return 1
	case EventTypePush:
		push, ok := payload.(*github.PushEvent)
		if ok && isDefaultBranchRef(push.GetRef()) {
			return len(push.Commits)
		}
	case EventTypeIssue:
		issue, ok := payload.(*github.IssuesEvent)
		if ok && issue.GetAction() == "opened" {
			return 1
		}
	case EventTypePullRequest:
		pr, ok := payload.(*github.PullRequestEvent)
		if ok && pr.GetAction() == "opened" {
			return 1
		}
	case EventTypePullRequestReview:
		review, ok := payload.(*github.PullRequestReviewEvent)
		if ok && review.GetAction() == "created" {
			return 1
		}
	}

	return 0
}

// isDefaultBranchRef reports whether a push ref targets a branch that the
// contribution calendar counts commits on. The events API does not carry
// the repository's configured default branch, so the conventional names are
// matched instead.
func isDefaultBranchRef(ref string) bool {
	branch := ref[strings.LastIndex(ref, "/")+1:]

	return branch == "main" || branch == "master" || branch == "gh-pages"
}
