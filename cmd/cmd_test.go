/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/seed"
	"github.com/nebulahq/chainpulse/internal/store"
	"github.com/nebulahq/chainpulse/internal/wallet"
)

func testSeedData() seed.Data {
	return seed.Data{
		Notifications: []domain.Notification{
			{ID: 1, Category: domain.CategoryNewProject, Title: "NebulaSwap listed", Timestamp: "2025-08-10T09:00:00Z"},
			{ID: 2, Category: domain.CategoryUpdate, Title: "PulseBridge v2 shipped", Timestamp: "2025-08-11T09:00:00Z"},
		},
		Posts: []domain.Post{
			{ID: 1, Author: "ava", Handle: "@ava", Content: "bridging to pulse", Platform: "lens",
				PublishedAt: time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC), Likes: 10},
			{ID: 2, Author: "ben", Handle: "@ben", Content: "nft mint tonight", Platform: "farcaster",
				PublishedAt: time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC), Likes: 50},
		},
		Projects: []domain.Project{
			{ID: "nebula-swap", Name: "NebulaSwap", Symbol: "NBS", Category: domain.ProjectCategoryDeFi},
		},
		Reviews: []domain.Review{
			{ID: 1, ProjectID: "nebula-swap", Author: "cleo", Rating: 4, Comment: "solid", Timestamp: "2025-08-12T09:00:00Z"},
		},
	}
}

// setupTestApp swaps the seed and submitter seams for deterministic,
// instant behavior and restores them when the test ends.
func setupTestApp(t *testing.T) {
	t.Helper()
	origSeed := loadSeedData
	origSubmitter := newSubmitter

	loadSeedData = func() (seed.Data, error) { return testSeedData(), nil }
	newSubmitter = func() store.Submitter {
		return store.SubmitterFunc(func(context.Context, string, domain.ReviewDraft) error {
			return nil
		})
	}
	resetAppState()
	resetFlags()

	t.Cleanup(func() {
		loadSeedData = origSeed
		newSubmitter = origSubmitter
		resetAppState()
	})
}

// resetFlags clears the package-level flag values, which otherwise
// persist across Execute calls within the test binary.
func resetFlags() {
	feedRank, feedPlatform, feedSearch, feedFormat = "", "", "", ""
	inboxUnread, inboxCategory, inboxFormat = false, "", ""
	projectsCategory, projectsSearch, projectsFormat = "", "", ""
	reviewsFormat = ""
	reviewRating, reviewComment, reviewAuthor, reviewWallet = 0, "", "", ""
	favoriteWallet = ""
}

type recordingHandler struct {
	errors    []string
	warnings  []string
	infos     []string
	successes []string
}

func (r *recordingHandler) Error(msg string)   { r.errors = append(r.errors, msg) }
func (r *recordingHandler) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingHandler) Info(msg string)    { r.infos = append(r.infos, msg) }
func (r *recordingHandler) Success(msg string) { r.successes = append(r.successes, msg) }

// swapHandler replaces the console handler and exit seam for the test.
func swapHandler(t *testing.T) (*recordingHandler, *[]int) {
	t.Helper()
	origHandler := errorHandler
	origExit := exitFunc

	rec := &recordingHandler{}
	codes := &[]int{}
	errorHandler = rec
	exitFunc = func(code int) { *codes = append(*codes, code) }

	t.Cleanup(func() {
		errorHandler = origHandler
		exitFunc = origExit
	})
	return rec, codes
}

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestFeedCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "feed", "--rank", "latest")
	assert.Contains(t, out, "ava")
	assert.Contains(t, out, "ben")
}

func TestFeedCommandPlatformFilter(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "feed", "--rank", "latest", "--platform", "lens")
	assert.Contains(t, out, "ava")
	assert.NotContains(t, out, "ben")
}

func TestFeedCommandSearch(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "feed", "--rank", "popular", "--search", "nft mint")
	assert.Contains(t, out, "ben")
	assert.NotContains(t, out, "ava")
}

func TestFeedCommandJSONFormat(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "feed", "--rank", "latest", "--format", "json")
	assert.Contains(t, out, `"Author"`)
	assert.Contains(t, out, "bridging to pulse")
}

func TestInboxCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "inbox")
	assert.Contains(t, out, "NebulaSwap listed")
	assert.Contains(t, out, "PulseBridge v2 shipped")
	assert.Contains(t, out, "2 unread")
}

func TestInboxCommandCategoryFilter(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "inbox", "--category", "update")
	assert.NotContains(t, out, "NebulaSwap listed")
	assert.Contains(t, out, "PulseBridge v2 shipped")
}

func TestMarkReadCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "mark-read", "1")
	assert.Contains(t, out, "1 unread")

	// Repeating is a no-op, unknown IDs too.
	out = executeCommand(t, "mark-read", "1")
	assert.Contains(t, out, "1 unread")
	out = executeCommand(t, "mark-read", "99")
	assert.Contains(t, out, "1 unread")
}

func TestMarkAllReadCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "mark-all-read")
	assert.Contains(t, out, "0 unread")
}

func TestProjectsCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "projects")
	assert.Contains(t, out, "NebulaSwap")
}

func TestReviewsCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "reviews", "nebula-swap")
	assert.Contains(t, out, "cleo")
	assert.Contains(t, out, "average rating: 4.0")
}

func TestFailRoutesThroughHandler(t *testing.T) {
	rec, codes := swapHandler(t)

	fail("seed data unavailable")

	assert.Equal(t, []string{"seed data unavailable"}, rec.errors)
	assert.Equal(t, []int{1}, *codes)
}

func TestReviewCommandPublishes(t *testing.T) {
	setupTestApp(t)
	rec, _ := swapHandler(t)

	executeCommand(t, "review", "nebula-swap",
		"--wallet", "0xabc123def4567890",
		"--rating", "5",
		"--comment", "smooth swaps")

	session, err := getSession()
	require.NoError(t, err)
	reviews := session.Reviews.ListFor("nebula-swap")
	require.Len(t, reviews, 2)

	// Newest first, id continues after the seeded maximum.
	assert.Equal(t, 2, reviews[0].ID)
	assert.Equal(t, "smooth swaps", reviews[0].Comment)
	assert.Equal(t, "0xabc123def4567890", reviews[0].Author)
	assert.Equal(t, []string{"Review 2 published for nebula-swap"}, rec.successes)
}

func TestVoteCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "vote", "1", "yes")
	assert.Contains(t, out, "review 1: 1 yes / 0 no")

	out = executeCommand(t, "vote", "1", "no")
	assert.Contains(t, out, "review 1: 1 yes / 1 no")

	out = executeCommand(t, "vote", "42", "yes")
	assert.Contains(t, out, "review 42 not found")
}

func TestFavoriteCommand(t *testing.T) {
	setupTestApp(t)

	out := executeCommand(t, "favorite", "nebula-swap", "--wallet", "0xabc123def4567890")
	assert.Contains(t, out, "added nebula-swap to favorites")

	out = executeCommand(t, "favorites")
	assert.Contains(t, out, "nebula-swap")

	out = executeCommand(t, "favorite", "nebula-swap", "--wallet", "0xabc123def4567890")
	assert.Contains(t, out, "removed nebula-swap from favorites")

	out = executeCommand(t, "favorites")
	assert.Contains(t, out, "no favorites yet")
}

func TestWalletCommand(t *testing.T) {
	setupTestApp(t)

	t.Setenv(wallet.EnvWalletAddress, "")
	out := executeCommand(t, "wallet")
	assert.Contains(t, out, "not connected")

	t.Setenv(wallet.EnvWalletAddress, "0xabc123def4567890")
	out = executeCommand(t, "wallet")
	assert.Contains(t, out, "connected: 0xabc123def4567890")
}
