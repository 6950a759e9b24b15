/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"time"

	"github.com/nebulahq/chainpulse/internal/config"
	"github.com/nebulahq/chainpulse/internal/domain"
	"github.com/nebulahq/chainpulse/internal/errors"
	"github.com/nebulahq/chainpulse/internal/seed"
	"github.com/nebulahq/chainpulse/internal/store"
	"github.com/nebulahq/chainpulse/internal/wallet"
)

// Function seams for tests.
var (
	loadSeedData = seed.Load
	newSubmitter = defaultSubmitter
	exitFunc     = os.Exit
)

// errorHandler presents command output on the console.
var errorHandler errors.ErrorHandler = errors.DefaultCLIHandler()

// fail reports a fatal command error and exits.
func fail(msg string) {
	errorHandler.Error(msg)
	exitFunc(1)
}

// appState holds the lazily built per-invocation session.
var appState struct {
	session  *store.Session
	projects []domain.Project
}

// defaultSubmitter builds the simulated review submitter from the
// configured latency and failure rate.
func defaultSubmitter() store.Submitter {
	delay := time.Duration(config.GetInt(config.KeySubmitDelayMs, 400)) * time.Millisecond
	failurePct := config.GetInt(config.KeySubmitFailurePct, 0)
	return store.NewSimulatedSubmitter(delay, float64(failurePct)/100)
}

// getSession builds the seeded in-memory session on first use.
func getSession() (*store.Session, error) {
	if appState.session != nil {
		return appState.session, nil
	}
	data, err := loadSeedData()
	if err != nil {
		return nil, err
	}
	appState.session = store.NewSession(store.SeedData{
		Notifications: data.Notifications,
		Posts:         data.Posts,
		Reviews:       data.Reviews,
	}, newSubmitter())
	appState.projects = data.Projects
	return appState.session, nil
}

// getProjects returns the seeded project directory.
func getProjects() ([]domain.Project, error) {
	if _, err := getSession(); err != nil {
		return nil, err
	}
	return appState.projects, nil
}

// resetAppState discards the cached session. Used by tests.
func resetAppState() {
	appState.session = nil
	appState.projects = nil
}

// getConnector builds the wallet connector, preferring an explicit
// address over the environment.
func getConnector(address string) *wallet.SessionConnector {
	if address != "" {
		return wallet.NewSessionConnector(address)
	}
	return wallet.NewSessionConnectorFromEnv()
}
