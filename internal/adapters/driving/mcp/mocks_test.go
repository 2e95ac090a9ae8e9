package mcp

import (
	"context"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.QueryResult
	state     domain.EngineState
	size      int
	loadErr   error
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Load(_ context.Context, _ driven.CorpusStore) error {
	return m.loadErr
}

func (m *mockSearchService) Search(query string, opts domain.SearchOptions) []domain.QueryResult {
	m.lastQuery = query
	m.lastOpts = opts
	if m.results == nil {
		return []domain.QueryResult{}
	}
	return m.results
}

func (m *mockSearchService) State() domain.EngineState { return m.state }

func (m *mockSearchService) LoadErr() error { return m.loadErr }

func (m *mockSearchService) Size() int { return m.size }

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }
