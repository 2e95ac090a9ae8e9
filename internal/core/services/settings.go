package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeySourceRoot      = "build.source_root"
	KeyRenderRoot      = "build.render_root"
	KeyListingName     = "build.listing_name"
	KeySkipDirs        = "build.skip_dirs"
	KeyExcludeFiles    = "build.exclude_files"
	KeyIndexHTMLBodies = "build.index_html_bodies"
	KeyLinkPrefix      = "build.link_prefix"
	KeyRateLimit       = "build.rate_limit"
	KeyCorpusPath      = "corpus.path"
	KeyCorpusFormat    = "corpus.format"
	KeySearchLimit     = "search.limit"
	KeyMaxSnippets     = "search.max_snippets"
	KeyContextChars    = "search.context_chars"
	KeyPDFCommand      = "pdf.command"
	KeyWatchDebounce   = "watch.debounce_ms"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
	kindList
)

var settingKeys = map[string]keyKind{
	KeySourceRoot:      kindString,
	KeyRenderRoot:      kindString,
	KeyListingName:     kindString,
	KeySkipDirs:        kindList,
	KeyExcludeFiles:    kindList,
	KeyIndexHTMLBodies: kindBool,
	KeyLinkPrefix:      kindString,
	KeyRateLimit:       kindInt,
	KeyCorpusPath:      kindString,
	KeyCorpusFormat:    kindString,
	KeySearchLimit:     kindInt,
	KeyMaxSnippets:     kindInt,
	KeyContextChars:    kindInt,
	KeyPDFCommand:      kindString,
	KeyWatchDebounce:   kindInt,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	format := domain.CorpusFormat(s.configStore.GetString(KeyCorpusFormat))
	if !format.IsValid() {
		return nil, fmt.Errorf("%s: %w: %q", KeyCorpusFormat, domain.ErrUnsupportedFormat, format)
	}

	settings := &domain.AppSettings{
		Build: domain.BuildSettings{
			SourceRoot:      s.getString(KeySourceRoot, defaults.Build.SourceRoot),
			RenderRoot:      s.getString(KeyRenderRoot, defaults.Build.RenderRoot),
			ListingName:     s.getString(KeyListingName, defaults.Build.ListingName),
			SkipDirs:        s.getStrings(KeySkipDirs, defaults.Build.SkipDirs),
			ExcludeFiles:    s.getStrings(KeyExcludeFiles, defaults.Build.ExcludeFiles),
			IndexHTMLBodies: s.getBool(KeyIndexHTMLBodies, defaults.Build.IndexHTMLBodies),
			LinkPrefix:      s.configStore.GetString(KeyLinkPrefix), // empty is valid
			RateLimit:       s.getInt(KeyRateLimit, defaults.Build.RateLimit),
		},
		Corpus: domain.CorpusSettings{
			Path:   s.getString(KeyCorpusPath, defaults.Corpus.Path),
			Format: format,
		},
		Search: domain.SearchSettings{
			Limit:        s.getInt(KeySearchLimit, defaults.Search.Limit),
			MaxSnippets:  s.getInt(KeyMaxSnippets, defaults.Search.MaxSnippets),
			ContextChars: s.getInt(KeyContextChars, defaults.Search.ContextChars),
		},
		PDF: domain.PDFSettings{
			Command: s.getString(KeyPDFCommand, defaults.PDF.Command),
		},
		Watch: domain.WatchSettings{
			DebounceMS: s.getInt(KeyWatchDebounce, defaults.Watch.DebounceMS),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Corpus.Format.IsValid() {
		return fmt.Errorf("save %s: %w: %q", KeyCorpusFormat, domain.ErrUnsupportedFormat, settings.Corpus.Format)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeySourceRoot, settings.Build.SourceRoot},
		{KeyRenderRoot, settings.Build.RenderRoot},
		{KeyListingName, settings.Build.ListingName},
		{KeySkipDirs, settings.Build.SkipDirs},
		{KeyExcludeFiles, settings.Build.ExcludeFiles},
		{KeyIndexHTMLBodies, settings.Build.IndexHTMLBodies},
		{KeyLinkPrefix, settings.Build.LinkPrefix},
		{KeyRateLimit, settings.Build.RateLimit},
		{KeyCorpusPath, settings.Corpus.Path},
		{KeyCorpusFormat, string(settings.Corpus.Format)},
		{KeySearchLimit, settings.Search.Limit},
		{KeyMaxSnippets, settings.Search.MaxSnippets},
		{KeyContextChars, settings.Search.ContextChars},
		{KeyPDFCommand, settings.PDF.Command},
		{KeyWatchDebounce, settings.Watch.DebounceMS},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value according to the type of key and stores it.
// List values are comma-separated.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	var parsed any
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = n
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		parsed = b
	case kindList:
		parsed = splitList(value)
	default:
		if key == KeyCorpusFormat && !domain.CorpusFormat(value).IsValid() {
			return fmt.Errorf("%s: %w: %q", key, domain.ErrUnsupportedFormat, value)
		}
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Keys lists every recognised setting key, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}

func splitList(value string) []string {
	items := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
