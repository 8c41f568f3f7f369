package watchlist

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/podwatch/watchlist-api/pkg/errors"
)

// Status is the lifecycle of one tracked operation
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Operation keys one tracked request kind in the store
type Operation string

const (
	OpFetch    Operation = "fetch"
	OpFetchOne Operation = "fetchOne"
	OpCreate   Operation = "create"
	OpUpdate   Operation = "update"
	OpDelete   Operation = "delete"
	OpSearch   Operation = "search"
	OpFilter   Operation = "filter"
)

// API is the slice of the client the store consumes. Narrow on purpose so
// tests can substitute a fake.
type API interface {
	ListPodcasts(ctx context.Context, query ListQuery) ([]Podcast, error)
	GetPodcast(ctx context.Context, id uint) (*Podcast, error)
	CreatePodcast(ctx context.Context, req CreateRequest) (*Podcast, error)
	UpdatePodcast(ctx context.Context, id uint, req UpdateRequest) (*Podcast, error)
	DeletePodcast(ctx context.Context, id uint, pin string) error
}

// Store is an in-memory view of the watchlist plus the status of every
// request that shaped it. Mutations reconcile the cached collections in
// place instead of refetching. All accessors return copies; concurrent
// operations are safe and the last writer wins per operation key.
type Store struct {
	api API

	mu            sync.RWMutex
	podcasts      []Podcast
	focused       *Podcast
	searchResults []Podcast
	isSearching   bool
	activeFilters []string
	filtered      []Podcast
	lastUpdated   time.Time
	globalStatus  Status
	status        map[Operation]Status
	lastError     string
}

// NewStore creates a store backed by the given API client
func NewStore(api API) *Store {
	return &Store{
		api:          api,
		globalStatus: StatusIdle,
		status: map[Operation]Status{
			OpFetch:    StatusIdle,
			OpFetchOne: StatusIdle,
			OpCreate:   StatusIdle,
			OpUpdate:   StatusIdle,
			OpDelete:   StatusIdle,
			OpSearch:   StatusIdle,
			OpFilter:   StatusIdle,
		},
	}
}

// FetchAll loads the full watchlist from the server
func (s *Store) FetchAll(ctx context.Context) error {
	s.begin(OpFetch)

	list, err := s.api.ListPodcasts(ctx, ListQuery{})
	if err != nil {
		s.fail(OpFetch, err)
		return err
	}

	s.mu.Lock()
	s.podcasts = list
	s.lastUpdated = time.Now()
	s.filtered = filterByCategory(s.podcasts, s.activeFilters)
	s.status[OpFetch] = StatusSucceeded
	s.globalStatus = StatusSucceeded
	s.mu.Unlock()
	return nil
}

// FetchOne loads a single entry into focus
func (s *Store) FetchOne(ctx context.Context, id uint) error {
	s.begin(OpFetchOne)

	podcast, err := s.api.GetPodcast(ctx, id)
	if err != nil {
		s.fail(OpFetchOne, err)
		return err
	}

	s.mu.Lock()
	s.focused = podcast
	s.status[OpFetchOne] = StatusSucceeded
	s.globalStatus = StatusSucceeded
	s.mu.Unlock()
	return nil
}

// Create adds an entry and appends it to the cached list on success.
// URL and PIN format problems are caught locally before any network call.
func (s *Store) Create(ctx context.Context, req CreateRequest) error {
	if err := validateURL(req.URL); err != nil {
		s.fail(OpCreate, err)
		return err
	}
	if err := validatePIN(req.PIN); err != nil {
		s.fail(OpCreate, err)
		return err
	}

	s.begin(OpCreate)

	created, err := s.api.CreatePodcast(ctx, req)
	if err != nil {
		s.fail(OpCreate, err)
		return err
	}

	s.mu.Lock()
	s.podcasts = append(s.podcasts, *created)
	s.filtered = filterByCategory(s.podcasts, s.activeFilters)
	s.lastUpdated = time.Now()
	s.status[OpCreate] = StatusSucceeded
	s.globalStatus = StatusSucceeded
	s.mu.Unlock()
	return nil
}

// Update patches an entry and reconciles every cached collection by ID
func (s *Store) Update(ctx context.Context, id uint, req UpdateRequest) error {
	if req.URL != nil {
		if err := validateURL(*req.URL); err != nil {
			s.fail(OpUpdate, err)
			return err
		}
	}
	if err := validatePIN(req.PIN); err != nil {
		s.fail(OpUpdate, err)
		return err
	}

	s.begin(OpUpdate)

	updated, err := s.api.UpdatePodcast(ctx, id, req)
	if err != nil {
		s.fail(OpUpdate, err)
		return err
	}

	s.mu.Lock()
	replaceByID(s.podcasts, updated)
	replaceByID(s.searchResults, updated)
	replaceByID(s.filtered, updated)
	if s.focused != nil && s.focused.ID == updated.ID {
		s.focused = updated
	}
	s.lastUpdated = time.Now()
	s.status[OpUpdate] = StatusSucceeded
	s.globalStatus = StatusSucceeded
	s.mu.Unlock()
	return nil
}

// Delete removes an entry and drops it from every cached collection
func (s *Store) Delete(ctx context.Context, id uint, pin string) error {
	if err := validatePIN(pin); err != nil {
		s.fail(OpDelete, err)
		return err
	}

	s.begin(OpDelete)

	if err := s.api.DeletePodcast(ctx, id, pin); err != nil {
		s.fail(OpDelete, err)
		return err
	}

	s.mu.Lock()
	s.podcasts = removeByID(s.podcasts, id)
	s.searchResults = removeByID(s.searchResults, id)
	s.filtered = removeByID(s.filtered, id)
	if s.focused != nil && s.focused.ID == id {
		s.focused = nil
	}
	s.lastUpdated = time.Now()
	s.status[OpDelete] = StatusSucceeded
	s.globalStatus = StatusSucceeded
	s.mu.Unlock()
	return nil
}

// Search runs a server-side substring search over title, host and
// description. An empty or whitespace-only term clears the search without
// touching the network.
func (s *Store) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		s.mu.Lock()
		s.isSearching = false
		s.searchResults = nil
		s.status[OpSearch] = StatusIdle
		s.mu.Unlock()
		return nil
	}

	s.begin(OpSearch)

	results, err := s.api.ListPodcasts(ctx, ListQuery{Search: term})
	if err != nil {
		s.fail(OpSearch, err)
		return err
	}

	s.mu.Lock()
	s.searchResults = results
	s.isSearching = true
	s.status[OpSearch] = StatusSucceeded
	s.mu.Unlock()
	return nil
}

// Filter narrows the displayed list to the given categories. Filtering is
// evaluated locally against the cached list; nil or empty categories
// revert the display to the full list.
func (s *Store) Filter(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(categories) == 0 {
		s.activeFilters = nil
		s.filtered = nil
		s.status[OpFilter] = StatusIdle
		return
	}

	s.activeFilters = append([]string(nil), categories...)
	s.filtered = filterByCategory(s.podcasts, s.activeFilters)
	s.status[OpFilter] = StatusSucceeded
}

// Display resolves what the caller should render right now: search results
// while a search is active, otherwise the filtered list while filters are
// active, otherwise the full list.
func (s *Store) Display() []Podcast {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.isSearching:
		return copyPodcasts(s.searchResults)
	case len(s.activeFilters) > 0:
		return copyPodcasts(s.filtered)
	default:
		return copyPodcasts(s.podcasts)
	}
}

// GlobalStatus reports the store-wide lifecycle state, driven by the most
// recent fetch or mutation. Search and filter do not move it.
func (s *Store) GlobalStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.globalStatus
}

// Status reports the lifecycle state of one operation
func (s *Store) Status(op Operation) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.status[op]; ok {
		return st
	}
	return StatusIdle
}

// LastError returns the message of the most recent failure, or ""
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Podcasts returns a copy of the full cached list
func (s *Store) Podcasts() []Podcast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPodcasts(s.podcasts)
}

// Focused returns a copy of the entry loaded by FetchOne, or nil
func (s *Store) Focused() *Podcast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.focused == nil {
		return nil
	}
	copied := *s.focused
	return &copied
}

// ActiveFilters returns a copy of the category filter set
func (s *Store) ActiveFilters() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.activeFilters...)
}

// IsSearching reports whether search results currently drive the display
func (s *Store) IsSearching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isSearching
}

// LastUpdated returns when the cached list last changed
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

func (s *Store) begin(op Operation) {
	s.mu.Lock()
	s.status[op] = StatusLoading
	if drivesGlobalStatus(op) {
		s.globalStatus = StatusLoading
	}
	s.mu.Unlock()
}

func (s *Store) fail(op Operation, err error) {
	s.mu.Lock()
	s.status[op] = StatusFailed
	if drivesGlobalStatus(op) {
		s.globalStatus = StatusFailed
	}
	s.lastError = errors.GetMessage(err)
	s.mu.Unlock()
}

// drivesGlobalStatus reports whether an operation's lifecycle is mirrored
// into the store-wide status. Fetches and mutations drive it; search and
// filter only shape the display.
func drivesGlobalStatus(op Operation) bool {
	switch op {
	case OpFetch, OpFetchOne, OpCreate, OpUpdate, OpDelete:
		return true
	}
	return false
}

func filterByCategory(podcasts []Podcast, categories []string) []Podcast {
	if len(categories) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		wanted[category] = struct{}{}
	}

	var filtered []Podcast
	for _, podcast := range podcasts {
		if _, ok := wanted[podcast.Category]; ok {
			filtered = append(filtered, podcast)
		}
	}
	return filtered
}

func replaceByID(podcasts []Podcast, updated *Podcast) {
	for i := range podcasts {
		if podcasts[i].ID == updated.ID {
			podcasts[i] = *updated
			return
		}
	}
}

func removeByID(podcasts []Podcast, id uint) []Podcast {
	for i := range podcasts {
		if podcasts[i].ID == id {
			return append(podcasts[:i], podcasts[i+1:]...)
		}
	}
	return podcasts
}

func copyPodcasts(podcasts []Podcast) []Podcast {
	if podcasts == nil {
		return nil
	}
	return append([]Podcast(nil), podcasts...)
}
