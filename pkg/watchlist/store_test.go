package watchlist

import (
	"context"
	"strings"
	"testing"

	"github.com/podwatch/watchlist-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory API implementation that records calls
type fakeAPI struct {
	podcasts  []Podcast
	nextID    uint
	listCalls int
	failWith  error
}

func newFakeAPI(podcasts ...Podcast) *fakeAPI {
	api := &fakeAPI{podcasts: podcasts, nextID: 100}
	return api
}

func (f *fakeAPI) ListPodcasts(ctx context.Context, query ListQuery) ([]Podcast, error) {
	f.listCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if query.Search == "" {
		return append([]Podcast(nil), f.podcasts...), nil
	}
	var matched []Podcast
	for _, p := range f.podcasts {
		if containsFold(p.Title, query.Search) || containsFold(p.Host, query.Search) || containsFold(p.Description, query.Search) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeAPI) GetPodcast(ctx context.Context, id uint) (*Podcast, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.podcasts {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, errors.NotFound("podcast")
}

func (f *fakeAPI) CreatePodcast(ctx context.Context, req CreateRequest) (*Podcast, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	created := Podcast{
		ID:       f.nextID,
		Title:    req.Title,
		Host:     req.Host,
		URL:      req.URL,
		Category: req.Category,
		Rating:   req.Rating,
	}
	f.podcasts = append(f.podcasts, created)
	return &created, nil
}

func (f *fakeAPI) UpdatePodcast(ctx context.Context, id uint, req UpdateRequest) (*Podcast, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.podcasts {
		if f.podcasts[i].ID == id {
			if req.Title != nil {
				f.podcasts[i].Title = *req.Title
			}
			if req.Rating != nil {
				f.podcasts[i].Rating = req.Rating
			}
			copied := f.podcasts[i]
			return &copied, nil
		}
	}
	return nil, errors.NotFound("podcast")
}

func (f *fakeAPI) DeletePodcast(ctx context.Context, id uint, pin string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.podcasts {
		if f.podcasts[i].ID == id {
			f.podcasts = append(f.podcasts[:i], f.podcasts[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("podcast")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func testPodcast(id uint, title, category string) Podcast {
	return Podcast{ID: id, Title: title, Host: "Host", Category: category}
}

func TestStore_FetchAll(t *testing.T) {
	api := newFakeAPI(
		testPodcast(1, "Science Friday", "Science"),
		testPodcast(2, "Hardcore History", "History"),
	)
	store := NewStore(api)

	assert.Equal(t, StatusIdle, store.Status(OpFetch))

	require.NoError(t, store.FetchAll(context.Background()))
	assert.Equal(t, StatusSucceeded, store.Status(OpFetch))
	assert.Len(t, store.Display(), 2)
	assert.False(t, store.LastUpdated().IsZero())
}

func TestStore_FetchAll_FailureKeepsState(t *testing.T) {
	api := newFakeAPI(testPodcast(1, "Science Friday", "Science"))
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))

	api.failWith = errors.Transport(assert.AnError)
	require.Error(t, store.FetchAll(context.Background()))

	assert.Equal(t, StatusFailed, store.Status(OpFetch))
	assert.NotEmpty(t, store.LastError())
	assert.Len(t, store.Display(), 1, "failed fetch must not clobber the cached list")
}

func TestStore_DisplayPrecedence(t *testing.T) {
	api := newFakeAPI(
		testPodcast(1, "Science Friday", "Science"),
		testPodcast(2, "Hardcore History", "History"),
		testPodcast(3, "Radiolab", "Science"),
	)
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))

	// Filter narrows the display
	store.Filter([]string{"Science"})
	display := store.Display()
	require.Len(t, display, 2)
	for _, p := range display {
		assert.Equal(t, "Science", p.Category)
	}

	// Search wins over an active filter
	require.NoError(t, store.Search(context.Background(), "history"))
	display = store.Display()
	require.Len(t, display, 1)
	assert.Equal(t, "Hardcore History", display[0].Title)

	// Clearing search falls back to the filter
	require.NoError(t, store.Search(context.Background(), "   "))
	assert.False(t, store.IsSearching())
	assert.Len(t, store.Display(), 2)

	// Clearing the filter restores the full list
	store.Filter(nil)
	assert.Len(t, store.Display(), 3)
	assert.Empty(t, store.ActiveFilters())
}

func TestStore_FilterIsLocal(t *testing.T) {
	api := newFakeAPI(
		testPodcast(1, "Science Friday", "Science"),
		testPodcast(2, "Hardcore History", "History"),
	)
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))

	callsBefore := api.listCalls
	store.Filter([]string{"History"})
	store.Filter(nil)
	store.Filter([]string{"Science", "History"})
	assert.Equal(t, callsBefore, api.listCalls, "filtering must never touch the network")
	assert.Len(t, store.Display(), 2)
}

func TestStore_CreateAppendsWithoutRefetch(t *testing.T) {
	api := newFakeAPI(testPodcast(1, "Science Friday", "Science"))
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))
	callsBefore := api.listCalls

	require.NoError(t, store.Create(context.Background(), CreateRequest{
		Title:    "Radiolab",
		Host:     "Latif Nasser",
		URL:      "https://open.spotify.com/show/radiolab",
		Category: "Science",
		PIN:      "4821",
	}))

	assert.Equal(t, StatusSucceeded, store.Status(OpCreate))
	assert.Len(t, store.Display(), 2)
	assert.Equal(t, callsBefore, api.listCalls, "create must reconcile locally, not refetch")
}

func TestStore_CreateFailsFastOnBadInput(t *testing.T) {
	api := newFakeAPI()
	store := NewStore(api)

	tests := []struct {
		name    string
		req     CreateRequest
		message string
	}{
		{
			name: "unsupported platform",
			req: CreateRequest{
				Title: "Show", URL: "https://example.com/feed", PIN: "1234",
			},
			message: "Unsupported podcast platform",
		},
		{
			name: "short PIN",
			req: CreateRequest{
				Title: "Show", URL: "https://open.spotify.com/show/x", PIN: "12",
			},
			message: "PIN must be exactly 4 digits",
		},
		{
			name: "non-numeric PIN",
			req: CreateRequest{
				Title: "Show", URL: "https://open.spotify.com/show/x", PIN: "12ab",
			},
			message: "PIN must contain only numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, errors.GetMessage(err), tt.message)
			assert.Equal(t, StatusFailed, store.Status(OpCreate))
			assert.Equal(t, 0, api.listCalls, "pre-validation failures must not reach the network")
		})
	}
}

func TestStore_UpdateReconcilesEverywhere(t *testing.T) {
	api := newFakeAPI(
		testPodcast(1, "Science Friday", "Science"),
		testPodcast(2, "Hardcore History", "History"),
	)
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))
	require.NoError(t, store.FetchOne(context.Background(), 1))
	store.Filter([]string{"Science"})

	newTitle := "Science Saturday"
	require.NoError(t, store.Update(context.Background(), 1, UpdateRequest{Title: &newTitle, PIN: "4821"}))

	assert.Equal(t, "Science Saturday", store.Podcasts()[0].Title)
	assert.Equal(t, "Science Saturday", store.Display()[0].Title, "filtered view reconciles too")
	require.NotNil(t, store.Focused())
	assert.Equal(t, "Science Saturday", store.Focused().Title)
}

func TestStore_UpdateFailureChangesNothing(t *testing.T) {
	api := newFakeAPI(testPodcast(1, "Science Friday", "Science"))
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))

	api.failWith = errors.Authorization("Invalid PIN for this podcast")
	newTitle := "Hijacked"
	err := store.Update(context.Background(), 1, UpdateRequest{Title: &newTitle, PIN: "0000"})
	require.Error(t, err)

	assert.Equal(t, StatusFailed, store.Status(OpUpdate))
	assert.Equal(t, "Invalid PIN for this podcast", store.LastError())
	assert.Equal(t, "Science Friday", store.Podcasts()[0].Title)
}

func TestStore_DeleteRemovesEverywhere(t *testing.T) {
	api := newFakeAPI(
		testPodcast(1, "Science Friday", "Science"),
		testPodcast(2, "Radiolab", "Science"),
	)
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))
	require.NoError(t, store.FetchOne(context.Background(), 1))
	store.Filter([]string{"Science"})

	require.NoError(t, store.Delete(context.Background(), 1, "4821"))

	assert.Len(t, store.Podcasts(), 1)
	assert.Len(t, store.Display(), 1)
	assert.Nil(t, store.Focused(), "deleting the focused entry clears focus")
}

func TestStore_DeleteFailureChangesNothing(t *testing.T) {
	api := newFakeAPI(testPodcast(1, "Science Friday", "Science"))
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))

	api.failWith = errors.Authorization("Invalid PIN for this podcast")
	require.Error(t, store.Delete(context.Background(), 1, "0000"))

	assert.Equal(t, StatusFailed, store.Status(OpDelete))
	assert.Len(t, store.Podcasts(), 1, "failed delete must not remove the entry")
}

func TestStore_SearchIsServerSide(t *testing.T) {
	api := newFakeAPI(
		testPodcast(1, "Science Friday", "Science"),
		testPodcast(2, "Hardcore History", "History"),
	)
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))

	callsBefore := api.listCalls
	require.NoError(t, store.Search(context.Background(), "FRIDAY"))
	assert.Equal(t, callsBefore+1, api.listCalls)
	assert.True(t, store.IsSearching())

	display := store.Display()
	require.Len(t, display, 1)
	assert.Equal(t, "Science Friday", display[0].Title)
}

func TestStore_EmptySearchClearsWithoutNetwork(t *testing.T) {
	api := newFakeAPI(testPodcast(1, "Science Friday", "Science"))
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))
	require.NoError(t, store.Search(context.Background(), "friday"))

	callsBefore := api.listCalls
	require.NoError(t, store.Search(context.Background(), ""))

	assert.Equal(t, callsBefore, api.listCalls)
	assert.False(t, store.IsSearching())
	assert.Equal(t, StatusIdle, store.Status(OpSearch))
	assert.Len(t, store.Display(), 1)
}

func TestStore_GlobalStatus(t *testing.T) {
	api := newFakeAPI(
		testPodcast(1, "Science Friday", "Science"),
		testPodcast(2, "Hardcore History", "History"),
	)
	store := NewStore(api)

	assert.Equal(t, StatusIdle, store.GlobalStatus())

	require.NoError(t, store.FetchAll(context.Background()))
	assert.Equal(t, StatusSucceeded, store.GlobalStatus())

	// Search and filter shape the display without moving the global status
	require.NoError(t, store.Search(context.Background(), "friday"))
	store.Filter([]string{"Science"})
	assert.Equal(t, StatusSucceeded, store.GlobalStatus())

	// A failed mutation drives it to failed alongside the per-op status
	api.failWith = errors.Authorization("Invalid PIN for this podcast")
	newTitle := "Hijacked"
	require.Error(t, store.Update(context.Background(), 1, UpdateRequest{Title: &newTitle, PIN: "0000"}))
	assert.Equal(t, StatusFailed, store.GlobalStatus())
	assert.Equal(t, StatusFailed, store.Status(OpUpdate))

	// The next successful fetch recovers it
	api.failWith = nil
	require.NoError(t, store.FetchAll(context.Background()))
	assert.Equal(t, StatusSucceeded, store.GlobalStatus())
}

func TestStore_FilterRecomputedAfterFetch(t *testing.T) {
	api := newFakeAPI(testPodcast(1, "Science Friday", "Science"))
	store := NewStore(api)
	require.NoError(t, store.FetchAll(context.Background()))
	store.Filter([]string{"Science"})

	api.podcasts = append(api.podcasts, testPodcast(2, "Radiolab", "Science"))
	require.NoError(t, store.FetchAll(context.Background()))

	assert.Len(t, store.Display(), 2, "refetch reapplies the active filter")
}
