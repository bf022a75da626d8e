package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/pkg/providers"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite store with the cache tables migrated
func setupTestDB(t *testing.T) (*database.DB, *database.Writer) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db := database.Wrap(gdb)
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// one connection, one in-memory database
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	writer := database.NewWriter()
	t.Cleanup(func() {
		writer.Close()
		_ = db.Close()
	})
	return db, writer
}

func countRows(t *testing.T, db *database.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return n
}

type fakeGeocoder struct {
	calls   atomic.Int32
	results []providers.GeocodeResult
	err     error
	barrier *sync.WaitGroup
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) ([]providers.GeocodeResult, error) {
	f.calls.Add(1)
	if f.barrier != nil {
		f.barrier.Done()
		f.barrier.Wait()
	}
	return f.results, f.err
}

func geocodeResult(formatted string, lat, lng float64) providers.GeocodeResult {
	var r providers.GeocodeResult
	r.FormattedAddress = formatted
	r.Geometry.Location.Lat = lat
	r.Geometry.Location.Lng = lng
	return r
}

type fakeForecast struct {
	calls atomic.Int32
	days  []providers.DailyForecast
	err   error
}

func (f *fakeForecast) Daily(ctx context.Context, lat, lng float64) ([]providers.DailyForecast, error) {
	f.calls.Add(1)
	return f.days, f.err
}

type fakeEvents struct {
	calls  atomic.Int32
	events []providers.Event
}

func (f *fakeEvents) Upcoming(ctx context.Context, lat, lng float64) ([]providers.Event, error) {
	f.calls.Add(1)
	return f.events, nil
}

type fakeBusinesses struct {
	calls      atomic.Int32
	businesses []providers.Business
}

func (f *fakeBusinesses) Search(ctx context.Context, lat, lng float64) ([]providers.Business, error) {
	f.calls.Add(1)
	return f.businesses, nil
}

type fakeMovies struct {
	searchCalls atomic.Int32
	results     []providers.MovieResult
	base        string
	configErr   error
}

func (f *fakeMovies) Search(ctx context.Context, query string) ([]providers.MovieResult, error) {
	f.searchCalls.Add(1)
	return f.results, nil
}

func (f *fakeMovies) ImageBaseURL(ctx context.Context, size string) (string, error) {
	if f.configErr != nil {
		return "", f.configErr
	}
	return f.base + size, nil
}

func TestLocationService_MissThenHit(t *testing.T) {
	db, writer := setupTestDB(t)
	geo := &fakeGeocoder{results: []providers.GeocodeResult{
		geocodeResult("Seattle, WA, USA", 47.6062095, -122.3320708),
		geocodeResult("Seattle, Other", 1, 2),
	}}
	svc := NewLocationService(db, writer, geo)
	ctx := context.Background()

	first, err := svc.Get(ctx, "seattle")
	if err != nil {
		t.Fatalf("first Get failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("Expected store-generated id on fresh location")
	}
	if first.SearchQuery != "seattle" || first.FormattedQuery != "Seattle, WA, USA" {
		t.Errorf("Unexpected location %+v", first)
	}
	if geo.calls.Load() != 1 {
		t.Errorf("Expected 1 geocode call, got %d", geo.calls.Load())
	}

	second, err := svc.Get(ctx, "seattle")
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if geo.calls.Load() != 1 {
		t.Errorf("Cache hit should not call the provider, got %d calls", geo.calls.Load())
	}
	if *second != *first {
		t.Errorf("Cached row %+v differs from first response %+v", second, first)
	}
	if n := countRows(t, db, "locations"); n != 1 {
		t.Errorf("Expected 1 location row, got %d", n)
	}
}

func TestLocationService_NoData(t *testing.T) {
	db, writer := setupTestDB(t)
	svc := NewLocationService(db, writer, &fakeGeocoder{})

	_, err := svc.Get(context.Background(), "atlantis")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Expected ErrNoData, got %v", err)
	}
	if n := countRows(t, db, "locations"); n != 0 {
		t.Errorf("Expected no insert, got %d rows", n)
	}
}

func TestLocationService_TransportError(t *testing.T) {
	db, writer := setupTestDB(t)
	upstream := &providers.TransportError{Provider: "geocode", StatusCode: 503}
	svc := NewLocationService(db, writer, &fakeGeocoder{err: upstream})

	_, err := svc.Get(context.Background(), "seattle")
	var te *providers.TransportError
	if !errors.As(err, &te) || te.StatusCode != 503 {
		t.Fatalf("Expected TransportError 503, got %v", err)
	}
}

func TestLocationService_StoreError(t *testing.T) {
	db, writer := setupTestDB(t)
	svc := NewLocationService(db, writer, &fakeGeocoder{})
	_ = db.Close()

	_, err := svc.Get(context.Background(), "seattle")
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("Expected StoreError, got %v", err)
	}
	if se.Op != "select" || se.Table != "locations" {
		t.Errorf("Unexpected StoreError %+v", se)
	}
	if se.SQLState() != "" {
		t.Errorf("SQLite errors carry no SQLSTATE, got %q", se.SQLState())
	}
}

// Two first-time requests racing on the same query may both insert.
func TestLocationService_ConcurrentMissesMayDuplicate(t *testing.T) {
	db, writer := setupTestDB(t)
	barrier := &sync.WaitGroup{}
	barrier.Add(2)
	geo := &fakeGeocoder{
		results: []providers.GeocodeResult{geocodeResult("Tacoma, WA, USA", 47.25, -122.44)},
		barrier: barrier,
	}
	svc := NewLocationService(db, writer, geo)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Get(context.Background(), "tacoma")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
	}
	if geo.calls.Load() != 2 {
		t.Errorf("Expected both requests to reach the provider, got %d", geo.calls.Load())
	}
	if n := countRows(t, db, "locations"); n != 2 {
		t.Errorf("Expected duplicate location rows, got %d", n)
	}
}

func TestWeatherService_MissThenHit(t *testing.T) {
	db, writer := setupTestDB(t)
	provider := &fakeForecast{days: []providers.DailyForecast{
		{Time: 1540018800, Summary: "Rain in the morning."},
		{Time: 1540105200, Summary: "Partly cloudy."},
	}}
	svc := NewWeatherService(db, writer, provider)
	q := CoordinatesQuery{LocationID: 3, Latitude: 47.6, Longitude: -122.3}
	ctx := context.Background()

	first, err := svc.Get(ctx, q)
	if err != nil {
		t.Fatalf("first Get failed: %v", err)
	}
	if len(first) != 2 || first[0].LocationID != 3 || first[0].Forecast != "Rain in the morning." {
		t.Fatalf("Unexpected forecasts %+v", first)
	}
	writer.Wait()

	second, err := svc.Get(ctx, q)
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if provider.calls.Load() != 1 {
		t.Errorf("Expected 1 provider call, got %d", provider.calls.Load())
	}
	if len(second) != len(first) {
		t.Fatalf("Expected %d cached rows, got %d", len(first), len(second))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("row %d: cached %+v, fresh %+v", i, second[i], first[i])
		}
	}
}

func TestWeatherService_EmptyResult(t *testing.T) {
	db, writer := setupTestDB(t)
	svc := NewWeatherService(db, writer, &fakeForecast{})

	_, err := svc.Get(context.Background(), CoordinatesQuery{LocationID: 1})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Expected ErrNoData, got %v", err)
	}
	writer.Wait()
	if n := countRows(t, db, "weathers"); n != 0 {
		t.Errorf("Expected no insert, got %d rows", n)
	}
}

func TestMeetupService_MissThenHit(t *testing.T) {
	db, writer := setupTestDB(t)
	var e providers.Event
	e.Link = "https://www.meetup.com/seattle-go/events/1"
	e.Name = "Go Night"
	e.Time = 1540018800000
	e.Group.Name = "Seattle Go"
	provider := &fakeEvents{events: []providers.Event{e}}
	svc := NewMeetupService(db, writer, provider)
	q := CoordinatesQuery{LocationID: 9, Latitude: 47.6, Longitude: -122.3}

	first, err := svc.Get(context.Background(), q)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	writer.Wait()

	second, err := svc.Get(context.Background(), q)
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if provider.calls.Load() != 1 {
		t.Errorf("Expected 1 provider call, got %d", provider.calls.Load())
	}
	if len(second) != 1 || second[0] != first[0] {
		t.Errorf("Cached %+v differs from fresh %+v", second, first)
	}
	if first[0].Host != "Seattle Go" {
		t.Errorf("Expected host from group name, got %q", first[0].Host)
	}
}

func TestReviewService_MissThenHit(t *testing.T) {
	db, writer := setupTestDB(t)
	provider := &fakeBusinesses{businesses: []providers.Business{
		{URL: "https://www.yelp.com/biz/a", Name: "Pike Place Chowder", Rating: 4.5, Price: "$$", ImageURL: "https://s3-media.fl.yelpcdn.com/a.jpg"},
	}}
	svc := NewReviewService(db, writer, provider)
	q := CoordinatesQuery{LocationID: 4}

	first, err := svc.Get(context.Background(), q)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	writer.Wait()

	second, err := svc.Get(context.Background(), q)
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if provider.calls.Load() != 1 {
		t.Errorf("Expected 1 provider call, got %d", provider.calls.Load())
	}
	if len(second) != 1 || second[0] != first[0] {
		t.Errorf("Cached %+v differs from fresh %+v", second, first)
	}
}

func TestMovieService_ImageBase(t *testing.T) {
	db, writer := setupTestDB(t)
	provider := &fakeMovies{
		base: "https://image.tmdb.org/t/p/",
		results: []providers.MovieResult{
			{Title: "Sleepless in Seattle", ReleaseDate: "1993-06-24", VoteCount: 1650, VoteAverage: 6.6, Popularity: 11.2, PosterPath: "/afk.jpg", Overview: "A young boy..."},
		},
	}
	svc := NewMovieService(db, writer, provider, "w500")
	q := SearchQuery{LocationID: 5, SearchQuery: "seattle"}

	first, err := svc.Get(context.Background(), q)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if first[0].ImageURL != "https://image.tmdb.org/t/p/w500/afk.jpg" {
		t.Errorf("Unexpected image url %q", first[0].ImageURL)
	}
	writer.Wait()

	second, err := svc.Get(context.Background(), q)
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if provider.searchCalls.Load() != 1 {
		t.Errorf("Expected 1 search call, got %d", provider.searchCalls.Load())
	}
	if len(second) != 1 || second[0] != first[0] {
		t.Errorf("Cached %+v differs from fresh %+v", second, first)
	}
}

func TestMovieService_ConfigFailureDoesNotBlock(t *testing.T) {
	db, writer := setupTestDB(t)
	provider := &fakeMovies{
		configErr: errors.New("configuration down"),
		results:   []providers.MovieResult{{Title: "Frasier", PosterPath: "/f.jpg"}},
	}
	svc := NewMovieService(db, writer, provider, "w500")

	movies, err := svc.Get(context.Background(), SearchQuery{LocationID: 6, SearchQuery: "seattle"})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(movies) != 1 || movies[0].ImageURL != "/f.jpg" {
		t.Errorf("Expected relative poster path, got %+v", movies)
	}
}
