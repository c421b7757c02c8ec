package populate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"holiday-manager/core/graph"
	"holiday-manager/core/holiday"
	"holiday-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(s string) holiday.Date {
	d, err := holiday.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeSource serves a fixed pack list or a fixed error.
type fakeSource struct {
	packs []holiday.Pack
	err   error
}

func (f *fakeSource) ListPacks(context.Context) ([]holiday.Pack, error) {
	return f.packs, f.err
}

// fakeDirectory serves users keyed by principal name.
type fakeDirectory struct {
	users     map[string]graph.User
	timeZones map[string]string
}

func (f *fakeDirectory) GetUser(_ context.Context, principal string) (*graph.User, error) {
	u, ok := f.users[principal]
	if !ok {
		return nil, graph.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeDirectory) ListUsers(context.Context) ([]graph.User, error) {
	users := make([]graph.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeDirectory) MailboxTimeZone(_ context.Context, userID string) (string, error) {
	if tz, ok := f.timeZones[userID]; ok {
		return tz, nil
	}
	return "UTC", nil
}

// fakeCalendar holds per-user event snapshots and records mutations.
type fakeCalendar struct {
	mu      sync.Mutex
	events  map[string][]reconcile.Event
	failFor string
	created []reconcile.Event
	patched []string
	deleted []string
	listed  [][]string
}

func (f *fakeCalendar) ListEvents(_ context.Context, userID string, categories []string) ([]reconcile.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if userID == f.failFor && f.failFor != "" {
		return nil, errors.New("calendar offline")
	}
	f.listed = append(f.listed, categories)
	return f.events[userID], nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, userID string, event reconcile.Event) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, event)
	return fmt.Sprintf("ev-%d", len(f.created)), nil
}

func (f *fakeCalendar) PatchEvent(_ context.Context, _ string, eventID string, _ reconcile.Patch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patched = append(f.patched, eventID)
	return nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, _ string, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, eventID)
	return nil
}

// fakeTracker records Record calls.
type fakeTracker struct {
	mu      sync.Mutex
	records map[string][]string
	err     error
}

func (f *fakeTracker) Record(_ context.Context, subjectID string, packIDs []string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.records == nil {
		f.records = map[string][]string{}
	}
	f.records[subjectID] = append(f.records[subjectID], packIDs...)
	return nil
}

func eligibleUser(id, principal string) graph.User {
	return graph.User{
		ID:                id,
		UserPrincipalName: principal,
		ProxyAddresses:    []string{"smtp:alias@example.com", "SMTP:" + principal},
		OfficeLocation:    "LON",
		City:              "London",
	}
}

func testPacks() []holiday.Pack {
	return []holiday.Pack{
		{
			ID:       "pack-global",
			Category: "Public Holidays",
			Holidays: []holiday.Holiday{
				{Name: "New Year", Date: date("2025-01-01"), OutOfOffice: true},
			},
		},
		{
			ID:       "pack-uk",
			Category: "Regional Holidays",
			Holidays: []holiday.Holiday{
				{Name: "Spring Bank Holiday", Date: date("2025-05-26"), Locations: []string{"London"}, OutOfOffice: true},
			},
		},
	}
}

func newTestService(source holiday.Lister, dir Directory, cal Calendar, tracker Tracker) *Service {
	return NewService(source, dir, cal, tracker, zap.NewNop(), 2)
}

func TestPopulateSubject_CreatesEvents(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
	}}
	cal := &fakeCalendar{}
	tracker := &fakeTracker{}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, tracker)

	report, err := svc.PopulateSubject(context.Background(), "jane@example.com", Options{})
	require.NoError(t, err)

	assert.False(t, report.Skipped)
	assert.Equal(t, "u-1", report.SubjectID)
	assert.Equal(t, 2, report.Applied)
	assert.Len(t, cal.created, 2)

	// The calendar snapshot request carries the pack categories.
	require.Len(t, cal.listed, 1)
	assert.Equal(t, []string{"Public Holidays", "Regional Holidays"}, cal.listed[0])

	// Both packs are recorded as applied.
	assert.ElementsMatch(t, []string{"pack-global", "pack-uk"}, tracker.records["u-1"])
}

func TestPopulateSubject_OutOfOfficeForMatchingCity(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
	}}
	cal := &fakeCalendar{}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, nil)

	_, err := svc.PopulateSubject(context.Background(), "jane@example.com", Options{})
	require.NoError(t, err)

	byName := map[string]reconcile.Event{}
	for _, ev := range cal.created {
		byName[ev.Subject] = ev
	}
	assert.Equal(t, reconcile.ShowAsFree, byName["New Year"].ShowAs)
	assert.Equal(t, reconcile.ShowAsOutOfOffice, byName["Spring Bank Holiday"].ShowAs)
}

func TestPopulateSubject_SkipsIneligible(t *testing.T) {
	noMailbox := eligibleUser("u-1", "bot@example.com")
	noMailbox.ProxyAddresses = nil
	noOffice := eligibleUser("u-2", "remote@example.com")
	noOffice.OfficeLocation = ""

	dir := &fakeDirectory{users: map[string]graph.User{
		"bot@example.com":    noMailbox,
		"remote@example.com": noOffice,
	}}
	cal := &fakeCalendar{}
	tracker := &fakeTracker{}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, tracker)

	for principal, reason := range map[string]string{
		"bot@example.com":    "no primary mailbox",
		"remote@example.com": "no office location",
	} {
		report, err := svc.PopulateSubject(context.Background(), principal, Options{})
		require.NoError(t, err)
		assert.True(t, report.Skipped)
		assert.Equal(t, reason, report.Reason)
	}

	// Skipped subjects never reach the calendar or the tracker.
	assert.Empty(t, cal.listed)
	assert.Empty(t, cal.created)
	assert.Empty(t, tracker.records)
}

func TestPopulateSubject_DryRun(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
	}}
	cal := &fakeCalendar{}
	tracker := &fakeTracker{}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, tracker)

	report, err := svc.PopulateSubject(context.Background(), "jane@example.com", Options{DryRun: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 0, report.Applied)
	assert.Equal(t, 2, report.Plan.Summary.Creates)
	assert.Empty(t, cal.created)
	assert.Empty(t, tracker.records)
}

func TestPopulateSubject_CategoryFilter(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
	}}
	cal := &fakeCalendar{}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, nil)

	report, err := svc.PopulateSubject(context.Background(), "jane@example.com", Options{Category: "Public Holidays"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Applied)
	require.Len(t, cal.created, 1)
	assert.Equal(t, "New Year", cal.created[0].Subject)
}

func TestPopulateSubject_LocationFilter(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
	}}
	cal := &fakeCalendar{}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, nil)

	report, err := svc.PopulateSubject(context.Background(), "jane@example.com", Options{Location: "lond"})
	require.NoError(t, err)

	require.Len(t, cal.created, 1)
	assert.Equal(t, "Spring Bank Holiday", cal.created[0].Subject)
	assert.Equal(t, 1, report.Plan.Summary.Holidays)
}

func TestPopulateSubject_SourceUnavailable(t *testing.T) {
	svc := newTestService(
		&fakeSource{err: fmt.Errorf("bucket missing: %w", holiday.ErrSourceUnavailable)},
		&fakeDirectory{}, &fakeCalendar{}, nil,
	)

	_, err := svc.PopulateSubject(context.Background(), "jane@example.com", Options{})
	assert.ErrorIs(t, err, holiday.ErrSourceUnavailable)
}

func TestPopulateSubject_UnknownUser(t *testing.T) {
	svc := newTestService(&fakeSource{packs: testPacks()}, &fakeDirectory{}, &fakeCalendar{}, nil)

	_, err := svc.PopulateSubject(context.Background(), "nobody@example.com", Options{})
	assert.ErrorIs(t, err, graph.ErrUserNotFound)
}

func TestPopulateSubject_TrackingFailureIsNotFatal(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
	}}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, &fakeCalendar{},
		&fakeTracker{err: errors.New("db down")})

	report, err := svc.PopulateSubject(context.Background(), "jane@example.com", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Applied)
}

func TestPopulateAll_IsolatesFailures(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
		"john@example.com": eligibleUser("u-2", "john@example.com"),
		"mary@example.com": eligibleUser("u-3", "mary@example.com"),
	}}
	cal := &fakeCalendar{failFor: "u-2"}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, nil)

	batch, err := svc.PopulateAll(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, batch.Subjects)
	assert.Len(t, batch.Reports, 2)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, "john@example.com", batch.Failures[0].Subject)
	assert.Contains(t, batch.Failures[0].Error, "calendar offline")
}

func TestClear_DeletesAllManagedEvents(t *testing.T) {
	dir := &fakeDirectory{users: map[string]graph.User{
		"jane@example.com": eligibleUser("u-1", "jane@example.com"),
	}}
	cal := &fakeCalendar{events: map[string][]reconcile.Event{
		"u-1": {
			{ID: "ev-1", Subject: "New Year"},
			{ID: "ev-2", Subject: "Spring Bank Holiday"},
		},
	}}
	svc := newTestService(&fakeSource{packs: testPacks()}, dir, cal, nil)

	deleted, err := svc.Clear(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, []string{"ev-1", "ev-2"}, cal.deleted)
}
