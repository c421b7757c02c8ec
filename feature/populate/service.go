package populate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"holiday-manager/core/graph"
	"holiday-manager/core/holiday"
	"holiday-manager/core/reconcile"

	"go.uber.org/zap"
)

// Directory looks up calendar owners and their mailbox settings.
type Directory interface {
	GetUser(ctx context.Context, principal string) (*graph.User, error)
	ListUsers(ctx context.Context) ([]graph.User, error)
	MailboxTimeZone(ctx context.Context, userID string) (string, error)
}

// Calendar reads a subject's holiday events and executes planned mutations.
type Calendar interface {
	reconcile.Store
	ListEvents(ctx context.Context, subjectID string, categories []string) ([]reconcile.Event, error)
}

// Tracker records which packs were applied to which subject.
type Tracker interface {
	Record(ctx context.Context, subjectID string, packIDs []string) error
}

// Options narrows a population run and controls execution.
type Options struct {
	// Category restricts the run to holidays of one pack category.
	Category string
	// Location restricts the run to holidays observed in locations
	// containing this substring (case-insensitive).
	Location string
	// DryRun plans without executing any calendar mutation.
	DryRun bool
}

// Report is the outcome of reconciling one subject.
type Report struct {
	Subject   string          `json:"subject"`
	SubjectID string          `json:"subject_id,omitempty"`
	TimeZone  string          `json:"time_zone,omitempty"`
	Skipped   bool            `json:"skipped,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Applied   int             `json:"applied"`
	DryRun    bool            `json:"dry_run,omitempty"`
	Plan      *reconcile.Plan `json:"plan,omitempty"`
}

// Failure pairs a subject with the error that stopped its run.
type Failure struct {
	Subject string `json:"subject"`
	Error   string `json:"error"`
}

// BatchReport is the outcome of a full population run.
type BatchReport struct {
	Subjects int       `json:"subjects"`
	Reports  []Report  `json:"reports"`
	Failures []Failure `json:"failures,omitempty"`
}

// Service orchestrates holiday population runs. It holds no per-run state;
// every call loads packs and subject data fresh.
type Service struct {
	source    holiday.Lister
	directory Directory
	calendar  Calendar
	tracker   Tracker
	logger    *zap.Logger
	workers   int
}

// NewService creates a new populate service. tracker may be nil when no
// tracking database is configured.
func NewService(source holiday.Lister, directory Directory, calendar Calendar, tracker Tracker, logger *zap.Logger, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		source:    source,
		directory: directory,
		calendar:  calendar,
		tracker:   tracker,
		logger:    logger,
		workers:   workers,
	}
}

// PopulateSubject reconciles one subject's calendar against the canonical
// holiday set.
func (s *Service) PopulateSubject(ctx context.Context, principal string, opts Options) (*Report, error) {
	packs, holidays, err := s.loadHolidays(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.directory.GetUser(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("look up subject %s: %w", principal, err)
	}

	return s.populateUser(ctx, *user, packs, holidays, opts)
}

// PopulateAll reconciles every enabled subject in the directory. Subjects
// are processed by a bounded worker pool; a failing subject is recorded in
// the batch report and does not stop the others.
func (s *Service) PopulateAll(ctx context.Context, opts Options) (*BatchReport, error) {
	packs, holidays, err := s.loadHolidays(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	batch := &BatchReport{Subjects: len(users)}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, s.workers)
	)

	for _, user := range users {
		wg.Add(1)
		sem <- struct{}{}

		go func(user graph.User) {
			defer wg.Done()
			defer func() { <-sem }()

			report, err := s.populateUser(ctx, user, packs, holidays, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				batch.Failures = append(batch.Failures, Failure{
					Subject: user.UserPrincipalName,
					Error:   err.Error(),
				})
				return
			}
			batch.Reports = append(batch.Reports, *report)
		}(user)
	}

	wg.Wait()
	return batch, nil
}

// Clear removes every holiday event the packs are responsible for from one
// subject's calendar. Returns the number of events deleted.
func (s *Service) Clear(ctx context.Context, principal string) (int, error) {
	packs, err := s.source.ListPacks(ctx)
	if err != nil {
		return 0, fmt.Errorf("load holiday packs: %w", err)
	}
	categories := holiday.Categories(packs)

	user, err := s.directory.GetUser(ctx, principal)
	if err != nil {
		return 0, fmt.Errorf("look up subject %s: %w", principal, err)
	}

	events, err := s.calendar.ListEvents(ctx, user.ID, categories)
	if err != nil {
		return 0, fmt.Errorf("list events for %s: %w", principal, err)
	}

	deleted := 0
	for _, event := range events {
		if err := s.calendar.DeleteEvent(ctx, user.ID, event.ID); err != nil {
			return deleted, fmt.Errorf("delete event %s: %w", event.ID, err)
		}
		deleted++
	}

	s.logger.Info("Cleared holiday events",
		zap.String("subject", principal),
		zap.Int("deleted", deleted),
	)
	return deleted, nil
}

// loadHolidays reads the pack bucket once and merges it into the canonical
// holiday list.
func (s *Service) loadHolidays(ctx context.Context) ([]holiday.Pack, []holiday.Holiday, error) {
	packs, err := s.source.ListPacks(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load holiday packs: %w", err)
	}

	holidays, err := holiday.Combine(packs)
	if err != nil {
		return nil, nil, fmt.Errorf("combine holiday packs: %w", err)
	}

	return packs, holidays, nil
}

// populateUser runs the eligibility check, plans, applies, and tracks for a
// single subject.
func (s *Service) populateUser(ctx context.Context, user graph.User, packs []holiday.Pack, holidays []holiday.Holiday, opts Options) (*Report, error) {
	report := &Report{
		Subject:   user.UserPrincipalName,
		SubjectID: user.ID,
		DryRun:    opts.DryRun,
	}

	if reason, ok := eligible(user); !ok {
		report.Skipped = true
		report.Reason = reason
		s.logger.Info("Skipping ineligible subject",
			zap.String("subject", user.UserPrincipalName),
			zap.String("reason", reason),
		)
		return report, nil
	}

	timeZone, err := s.directory.MailboxTimeZone(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("mailbox time zone for %s: %w", user.UserPrincipalName, err)
	}
	report.TimeZone = timeZone

	events, err := s.calendar.ListEvents(ctx, user.ID, holiday.Categories(packs))
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", user.UserPrincipalName, err)
	}

	plan := reconcile.BuildPlan(filterHolidays(holidays, opts), events, user.Attributes(), timeZone)
	report.Plan = plan

	applied, err := reconcile.Apply(ctx, s.calendar, user.ID, plan, reconcile.Options{DryRun: opts.DryRun})
	report.Applied = applied
	if err != nil {
		return nil, fmt.Errorf("apply plan for %s: %w", user.UserPrincipalName, err)
	}

	if s.tracker != nil && !opts.DryRun {
		if err := s.tracker.Record(ctx, user.ID, packIDs(packs)); err != nil {
			// Tracking is bookkeeping; a failed write must not fail the run.
			s.logger.Warn("Failed to record pack applications",
				zap.String("subject", user.UserPrincipalName),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Populated subject",
		zap.String("subject", user.UserPrincipalName),
		zap.Int("creates", plan.Summary.Creates),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("deletes", plan.Summary.Deletes),
		zap.Int("unchanged", plan.Summary.Unchanged),
		zap.Bool("dry_run", opts.DryRun),
	)
	return report, nil
}

// eligible reports whether a subject's calendar may be populated: the
// subject needs a primary mailbox and an office location.
func eligible(user graph.User) (string, bool) {
	if !user.HasPrimaryMailbox() {
		return "no primary mailbox", false
	}
	if user.OfficeLocation == "" {
		return "no office location", false
	}
	return "", true
}

// filterHolidays applies the category and location narrowing options.
func filterHolidays(holidays []holiday.Holiday, opts Options) []holiday.Holiday {
	if opts.Category == "" && opts.Location == "" {
		return holidays
	}

	filtered := make([]holiday.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if opts.Category != "" && h.Category != opts.Category {
			continue
		}
		if opts.Location != "" && !observedNear(h, opts.Location) {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered
}

// observedNear reports whether any of the holiday's locations contains the
// given fragment, case-insensitively.
func observedNear(h holiday.Holiday, fragment string) bool {
	fragment = strings.ToLower(fragment)
	for _, loc := range h.Locations {
		if strings.Contains(strings.ToLower(loc), fragment) {
			return true
		}
	}
	return false
}

// packIDs collects the identifiers of the packs that fed a run.
func packIDs(packs []holiday.Pack) []string {
	ids := make([]string, 0, len(packs))
	for _, p := range packs {
		if p.ID != "" {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
