package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"holiday-manager/core/config"
	"holiday-manager/core/database"
	"holiday-manager/core/graph"
	"holiday-manager/core/holiday"
	"holiday-manager/core/logger"
	"holiday-manager/core/storage"
	"holiday-manager/core/tracking"
	"holiday-manager/feature/populate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the populate command
	populateAll      bool
	populateCategory string
	populateLocation string
	populateDryRun   bool
)

// populateCmd reconciles calendars from the command line.
var populateCmd = &cobra.Command{
	Use:   "populate [subject]",
	Short: "Populate subject calendars from the holiday packs",
	Long: `Populate reconciles calendars against the canonical holiday set.

Examples:
  # Reconcile one subject
  populate jane@example.com

  # Preview the changes without executing them
  populate jane@example.com --dry-run

  # Reconcile every enabled subject
  populate --all

  # Only the public holidays observed near London
  populate --all --category "Public Holidays" --location London`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPopulate,
}

func init() {
	populateCmd.Flags().BoolVar(&populateAll, "all", false, "Reconcile every enabled subject in the directory")
	populateCmd.Flags().StringVar(&populateCategory, "category", "", "Restrict to one pack category")
	populateCmd.Flags().StringVar(&populateLocation, "location", "", "Restrict to holidays observed near this location")
	populateCmd.Flags().BoolVar(&populateDryRun, "dry-run", false, "Plan without executing any calendar mutation")

	RootCmd.AddCommand(populateCmd)
}

func runPopulate(cmd *cobra.Command, args []string) error {
	if !populateAll && len(args) == 0 {
		return fmt.Errorf("either a subject or --all is required")
	}
	if populateAll && len(args) > 0 {
		return fmt.Errorf("--all and a subject are mutually exclusive")
	}

	ctx := context.Background()

	svc, l, err := newPopulateService(ctx)
	if err != nil {
		return err
	}
	defer l.Sync()

	opts := populate.Options{
		Category: populateCategory,
		Location: populateLocation,
		DryRun:   populateDryRun,
	}

	var result any
	if populateAll {
		result, err = svc.PopulateAll(ctx, opts)
	} else {
		result, err = svc.PopulateSubject(ctx, args[0], opts)
	}
	if err != nil {
		return err
	}

	return printJSON(result)
}

// newPopulateService wires the populate service from configuration, the way
// the HTTP server does, minus the web stack.
func newPopulateService(ctx context.Context) (*populate.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	source := holiday.NewCachedSource(
		holiday.NewSource(store, cfg.Storage.Bucket),
		time.Duration(cfg.Storage.CacheTTLSeconds)*time.Second,
	)

	var tracker populate.Tracker
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional tracking database connection failed", zap.Error(err))
	} else if ts, err := tracking.NewStore(db); err != nil {
		l.Warn("Tracking schema migration failed", zap.Error(err))
	} else {
		tracker = ts
	}

	graphClient := graph.NewClient(ctx, cfg.Graph)

	svc := populate.NewService(source, graphClient, graphClient, tracker, l, cfg.Server.WorkerCount())
	return svc, l, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
