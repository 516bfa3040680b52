package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"holocron/config"
	logs "holocron/internal/infra/log"
	"holocron/internal/infra/persistence/migration"
	"holocron/internal/infra/persistence/store"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - upgrade:   Apply revisions up to a target (default head)
// - downgrade: Revert revisions down to a target (required, or base)
// - current:   Print the applied revision
// - history:   List every revision, oldest first

func main() {
	upgradeCmd := flag.NewFlagSet("upgrade", flag.ExitOnError)
	downgradeCmd := flag.NewFlagSet("downgrade", flag.ExitOnError)

	upgradeTarget := upgradeCmd.String("to", migration.Head, "Revision id to upgrade to, or head")
	downgradeTarget := downgradeCmd.String("to", "", "Revision id to downgrade to, or base")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := migrateFlags{
		Upgrade:   targetFlags{cmd: upgradeCmd, to: upgradeTarget},
		Downgrade: targetFlags{cmd: downgradeCmd, to: downgradeTarget},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type migrateFlags struct {
	Upgrade   targetFlags
	Downgrade targetFlags
}

type targetFlags struct {
	cmd *flag.FlagSet
	to  *string
}

func runSubcommand(ctx context.Context, flags *migrateFlags) error {
	switch os.Args[1] {
	case "upgrade":
		return handleUpgrade(ctx, flags)
	case "downgrade":
		return handleDowngrade(ctx, flags)
	case "current":
		return handleCurrent(ctx)
	case "history":
		return handleHistory(ctx)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleUpgrade(ctx context.Context, flags *migrateFlags) error {
	if err := flags.Upgrade.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse upgrade flags")
	}

	migrator, logger, err := openMigrator()
	if err != nil {
		return err
	}

	applied, err := migrator.Upgrade(ctx, *flags.Upgrade.to)
	if err != nil {
		return errors.Wrap(err, "upgrade failed")
	}
	logger.Info("Upgrade complete", slog.Any("applied", applied))

	return nil
}

func handleDowngrade(ctx context.Context, flags *migrateFlags) error {
	if err := flags.Downgrade.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse downgrade flags")
	}
	if *flags.Downgrade.to == "" {
		return errors.New("downgrade requires -to <revision> or -to base")
	}

	migrator, logger, err := openMigrator()
	if err != nil {
		return err
	}

	reverted, err := migrator.Downgrade(ctx, *flags.Downgrade.to)
	if err != nil {
		return errors.Wrap(err, "downgrade failed")
	}
	logger.Info("Downgrade complete", slog.Any("reverted", reverted))

	return nil
}

func handleCurrent(ctx context.Context) error {
	migrator, _, err := openMigrator()
	if err != nil {
		return err
	}

	current, err := migrator.Current(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read current revision")
	}
	if current == "" {
		current = migration.Base
	}
	fmt.Println(current)

	return nil
}

func handleHistory(ctx context.Context) error {
	migrator, _, err := openMigrator()
	if err != nil {
		return err
	}

	current, err := migrator.Current(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read current revision")
	}

	for _, rev := range migrator.History() {
		marker := " "
		if rev.ID == current {
			marker = "*"
		}
		down := rev.DownRevision
		if down == "" {
			down = migration.Base
		}
		fmt.Printf("%s %s -> %s  %s\n", marker, down, rev.ID, rev.Description)
	}

	return nil
}

func openMigrator() (*migration.Migrator, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := store.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	migrator, err := migration.New(db, logger)
	if err != nil {
		return nil, nil, err
	}

	return migrator, logger, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  upgrade    Apply revisions (-to <revision>|head, default head)")
	fmt.Println("  downgrade  Revert revisions (-to <revision>|base)")
	fmt.Println("  current    Print the applied revision")
	fmt.Println("  history    List revisions, marking the applied one")
}
