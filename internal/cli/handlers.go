package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/BartekS5/VCM/internal/config"
	"github.com/BartekS5/VCM/internal/migrate"
	"github.com/BartekS5/VCM/pkg/client"
	"github.com/BartekS5/VCM/pkg/logger"
)

func runCopy(opts *CopyOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	src := client.NewSource(httpClient, cfg.SourceURL, cfg.SourceToken)
	tgt := client.NewTarget(httpClient, cfg.TargetURL, cfg.TargetToken, opts.OverrideDomain)

	ctx := context.Background()

	// Session failures are fatal before anything is read or written.
	if err := src.Verify(ctx); err != nil {
		return fmt.Errorf("could not establish a session with the source system: %w", err)
	}
	if err := tgt.Verify(ctx); err != nil {
		return fmt.Errorf("could not establish a session with the target system: %w", err)
	}

	// One reader over stdin, shared by every prompt in the run.
	stdin := bufio.NewReader(os.Stdin)

	eraser := migrate.NewEraser(tgt, confirm(stdin, os.Stdout))
	if !opts.KeepExisting {
		// Confirmation comes before gateway reconciliation so that declining
		// leaves the target completely untouched.
		if err := eraser.Confirm(); err != nil {
			return err
		}
	}

	snap, err := migrate.TakeSnapshot(ctx, src)
	if err != nil {
		return err
	}

	reconciler := migrate.NewReconciler(tgt, newConsoleDecider(stdin, os.Stdout))
	mapping, err := reconciler.Reconcile(ctx, snap.GatewayAddresses)
	if err != nil {
		return err
	}

	if !opts.KeepExisting {
		if err := eraser.Erase(ctx); err != nil {
			return err
		}
	}

	logger.Infof("Copying configuration into %s", cfg.TargetURL)
	return migrate.NewPipeline(snap, tgt, mapping).Run(ctx)
}
