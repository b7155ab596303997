package cmd

import (
	"fmt"

	"github.com/hrleave/leavectl/internal/config"
	"github.com/hrleave/leavectl/internal/leave"
	"github.com/hrleave/leavectl/internal/log"
	"github.com/hrleave/leavectl/internal/store"
)

// runSeed writes the fixture data set to the configured data file,
// overwriting whatever is there.
func runSeed(cfg *config.Config, logger log.Logger) error {
	if cfg.DataFile == "" {
		return fmt.Errorf("no data file configured (set data_file or LEAVECTL_DATA_FILE)")
	}

	fileStore := store.NewFile(cfg.DataFile, logger.With("component", "store"))
	snap := leave.SeedData()
	if err := fileStore.Save(snap); err != nil {
		return fmt.Errorf("writing seed data: %w", err)
	}

	fmt.Printf("Wrote %d employees and %d leave requests to %s\n",
		len(snap.Employees), len(snap.LeaveRequests), cfg.DataFile)
	return nil
}
