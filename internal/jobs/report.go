package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/phenrril/crmcell/internal/adapters/crmclient"
)

// Report appends a one-line summary of customers, orders and revenue. An
// API failure is logged as an ERROR line; only a failed log write fails the
// job.
func Report(ctx context.Context, api *crmclient.Client, logFile string) error {
	ts := time.Now().Format("2006-01-02 15:04:05")

	rep, err := api.Report(ctx)
	if err != nil {
		return appendLine(logFile, fmt.Sprintf("%s - ERROR: %v", ts, err))
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		ts, rep.Customers, rep.Orders, rep.Revenue)
	return appendLine(logFile, line)
}
