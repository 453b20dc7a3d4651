package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/phenrril/crmcell/internal/adapters/crmclient"
)

// Heartbeat appends an "alive" line, then best-effort checks the API's
// health field. An unreachable API is logged and swallowed; only a failed
// log write fails the job.
func Heartbeat(ctx context.Context, api *crmclient.Client, logFile string) error {
	ts := time.Now().Format("02/01/2006-15:04:05")
	if err := appendLine(logFile, ts+" CRM is alive"); err != nil {
		return err
	}

	status, err := api.Health(ctx)
	if err != nil {
		return appendLine(logFile, fmt.Sprintf("%s API check failed: %v", ts, err))
	}
	return appendLine(logFile, fmt.Sprintf("%s API health: %s", ts, status))
}
