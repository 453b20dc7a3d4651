package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/phenrril/crmcell/internal/adapters/crmclient"
)

// LowStock asks the API to restock products under the threshold and logs
// the outcome. A failed call fails the run.
func LowStock(ctx context.Context, api *crmclient.Client, logFile string) error {
	res, err := api.Restock(ctx)
	if err != nil {
		_ = appendLine(logFile, fmt.Sprintf("%s ERROR: %v", time.Now().Format("2006-01-02 15:04:05"), err))
		return err
	}

	ts := time.Now().Format("2006-01-02 15:04:05")
	if err := appendLine(logFile, fmt.Sprintf("%s %s", ts, res.Message)); err != nil {
		return err
	}
	for _, p := range res.Products {
		if err := appendLine(logFile, fmt.Sprintf("%s - %s: %d", ts, p.Name, p.Stock)); err != nil {
			return err
		}
	}
	return nil
}
