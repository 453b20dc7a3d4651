package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/phenrril/crmcell/internal/adapters/crmclient"
)

// OrderReminders logs one reminder line per order placed in the last seven
// days. The cutoff is the start of the calendar day seven days back, so an
// order from any time on that day is still reminded.
func OrderReminders(ctx context.Context, api *crmclient.Client, logFile string) error {
	weekAgo := time.Now().AddDate(0, 0, -7)
	cutoff := time.Date(weekAgo.Year(), weekAgo.Month(), weekAgo.Day(), 0, 0, 0, 0, weekAgo.Location())
	orders, err := api.OrdersSince(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, o := range orders {
		line := fmt.Sprintf("%s - Order %s, Customer %s", time.Now().Format(time.RFC3339), o.ID, o.Customer.Email)
		if err := appendLine(logFile, line); err != nil {
			return err
		}
	}

	fmt.Println("Order reminders processed!")
	return nil
}
