// crmjobs runs one scheduled maintenance job per invocation; the host cron
// provides the periodicity. Overlapping runs of the same job are safe: every
// job only appends to its log and calls idempotent-safe API operations.
//
// Usage: crmjobs <heartbeat|low-stock|order-reminders|report>
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/phenrril/crmcell/internal/adapters/crmclient"
	"github.com/phenrril/crmcell/internal/jobs"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	api := crmclient.New(envOr("CRM_API_URL", "http://localhost:8080"))
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "heartbeat":
		err = jobs.Heartbeat(ctx, api, envOr("HEARTBEAT_LOG_FILE", "/tmp/crm_heartbeat_log.txt"))
	case "low-stock":
		err = jobs.LowStock(ctx, api, envOr("LOW_STOCK_LOG_FILE", "/tmp/low_stock_updates_log.txt"))
	case "order-reminders":
		err = jobs.OrderReminders(ctx, api, envOr("ORDER_REMINDERS_LOG_FILE", "/tmp/order_reminders_log.txt"))
	case "report":
		err = jobs.Report(ctx, api, envOr("REPORT_LOG_FILE", "/tmp/crm_report_log.txt"))
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		zlog.Error().Err(err).Str("job", os.Args[1]).Msg("job failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: crmjobs <heartbeat|low-stock|order-reminders|report>")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
