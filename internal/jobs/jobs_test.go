package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/crmcell/internal/adapters/crmclient"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestHeartbeat(t *testing.T) {
	t.Run("logs alive plus the health check", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		logFile := filepath.Join(t.TempDir(), "heartbeat.txt")
		err := Heartbeat(context.Background(), crmclient.New(srv.URL), logFile)
		require.NoError(t, err)

		out := readLog(t, logFile)
		assert.Contains(t, out, "CRM is alive")
		assert.Contains(t, out, "API health: ok")
	})

	t.Run("an unreachable API never fails the heartbeat", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		logFile := filepath.Join(t.TempDir(), "heartbeat.txt")
		err := Heartbeat(context.Background(), crmclient.New(srv.URL), logFile)
		require.NoError(t, err)

		out := readLog(t, logFile)
		assert.Contains(t, out, "CRM is alive")
		assert.Contains(t, out, "API check failed")
	})
}

func TestLowStock(t *testing.T) {
	t.Run("logs the restock response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/restock", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"message":"2 low-stock products restocked.","products":[{"name":"Laptop","stock":13},{"name":"Mouse","stock":11}]}`))
		}))
		defer srv.Close()

		logFile := filepath.Join(t.TempDir(), "lowstock.txt")
		err := LowStock(context.Background(), crmclient.New(srv.URL), logFile)
		require.NoError(t, err)

		out := readLog(t, logFile)
		assert.Contains(t, out, "2 low-stock products restocked.")
		assert.Contains(t, out, "Laptop: 13")
		assert.Contains(t, out, "Mouse: 11")
	})

	t.Run("a failed call fails the run and leaves an error line", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		logFile := filepath.Join(t.TempDir(), "lowstock.txt")
		err := LowStock(context.Background(), crmclient.New(srv.URL), logFile)
		require.Error(t, err)
		assert.Contains(t, readLog(t, logFile), "ERROR")
	})
}

func TestOrderReminders(t *testing.T) {
	t.Run("cutoff is the start of the day seven calendar days back", func(t *testing.T) {
		var gotSince time.Time
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders", r.URL.Path)
			since, err := time.Parse(time.RFC3339, r.URL.Query().Get("since"))
			require.NoError(t, err)
			gotSince = since

			// The server keeps orders with order_date >= since. One order
			// sits two hours into the cutoff day, the other on the day
			// before.
			fixtures := []struct {
				id    string
				email string
				date  time.Time
			}{
				{"o-on-cutoff-day", "alice@example.com", since.Add(2 * time.Hour)},
				{"o-day-before", "bob@example.com", since.Add(-22 * time.Hour)},
			}
			kept := []map[string]any{}
			for _, f := range fixtures {
				if !f.date.Before(since) {
					kept = append(kept, map[string]any{
						"id":       f.id,
						"customer": map[string]string{"email": f.email},
					})
				}
			}
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(kept))
		}))
		defer srv.Close()

		logFile := filepath.Join(t.TempDir(), "reminders.txt")
		err := OrderReminders(context.Background(), crmclient.New(srv.URL), logFile)
		require.NoError(t, err)

		weekAgo := time.Now().AddDate(0, 0, -7)
		wantCutoff := time.Date(weekAgo.Year(), weekAgo.Month(), weekAgo.Day(), 0, 0, 0, 0, weekAgo.Location())
		assert.True(t, gotSince.Equal(wantCutoff), "cutoff %s, want midnight %s", gotSince, wantCutoff)

		out := readLog(t, logFile)
		assert.Contains(t, out, "Order o-on-cutoff-day, Customer alice@example.com")
		assert.NotContains(t, out, "o-day-before")
	})

	t.Run("a failed query aborts the run", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		logFile := filepath.Join(t.TempDir(), "reminders.txt")
		err := OrderReminders(context.Background(), crmclient.New(srv.URL), logFile)
		require.Error(t, err)
		_, statErr := os.Stat(logFile)
		assert.True(t, os.IsNotExist(statErr), "no partial log on failure")
	})
}

func TestReport(t *testing.T) {
	t.Run("logs the summary line", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/report", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"customers":3,"orders":2,"revenue":"1499.98"}`))
		}))
		defer srv.Close()

		logFile := filepath.Join(t.TempDir(), "report.txt")
		err := Report(context.Background(), crmclient.New(srv.URL), logFile)
		require.NoError(t, err)

		assert.Contains(t, readLog(t, logFile), "Report: 3 customers, 2 orders, 1499.98 revenue")
	})

	t.Run("an API failure becomes an ERROR line, not a crash", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		logFile := filepath.Join(t.TempDir(), "report.txt")
		err := Report(context.Background(), crmclient.New(srv.URL), logFile)
		require.NoError(t, err)
		assert.Contains(t, readLog(t, logFile), "ERROR")
	})
}
