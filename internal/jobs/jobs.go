// Package jobs holds the bodies of the scheduled maintenance jobs. Each run
// is independent: state lives in the store and the append-only log files,
// never in the process. Overlapping runs of the same job are harmless and
// are not serialized.
package jobs

import (
	"fmt"
	"os"
)

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintln(f, line)
	return err
}
