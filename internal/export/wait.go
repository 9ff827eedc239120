// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrBufferTimeout reports that a companion buffer file never appeared. The
// exporter writes buffers asynchronously after the document, so the pipeline
// polls for them; past the deadline the whole run is abandoned with no
// output written.
var ErrBufferTimeout = errors.New("companion buffer file not found within timeout")

// WaitForBuffers polls until every path exists or timeout elapses. The first
// check happens immediately, so already-present files never wait.
func WaitForBuffers(paths []string, timeout, interval time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		missing := ""
		for _, p := range paths {
			if _, err := os.Stat(p); err != nil {
				missing = p
				break
			}
		}
		if missing == "" {
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%w: %s", ErrBufferTimeout, missing)
		}
		time.Sleep(interval)
	}
}
