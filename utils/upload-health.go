package utils

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// CheckUploadDir verifies the directory exists and accepts new files.
func CheckUploadDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	probe, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return fmt.Errorf("upload dir not writable: %w", err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// UploadDirHealthPollingLoop checks the upload directory every interval until ctx ends.
func UploadDirHealthPollingLoop(ctx context.Context, logger *slog.Logger, dir string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := CheckUploadDir(dir); err != nil {
				// try to recreate the directory once before reporting
				if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil || CheckUploadDir(dir) != nil {
					logger.Error("Upload directory unhealthy", "dir", dir, "error", err)
					continue
				}
				logger.Warn("Upload directory recreated", "dir", dir)
				continue
			}
			logger.Debug("Upload directory is healthy.", "dir", dir)
		}
	}
}
