package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerscan/internal/clock"
)

// WaitForHeight polls source every interval until its latest height is at
// least target and returns that height.
func WaitForHeight(ctx context.Context, source HeightSource, target uint32, interval time.Duration, logger *zap.Logger) (uint32, error) {
	for {
		latest, err := source.LatestHeight(ctx)
		if err != nil {
			return 0, fmt.Errorf("latest height: %w", err)
		}
		if latest >= target {
			return latest, nil
		}

		logger.Debug("waiting for height",
			zap.Uint32("latest", latest),
			zap.Uint32("target", target),
			zap.Duration("interval", interval),
		)
		if err := clock.SleepWithContext(ctx, interval); err != nil {
			return 0, err
		}
	}
}
