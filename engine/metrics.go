package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/lane-racer/event"
)

const instrumentationName = "github.com/lixenwraith/lane-racer/engine"

// driverMetrics counts frames and obstacle lifecycle
// No-op with the default global provider unless the embedding program installs one
type driverMetrics struct {
	ticks    metric.Int64Counter
	spawned  metric.Int64Counter
	removed  metric.Int64Counter
	sessions metric.Int64Counter
	score    metric.Int64Histogram
}

func newDriverMetrics(mp metric.MeterProvider) (*driverMetrics, error) {
	m := mp.Meter(instrumentationName)
	dm := &driverMetrics{}

	var err error
	dm.ticks, err = m.Int64Counter(
		"lane_racer.ticks",
		metric.WithDescription("Frames advanced while running"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	dm.spawned, err = m.Int64Counter(
		"lane_racer.obstacles.spawned",
		metric.WithDescription("Obstacles added to the road"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	dm.removed, err = m.Int64Counter(
		"lane_racer.obstacles.removed",
		metric.WithDescription("Obstacles culled or cleared"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating removed counter: %w", err)
	}

	dm.sessions, err = m.Int64Counter(
		"lane_racer.sessions.over",
		metric.WithDescription("Sessions ended by collision"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	dm.score, err = m.Int64Histogram(
		"lane_racer.session.score",
		metric.WithDescription("Final score of ended sessions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score histogram: %w", err)
	}

	return dm, nil
}

func (dm *driverMetrics) recordTick(ctx context.Context) {
	dm.ticks.Add(ctx, 1)
}

func (dm *driverMetrics) recordEvents(ctx context.Context, events []event.GameEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventObstacleSpawned:
			dm.spawned.Add(ctx, 1)
		case event.EventObstacleRemoved:
			dm.removed.Add(ctx, 1)
		case event.EventGameOver:
			dm.sessions.Add(ctx, 1)
			dm.score.Record(ctx, ev.Score)
		}
	}
}
