// Package app ties the config manager to the query pipeline for
// long-lived processes: edits to config.json rebuild the pipeline in
// place instead of requiring a restart.
package app

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/ivolee/stockdash/config"
	"github.com/ivolee/stockdash/internal/agents"
)

// Pipeline bundles the components a command needs to answer queries.
type Pipeline struct {
	Orchestrator *agents.Orchestrator
	Fetcher      agents.Fetcher
}

// PipelineBuilder constructs a pipeline from one config snapshot.
type PipelineBuilder func(ctx context.Context, cfg config.Config) (*Pipeline, error)

// Runtime owns the config manager and the current pipeline. The pipeline
// pointer swaps atomically on reload so in-flight requests keep the
// components they started with.
type Runtime struct {
	cfgMgr   *config.Manager
	pipeline atomic.Pointer[Pipeline]
	builder  PipelineBuilder
	cancel   context.CancelFunc
}

// NewRuntime builds the initial pipeline and starts watching the config
// file. A failed reload keeps the previous pipeline running.
func NewRuntime(ctx context.Context, cfgMgr *config.Manager, builder PipelineBuilder) (*Runtime, error) {
	if cfgMgr == nil {
		return nil, fmt.Errorf("config manager is required")
	}
	if builder == nil {
		return nil, fmt.Errorf("pipeline builder is required")
	}

	rt := &Runtime{
		cfgMgr:  cfgMgr,
		builder: builder,
	}

	if err := rt.reload(ctx, cfgMgr.Get()); err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	rt.cancel = cancel
	if err := cfgMgr.Watch(watchCtx, func(cfg config.Config) {
		if err := rt.reload(watchCtx, cfg); err != nil {
			log.Printf("[Runtime] pipeline reload failed: %v", err)
		}
	}); err != nil {
		cancel()
		return nil, err
	}

	return rt, nil
}

// Orchestrator returns the current pipeline's orchestrator.
func (r *Runtime) Orchestrator() *agents.Orchestrator {
	return r.pipeline.Load().Orchestrator
}

// Fetcher returns the current pipeline's metrics fetcher.
func (r *Runtime) Fetcher() agents.Fetcher {
	return r.pipeline.Load().Fetcher
}

// Config returns the current config snapshot.
func (r *Runtime) Config() config.Config {
	return r.cfgMgr.Get()
}

// UpdateConfigJSON applies a JSON config update through the manager,
// which persists it and triggers a pipeline reload.
func (r *Runtime) UpdateConfigJSON(jsonStr string) error {
	return r.cfgMgr.UpdateFromJSON(jsonStr)
}

// Close stops the config watch.
func (r *Runtime) Close() {
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *Runtime) reload(ctx context.Context, cfg config.Config) error {
	pipeline, err := r.builder(ctx, cfg)
	if err != nil {
		return err
	}
	r.pipeline.Store(pipeline)
	return nil
}
