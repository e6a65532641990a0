package cmd

import (
	"fmt"

	"indexer-sync/core/config"
	"indexer-sync/core/rules"
	"indexer-sync/feature/apps"
	"indexer-sync/feature/prowlarr"
	"indexer-sync/feature/syncer"

	"go.uber.org/zap"
)

// newSyncService wires the sync service from configuration: the Prowlarr
// source client, one target per configured consumer, and the parsed rule set.
func newSyncService(cfg *config.Config, log *zap.Logger) (*syncer.Service, error) {
	if !cfg.Prowlarr.IsConfigured() {
		return nil, fmt.Errorf("prowlarr url and api key must be configured")
	}

	rs, err := rules.ParseList(cfg.Sync.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sync rules: %w", err)
	}

	source := prowlarr.NewClient(cfg.Prowlarr, log)

	var targets []syncer.Target
	addTarget := func(app apps.App) {
		targets = append(targets, syncer.Target{
			App:    app,
			Client: apps.NewClient(app, log),
		})
	}

	if cfg.Sonarr.IsConfigured() {
		addTarget(apps.NewSonarr(cfg.Sonarr, cfg.Prowlarr))
	}
	if cfg.Radarr.IsConfigured() {
		addTarget(apps.NewRadarr(cfg.Radarr, cfg.Prowlarr))
	}
	if cfg.Lidarr.IsConfigured() {
		addTarget(apps.NewLidarr(cfg.Lidarr, cfg.Prowlarr))
	}
	if cfg.Readarr.IsConfigured() {
		addTarget(apps.NewReadarr(cfg.Readarr, cfg.Prowlarr))
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no consumer application is configured")
	}

	for _, t := range targets {
		log.Info("consumer configured", zap.String("app", t.App.Name()))
	}

	return syncer.NewService(source, targets, rs, log), nil
}
