package core

import (
	"aster/config"
	"aster/internal/keyprint"
	"aster/internal/metrics"
	"aster/util"
	"aster/vigenere"
)

// Build validates cfg and constructs the line mode for it.  stats may
// be nil.
func Build(cfg config.Config, logger *util.Logger, stats *metrics.Collector) (Mode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dir := cfg.Direction()
	logger.Verbose("%s mode, key fingerprint %s (%d characters)",
		dir, keyprint.Fingerprint(cfg.Key), len([]rune(cfg.Key)))

	return &LineMode{
		Cipher:  vigenere.New(cfg.Key, dir),
		Logger:  logger,
		Metrics: stats,
	}, nil
}
