package main

import "sync"

type Config struct {
	AiSearchDepth       int  `json:"ai_search_depth"`
	AiSearchEmptyLimit  int  `json:"ai_search_empty_limit"`
	AiStrategicMinLines int  `json:"ai_strategic_min_lines"`
	AiEnableForkChecks  bool `json:"ai_enable_fork_checks"`
	AiMoveDelayMs       int  `json:"ai_move_delay_ms"`
	AiSeed              int64 `json:"ai_seed"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		// Search runs only once the board has thinned out; 4 plies
		// over 16 empties keeps a move under a millisecond.
		AiSearchDepth:      4,
		AiSearchEmptyLimit: 16,

		// Every lattice cell sits on 4 or 7 lines, so the strategic
		// tier needs at least this many still-open ones to fire.
		AiStrategicMinLines: 4,

		AiEnableForkChecks: true,

		// Presentation pause before the AI answers a human move.
		AiMoveDelayMs: 600,

		// 0 seeds from the clock; tests set a fixed seed.
		AiSeed: 0,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
