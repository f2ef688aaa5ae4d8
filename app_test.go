package main

import (
	"testing"
	"time"

	"MakeupBot/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func testConfig() *config.Config {
	return &config.Config{
		BotToken:        "123:abc",
		Timezone:        time.UTC,
		DailyHour:       10,
		Storage:         "sqlite",
		DBPath:          "unused.sqlite3",
		HealthAddr:      ":0",
		RotationWorkers: 2,
	}
}

func TestAppGraphResolves(t *testing.T) {
	assert.NoError(t, fx.ValidateApp(appOptions(testConfig(), zerolog.Nop())...))
}

func TestAppGraph_MissingProviderFails(t *testing.T) {
	err := fx.ValidateApp(
		fx.NopLogger,
		fx.Supply(testConfig(), zerolog.Nop()),
		fx.Invoke(runScheduler),
	)
	assert.Error(t, err)
}
