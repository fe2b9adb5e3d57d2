package logger_test

import (
	"os"

	"github.com/mwilhelm/zonelog/formatter"
	"github.com/mwilhelm/zonelog/handler"
	"github.com/mwilhelm/zonelog/logger"
)

func ExampleNewBuilder() {
	// Timestamps vary between runs, so this example disables them.
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: os.Stdout,
		Formatter: formatter.NewZoneFormatter(
			formatter.NewPolicy(formatter.WithTimestamp(false)), nil),
	})

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.InfoLevel).
		WithTarget("net").
		Build()

	log.Debug("not shown")
	log.Info("connecting\nretry 1")
	// Output:
	// [INFO  net] connecting
	//     retry 1
}

func ExampleLogger_WithTarget() {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: os.Stdout,
		Formatter: formatter.NewZoneFormatter(
			formatter.NewPolicy(formatter.WithTimestamp(false)), nil),
	})
	log := logger.NewBuilder().WithHandler(h).WithTarget("net").Build()

	log.WithTarget("db").Warn("slow query")
	// Output:
	// [WARN  db] slow query
}
