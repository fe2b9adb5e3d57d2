package formatter_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/mwilhelm/zonelog/core"
	"github.com/mwilhelm/zonelog/formatter"
)

func ExampleNewZoneFormatter() {
	// Timestamps vary between runs, so this example disables them.
	p := formatter.NewPolicy(formatter.WithTimestamp(false))
	f := formatter.NewZoneFormatter(p, nil)

	out, _ := f.Format(&core.Entry{
		Level:   core.InfoLevel,
		Target:  "net",
		Message: "connecting\nretry 1",
	})
	fmt.Print(string(out))
	// Output:
	// [INFO  net] connecting
	//     retry 1
}

func ExampleZoneFormatter_FormatTo() {
	p := formatter.NewPolicy(
		formatter.WithTimestamp(false),
		formatter.WithTarget(false),
		formatter.WithoutIndent(),
	)
	f := formatter.NewZoneFormatter(p, nil)

	f.FormatTo(&core.Entry{Level: core.WarnLevel, Message: "disk nearly full"}, os.Stdout)
	// Output:
	// [WARN ] disk nearly full
}

func ExampleNewPolicy() {
	p := formatter.NewPolicy(
		formatter.WithUTCOffset(8 * 60 * 60),
		formatter.WithPrecision(formatter.PrecisionSeconds),
	)
	f := formatter.NewZoneFormatter(p, nil)

	out, _ := f.Format(&core.Entry{Level: core.InfoLevel, Target: "net", Message: "up"})
	fmt.Println(strings.Contains(string(out), "+08:00"))
	// Output:
	// true
}
