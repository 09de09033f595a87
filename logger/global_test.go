package logger

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/dawglabs/dawglog/config"
	"github.com/dawglabs/dawglog/core"
	"github.com/dawglabs/dawglog/formatter"
	"github.com/dawglabs/dawglog/sink"
)

// resetGlobal clears the singleton so each test exercises its own
// initialization path
func resetGlobal() {
	globalMu.Lock()
	global = nil
	globalMu.Unlock()
}

func TestInstance_AutoInit(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	// The lazily created logger captures os.Stdout at construction,
	// so swapping it for a pipe lets us observe the auto-init warning.
	realStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	l := Instance()
	l.Log(core.InfoLevel, "", core.SourceLocation{}, "second message")

	os.Stdout = realStdout
	_ = w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "[WARNING]") || !strings.Contains(lines[0], "not initialized") {
		t.Errorf("Expected auto-init warning as the very first record, got: %s", lines[0])
	}
	if !strings.Contains(lines[0], "DawgLog") {
		t.Errorf("Expected default app name in warning, got: %s", lines[0])
	}
	if !strings.Contains(lines[1], "second message") {
		t.Errorf("Expected second message after the warning, got: %s", lines[1])
	}
}

func TestInstance_StableAfterAutoInit(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	realStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	first := Instance()
	second := Instance()

	os.Stdout = realStdout
	_ = w.Close()
	out, _ := io.ReadAll(r)

	if first != second {
		t.Error("Expected repeated Instance() calls to return the same logger")
	}
	if got := strings.Count(string(out), "not initialized"); got != 1 {
		t.Errorf("Expected exactly 1 auto-init warning, got %d", got)
	}
}

func TestInit_DerivesFromConfig(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	cfg := config.Config{Sink: sink.Console, Format: formatter.JSON, AppName: "CfgApp"}
	Init(cfg)

	l := Instance()
	if l.appName != "CfgApp" {
		t.Errorf("appName = %q, want CfgApp", l.appName)
	}
	if len(l.targets) != 1 {
		t.Fatalf("Expected 1 target, got %d", len(l.targets))
	}
	if _, ok := l.targets[0].Sink.(*sink.ConsoleSink); !ok {
		t.Errorf("Expected console sink, got %T", l.targets[0].Sink)
	}
	if _, ok := l.targets[0].Formatter.(*formatter.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", l.targets[0].Formatter)
	}
}

func TestInit_SyslogFromConfig(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	// Construction must not dial; the connection is lazy.
	Init(config.Config{Sink: sink.Syslog, Format: formatter.Text, AppName: "SysApp"})

	l := Instance()
	if _, ok := l.targets[0].Sink.(*sink.SyslogSink); !ok {
		t.Errorf("Expected syslog sink, got %T", l.targets[0].Sink)
	}
}

func TestInitWithFormatter(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	f := formatter.NewJSONFormatter(formatter.Config{})
	InitWithFormatter(config.Config{Sink: sink.Console, Format: formatter.Text, AppName: "App"}, f)

	l := Instance()
	if l.targets[0].Formatter != f {
		t.Error("Expected the explicitly supplied formatter to be used verbatim")
	}
	if _, ok := l.targets[0].Sink.(*sink.ConsoleSink); !ok {
		t.Errorf("Expected sink derived from config, got %T", l.targets[0].Sink)
	}
}

func TestInitWithSink(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	mem := &memorySink{}
	InitWithSink(config.Config{Sink: sink.Syslog, Format: formatter.Text, AppName: "App"}, mem)

	msg := Info("through the package helper: %v", true)
	if msg != "through the package helper: true" {
		t.Errorf("Info() = %q", msg)
	}
	if len(mem.writes) != 1 {
		t.Fatalf("Expected 1 write on the supplied sink, got %d", len(mem.writes))
	}
	if !strings.Contains(mem.writes[0], "global_test.go") {
		t.Errorf("Expected captured call site in output, got: %s", mem.writes[0])
	}
}

func TestInitWithSinkAndFormatter(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	mem := &memorySink{}
	f := formatter.NewJSONFormatter(formatter.Config{})
	InitWithSinkAndFormatter(config.Config{AppName: "App"}, mem, f)

	Warning("explicit pair")

	if len(mem.writes) != 1 {
		t.Fatalf("Expected 1 write, got %d", len(mem.writes))
	}
	if !strings.Contains(mem.writes[0], `"level":"WARNING"`) {
		t.Errorf("Expected JSON warning, got: %s", mem.writes[0])
	}
}

func TestInitWithTargets(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	a := &memorySink{}
	b := &memorySink{}
	InitWithTargets(config.Config{AppName: "Multi"}, []Target{
		{Sink: a, Formatter: formatter.NewTextFormatter(formatter.Config{})},
		{Sink: b, Formatter: formatter.NewJSONFormatter(formatter.Config{})},
	})

	Notice("fan out")

	if len(a.writes) != 1 || len(b.writes) != 1 {
		t.Fatalf("Expected 1 write per target, got %d and %d", len(a.writes), len(b.writes))
	}
	if a.recs[0].AppName != "Multi" {
		t.Errorf("AppName = %q, want Multi", a.recs[0].AppName)
	}
}

func TestInit_ReplacesPriorInstance(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	first := &memorySink{}
	InitWithSink(config.Config{AppName: "A"}, first)
	second := &memorySink{}
	InitWithSink(config.Config{AppName: "B"}, second)

	Error("after replacement")

	if len(first.writes) != 0 {
		t.Errorf("Expected replaced instance to receive nothing, got %d writes", len(first.writes))
	}
	if len(second.writes) != 1 {
		t.Errorf("Expected new instance to receive the record, got %d writes", len(second.writes))
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	mem := &memorySink{}
	InitWithSink(config.Config{AppName: "App"}, mem)

	Trace("t")
	Debug("d")
	Info("i")
	Notice("n")
	Warning("w")
	Error("e")
	Fatal("f") // must not exit

	if len(mem.writes) != 7 {
		t.Fatalf("Expected 7 writes, got %d", len(mem.writes))
	}
	wantLevels := []string{"[TRACE]", "[DEBUG]", "[INFO]", "[NOTICE]", "[WARNING]", "[ERROR]", "[FATAL]"}
	for i, want := range wantLevels {
		if !strings.Contains(mem.writes[i], want) {
			t.Errorf("write %d = %q, want level %s", i, mem.writes[i], want)
		}
	}
}
