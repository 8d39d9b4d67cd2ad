package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/identity"
	"github.com/zarlcorp/zpersona/internal/refdata"
)

func testApp(t *testing.T, seed uint64) (*App, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		DataDir:  dir,
		Database: filepath.Join(dir, config.DatabaseName),
		Seed:     seed,
	}
	rng := identity.NewRand(seed)
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := refdata.New(cfg.Store(), refdata.WithRand(rng), refdata.WithLogger(quiet))

	var out bytes.Buffer
	return &App{
		Version: "1.2.3",
		Config:  cfg,
		Store:   store,
		Gen:     identity.New(store, identity.WithRand(rng)),
		Out:     &out,
	}, &out
}

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--json", "--raw"}, "--json", true},
		{"absent", []string{"--raw"}, "--json", false},
		{"empty", nil, "--json", false},
		{"case insensitive", []string{"--JSON"}, "--json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   string
		wantOK bool
	}{
		{"separate", []string{"--gender", "F"}, "F", true},
		{"equals", []string{"--json", "--gender=M"}, "M", true},
		{"missing value", []string{"--gender"}, "", false},
		{"absent", []string{"--json"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := flagValue(tt.args, "--gender")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("flagValue(%v) = %q, %v; want %q, %v", tt.args, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	a, out := testApp(t, 1)
	if err := a.Run(context.Background(), "version", nil); err != nil {
		t.Fatal(err)
	}
	if out.String() != "zpersona 1.2.3\n" {
		t.Errorf("version output = %q", out.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	a, _ := testApp(t, 1)
	err := a.Run(context.Background(), "frobnicate", nil)
	if !errors.Is(err, ErrUsage) {
		t.Errorf("err = %v, want ErrUsage", err)
	}
}

func TestCmdGenerateText(t *testing.T) {
	a, out := testApp(t, 1)
	if err := a.Run(context.Background(), "generate", nil); err != nil {
		t.Fatal(err)
	}

	for _, label := range []string{"name:", "login:", "cpf:", "phone:", "phone raw:"} {
		if !strings.Contains(out.String(), label) {
			t.Errorf("output missing %q:\n%s", label, out.String())
		}
	}
	if strings.Contains(out.String(), "fallback:") {
		t.Errorf("healthy store should not report fallbacks:\n%s", out.String())
	}
}

func TestCmdGenerateJSONCount(t *testing.T) {
	a, out := testApp(t, 1)
	err := a.Run(context.Background(), "generate", []string{"--json", "--count", "5", "--gender", "F"})
	if err != nil {
		t.Fatal(err)
	}

	var recs []identity.Record
	if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if len(recs) != 5 {
		t.Fatalf("got %d records, want 5", len(recs))
	}
	for _, r := range recs {
		if r.Gender != refdata.GenderFemale {
			t.Errorf("gender = %q, want F", r.Gender)
		}
		if !identity.ValidNationalID(r.NationalID) {
			t.Errorf("invalid cpf %q", r.NationalID)
		}
	}
}

func TestCmdGenerateJSONSingleIsObject(t *testing.T) {
	a, out := testApp(t, 1)
	if err := a.Run(context.Background(), "generate", []string{"--json"}); err != nil {
		t.Fatal(err)
	}
	var rec identity.Record
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatalf("single record should be an object: %v", err)
	}
	if rec.DisplayName == "" {
		t.Error("display name is empty")
	}
}

func TestCmdGenerateBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"count zero", []string{"--count", "0"}},
		{"count too large", []string{"--count", "1001"}},
		{"count not a number", []string{"--count", "many"}},
		{"bad gender", []string{"--gender", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := testApp(t, 1)
			if err := a.CmdGenerate(context.Background(), tt.args); !errors.Is(err, ErrUsage) {
				t.Errorf("err = %v, want ErrUsage", err)
			}
		})
	}
}

func TestCmdGenerateReproducible(t *testing.T) {
	a, outA := testApp(t, 77)
	b, outB := testApp(t, 77)

	if err := a.CmdGenerate(context.Background(), []string{"--count", "3"}); err != nil {
		t.Fatal(err)
	}
	if err := b.CmdGenerate(context.Background(), []string{"--count", "3"}); err != nil {
		t.Fatal(err)
	}
	if outA.String() != outB.String() {
		t.Errorf("same seed produced different output:\n%s\n---\n%s", outA.String(), outB.String())
	}
}

func TestCmdLogin(t *testing.T) {
	a, out := testApp(t, 1)
	if err := a.Run(context.Background(), "login", []string{"Maria", "Oliveira"}); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(out.String())
	if !strings.HasPrefix(got, "maria") || len([]rune(got)) > identity.MaxLoginLen {
		t.Errorf("login = %q", got)
	}
}

func TestCmdCPF(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pattern string
	}{
		{"raw", nil, `^\d{11}$`},
		{"formatted", []string{"--format"}, `^\d{3}\.\d{3}\.\d{3}-\d{2}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := testApp(t, 1)
			if err := a.Run(context.Background(), "cpf", tt.args); err != nil {
				t.Fatal(err)
			}
			got := strings.TrimSpace(out.String())
			if !regexp.MustCompile(tt.pattern).MatchString(got) {
				t.Errorf("cpf = %q, want match %s", got, tt.pattern)
			}
			if !identity.ValidNationalID(got) {
				t.Errorf("cpf %q fails validation", got)
			}
		})
	}
}

func TestCmdPhone(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pattern string
	}{
		{"formatted", nil, `^\(\d{2}\) 9\d{8}$`},
		{"raw", []string{"--raw"}, `^\d{2}9\d{8}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := testApp(t, 1)
			if err := a.Run(context.Background(), "phone", tt.args); err != nil {
				t.Fatal(err)
			}
			got := strings.TrimSpace(out.String())
			if !regexp.MustCompile(tt.pattern).MatchString(got) {
				t.Errorf("phone = %q, want match %s", got, tt.pattern)
			}
		})
	}
}

func TestCmdName(t *testing.T) {
	a, out := testApp(t, 1)
	if err := a.Run(context.Background(), "name", []string{"--gender=M"}); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(out.String())
	if got == "" || got == refdata.UnknownName {
		t.Errorf("name = %q", got)
	}
}

func TestCmdValidate(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantOut string
	}{
		{"valid", []string{"123.456.789-09"}, nil, "valid\n"},
		{"invalid", []string{"12345678900"}, ErrInvalidNationalID, "invalid\n"},
		{"no args", nil, ErrUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := testApp(t, 1)
			err := a.Run(context.Background(), "validate", tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if out.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestCmdSeed(t *testing.T) {
	a, out := testApp(t, 1)
	path := filepath.Join(t.TempDir(), "nested", "tmpl.db")

	if err := a.Run(context.Background(), "seed", []string{path}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output = %q", out.String())
	}
}

func TestCmdSeedDefaultPath(t *testing.T) {
	a, _ := testApp(t, 1)
	if err := a.CmdSeed(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(a.Config.DataDir, TemplateName)); err != nil {
		t.Errorf("default template not written: %v", err)
	}
}

func TestCmdStats(t *testing.T) {
	a, out := testApp(t, 1)
	if err := a.Run(context.Background(), "stats", []string{"--json"}); err != nil {
		t.Fatal(err)
	}

	var c refdata.Counts
	if err := json.Unmarshal(out.Bytes(), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Male == 0 || c.Female == 0 || c.Adjectives == 0 || c.AreaCodes == 0 {
		t.Errorf("counts = %+v, want all non-zero", c)
	}
}

func TestPrintRecordShowsFallbacks(t *testing.T) {
	var b bytes.Buffer
	PrintRecord(&b, identity.Record{
		DisplayName: refdata.UnknownName,
		Degraded:    []string{identity.FieldName, identity.FieldPhone},
	})
	if !strings.Contains(b.String(), "fallback:  name, phone") {
		t.Errorf("output = %q", b.String())
	}
}

func TestCmdStatsText(t *testing.T) {
	a, out := testApp(t, 1)
	a.Config.Source = "/etc/zpersona/config.yaml"
	if err := a.Run(context.Background(), "stats", nil); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"config:     /etc/zpersona/config.yaml", "names:      50 (25 M, 25 F)", "area codes:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
