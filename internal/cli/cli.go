// Package cli implements zpersona's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/identity"
	"github.com/zarlcorp/zpersona/internal/refdata"
	"golang.org/x/term"
)

const maxCount = 1000

// ErrUsage marks errors caused by bad command-line input.
var ErrUsage = errors.New("usage")

// ErrInvalidNationalID is returned by validate for a bad CPF.
var ErrInvalidNationalID = errors.New("invalid cpf")

// TemplateName is the default file written by the seed command.
const TemplateName = "template.db"

const usage = `usage: zpersona [command]

commands:
  generate [--json] [--gender M|F] [--count N]   generate personas
  name [--gender M|F]                            random display name
  login <name>                                   login handle for a name
  cpf [--format]                                 random valid CPF
  phone [--raw]                                  random mobile number
  validate <cpf>                                 check CPF check digits
  seed [path]                                    build a template database
  stats [--json]                                 reference table sizes
  version                                        print version

with no command, zpersona opens the interactive view on a terminal
`

// App carries what subcommands need.
type App struct {
	Version string
	Config  config.Config
	Store   *refdata.Store
	Gen     *identity.Generator
	Out     io.Writer
}

// Run dispatches a subcommand.
func (a *App) Run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "version":
		fmt.Fprintf(a.Out, "zpersona %s\n", a.Version)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(a.Out, usage)
		return nil
	case "generate":
		return a.CmdGenerate(ctx, args)
	case "name":
		return a.CmdName(ctx, args)
	case "login":
		return a.CmdLogin(ctx, args)
	case "cpf":
		return a.CmdCPF(args)
	case "phone":
		return a.CmdPhone(ctx, args)
	case "validate":
		return a.CmdValidate(args)
	case "seed":
		return a.CmdSeed(ctx, args)
	case "stats":
		return a.CmdStats(ctx, args)
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// Usage returns the help text.
func Usage() string {
	return usage
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// CmdGenerate prints one or more complete personas.
func (a *App) CmdGenerate(ctx context.Context, args []string) error {
	gender, err := a.genderFlag(args)
	if err != nil {
		return err
	}

	count := 1
	if v, ok := flagValue(args, "--count"); ok {
		count, err = strconv.Atoi(v)
		if err != nil || count < 1 || count > maxCount {
			return fmt.Errorf("%w: --count must be between 1 and %d", ErrUsage, maxCount)
		}
	}

	recs := make([]identity.Record, 0, count)
	for range count {
		recs = append(recs, a.Gen.Generate(ctx, gender))
	}

	if hasFlag(args, "--json") {
		if count == 1 {
			return printJSON(a.Out, recs[0])
		}
		return printJSON(a.Out, recs)
	}

	for i, rec := range recs {
		if i > 0 {
			fmt.Fprintln(a.Out)
		}
		PrintRecord(a.Out, rec)
	}
	return nil
}

// CmdName prints a random display name.
func (a *App) CmdName(ctx context.Context, args []string) error {
	gender, err := a.genderFlag(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, a.Gen.Name(ctx, gender))
	return nil
}

// CmdLogin prints a login handle derived from the given name.
func (a *App) CmdLogin(ctx context.Context, args []string) error {
	fmt.Fprintln(a.Out, a.Gen.Login(ctx, strings.Join(args, " ")))
	return nil
}

// CmdCPF prints a random valid CPF.
func (a *App) CmdCPF(args []string) error {
	id := a.Gen.NationalID()
	if hasFlag(args, "--format") {
		id = identity.FormatNationalID(id)
	}
	fmt.Fprintln(a.Out, id)
	return nil
}

// CmdPhone prints a random mobile number.
func (a *App) CmdPhone(ctx context.Context, args []string) error {
	formatted, raw := a.Gen.Phone(ctx)
	if hasFlag(args, "--raw") {
		fmt.Fprintln(a.Out, raw)
		return nil
	}
	fmt.Fprintln(a.Out, formatted)
	return nil
}

// CmdValidate checks the check digits of a CPF.
func (a *App) CmdValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: zpersona validate <cpf>", ErrUsage)
	}
	if !identity.ValidNationalID(args[0]) {
		fmt.Fprintln(a.Out, "invalid")
		return ErrInvalidNationalID
	}
	fmt.Fprintln(a.Out, "valid")
	return nil
}

// CmdSeed writes a template database populated with the seed data.
func (a *App) CmdSeed(ctx context.Context, args []string) error {
	path := a.Config.Template
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = filepath.Join(a.Config.DataDir, TemplateName)
	}

	if err := refdata.BuildTemplate(ctx, path); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "wrote %s\n", path)
	return nil
}

// CmdStats prints reference table sizes.
func (a *App) CmdStats(ctx context.Context, args []string) error {
	c, err := a.Store.Counts(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	if hasFlag(args, "--json") {
		return printJSON(a.Out, c)
	}

	if a.Config.Source != "" {
		fmt.Fprintf(a.Out, "  config:     %s\n", a.Config.Source)
	}
	fmt.Fprintf(a.Out, "  database:   %s\n", a.Store.Path())
	fmt.Fprintf(a.Out, "  names:      %d (%d M, %d F)\n", c.Names(), c.Male, c.Female)
	fmt.Fprintf(a.Out, "  adjectives: %d\n", c.Adjectives)
	fmt.Fprintf(a.Out, "  area codes: %d\n", c.AreaCodes)
	return nil
}

// genderFlag reads --gender, falling back to the configured default.
func (a *App) genderFlag(args []string) (refdata.Gender, error) {
	v, ok := flagValue(args, "--gender")
	if !ok {
		return a.Config.Gender, nil
	}
	g, err := refdata.ParseGender(v)
	if err != nil {
		return refdata.GenderAny, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return g, nil
}

// PrintRecord writes a persona in the human-readable layout.
func PrintRecord(w io.Writer, rec identity.Record) {
	fmt.Fprintf(w, "  name:      %s\n", rec.DisplayName)
	fmt.Fprintf(w, "  login:     %s\n", rec.Login)
	fmt.Fprintf(w, "  cpf:       %s\n", rec.NationalID)
	fmt.Fprintf(w, "  phone:     %s\n", rec.PhoneFormatted)
	fmt.Fprintf(w, "  phone raw: %s\n", rec.PhoneRaw)
	if len(rec.Degraded) > 0 {
		fmt.Fprintf(w, "  fallback:  %s\n", strings.Join(rec.Degraded, ", "))
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the value of "--flag value" or "--flag=value".
func flagValue(args []string, flag string) (string, bool) {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, flag+"="); ok {
			return v, true
		}
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}
