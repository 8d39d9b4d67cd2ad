package identity

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zarlcorp/zpersona/internal/refdata"
)

const (
	// MaxLoginLen is the hard cap on login length, in characters.
	MaxLoginLen = 16

	// PhoneFailure replaces both phone forms when no area code is available.
	PhoneFailure = "Telefone indisponível"

	fallbackLoginToken = "usuario"

	minLoginSuffix = 10
	maxLoginSuffix = 999

	minSubscriber = 10000000
	maxSubscriber = 99999999
)

// Source serves random reference values. *refdata.Store implements it.
// Implementations must not fail: problems are reported as degraded lookups.
type Source interface {
	RandomName(ctx context.Context, g refdata.Gender) refdata.Lookup
	RandomAdjective(ctx context.Context) refdata.Lookup
	RandomAreaCode(ctx context.Context) refdata.Lookup
}

// Generator produces persona data from a Source and a random source.
// It is not safe for concurrent use.
type Generator struct {
	src Source
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source for digits and suffixes.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed makes generation reproducible for the given non-zero seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = NewRand(seed) }
}

// New creates a generator reading reference values from src.
func New(src Source, opts ...Option) *Generator {
	g := &Generator{src: src}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}
	return g
}

// Generate produces a complete persona, filtering the name by gender.
func (g *Generator) Generate(ctx context.Context, gender refdata.Gender) Record {
	rec := Record{Gender: gender}

	name := g.src.RandomName(ctx, gender)
	rec.DisplayName = name.Value
	if name.Degraded {
		rec.Degraded = append(rec.Degraded, FieldName)
	}

	login, degraded := g.login(ctx, rec.DisplayName)
	rec.Login = login
	if degraded {
		rec.Degraded = append(rec.Degraded, FieldLogin)
	}

	rec.NationalID = g.NationalID()

	formatted, raw, degraded := g.phone(ctx)
	rec.PhoneFormatted, rec.PhoneRaw = formatted, raw
	if degraded {
		rec.Degraded = append(rec.Degraded, FieldPhone)
	}

	return rec
}

// Name returns a random display name for gender.
func (g *Generator) Name(ctx context.Context, gender refdata.Gender) string {
	return g.src.RandomName(ctx, gender).Value
}

// Login derives a handle from the first token of name, a random adjective
// and a numeric suffix in [10, 999], cut to MaxLoginLen characters.
func (g *Generator) Login(ctx context.Context, name string) string {
	login, _ := g.login(ctx, name)
	return login
}

func (g *Generator) login(ctx context.Context, name string) (string, bool) {
	token := fallbackLoginToken
	if fields := strings.Fields(name); len(fields) > 0 {
		token = strings.ToLower(fields[0])
	}

	adj := g.src.RandomAdjective(ctx)
	suffix := minLoginSuffix + g.rng.IntN(maxLoginSuffix-minLoginSuffix+1)

	return truncate(token+adj.Value+strconv.Itoa(suffix), MaxLoginLen), adj.Degraded
}

// NationalID returns a random 11-digit CPF with valid check digits.
func (g *Generator) NationalID() string {
	var base [9]int
	for i := range base {
		base[i] = g.rng.IntN(10)
	}
	return NationalIDFromDigits(base)
}

// Phone returns a mobile number as "(AA) 9XXXXXXXX" and "AA9XXXXXXXX".
// Both are PhoneFailure when no area code is available.
func (g *Generator) Phone(ctx context.Context) (formatted, raw string) {
	formatted, raw, _ = g.phone(ctx)
	return formatted, raw
}

func (g *Generator) phone(ctx context.Context) (string, string, bool) {
	area := g.src.RandomAreaCode(ctx)
	if area.Degraded {
		return PhoneFailure, PhoneFailure, true
	}

	subscriber := "9" + strconv.Itoa(minSubscriber+g.rng.IntN(maxSubscriber-minSubscriber+1))
	return fmt.Sprintf("(%s) %s", area.Value, subscriber), area.Value + subscriber, false
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
