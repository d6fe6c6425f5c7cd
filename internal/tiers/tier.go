package tiers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/touchline/internal/questionbank"
)

// ErrUnknownTier is returned by Get for names outside the tier table.
var ErrUnknownTier = errors.New("unknown tier")

// Tier names.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
	Expert       = "expert"
)

const (
	// DefaultPassingScore applies when a tier does not set its own.
	DefaultPassingScore = 70

	// CertificateThreshold is the percentage that earns a certificate,
	// regardless of tier.
	CertificateThreshold = 80
)

// Config holds the settings for one assessment tier.
type Config struct {
	Name           string
	Tier           int // ordinal, 1-based
	TotalQuestions int
	TimeLimit      int // seconds per question; 0 disables the countdown
	Difficulties   []questionbank.Difficulty
	PassingScore   int    // 0 means DefaultPassingScore
	Unlocks        string // empty for the last tier
	RequiresUnlock bool
	IsMaxLevel     bool
}

// EffectivePassingScore returns the tier's passing score or the default.
func (c Config) EffectivePassingScore() int {
	if c.PassingScore <= 0 {
		return DefaultPassingScore
	}
	return c.PassingScore
}

// QuestionTime returns the per-question countdown, or 0 when untimed.
func (c Config) QuestionTime() time.Duration {
	return time.Duration(c.TimeLimit) * time.Second
}

// Allows reports whether questions of difficulty d may appear in this tier.
func (c Config) Allows(d questionbank.Difficulty) bool {
	for _, a := range c.Difficulties {
		if a == d {
			return true
		}
	}
	return false
}

// DisplayName returns the capitalised tier name.
func (c Config) DisplayName() string {
	if c.Name == "" {
		return ""
	}
	return strings.ToUpper(c.Name[:1]) + c.Name[1:]
}

var table = []Config{
	{
		Name:           Beginner,
		Tier:           1,
		TotalQuestions: 8,
		TimeLimit:      45,
		Difficulties:   []questionbank.Difficulty{questionbank.DifficultyEasy},
		PassingScore:   60,
		Unlocks:        Intermediate,
	},
	{
		Name:           Intermediate,
		Tier:           2,
		TotalQuestions: 12,
		TimeLimit:      40,
		Difficulties:   []questionbank.Difficulty{questionbank.DifficultyEasy, questionbank.DifficultyMedium},
		PassingScore:   65,
		Unlocks:        Advanced,
		RequiresUnlock: true,
	},
	{
		Name:           Advanced,
		Tier:           3,
		TotalQuestions: 16,
		TimeLimit:      35,
		Difficulties:   []questionbank.Difficulty{questionbank.DifficultyMedium, questionbank.DifficultyHard},
		PassingScore:   70,
		Unlocks:        Expert,
		RequiresUnlock: true,
	},
	{
		Name:           Expert,
		Tier:           4,
		TotalQuestions: 20,
		TimeLimit:      30,
		Difficulties:   []questionbank.Difficulty{questionbank.DifficultyHard},
		PassingScore:   80,
		RequiresUnlock: true,
		IsMaxLevel:     true,
	},
}

// All returns every tier in declaration order.
func All() []Config {
	out := make([]Config, len(table))
	copy(out, table)
	return out
}

// Names returns the tier names in declaration order.
func Names() []string {
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a tier by name.
func Lookup(name string) (Config, bool) {
	for _, c := range table {
		if c.Name == name {
			return c, true
		}
	}
	return Config{}, false
}

// Get finds a tier by name or returns ErrUnknownTier.
func Get(name string) (Config, error) {
	if c, ok := Lookup(name); ok {
		return c, nil
	}
	return Config{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTier, name, strings.Join(Names(), ", "))
}

// Resolve finds a tier by name, falling back to the first tier for unknown
// names. The bool reports whether name was recognized.
func Resolve(name string) (Config, bool) {
	if c, ok := Lookup(name); ok {
		return c, true
	}
	return table[0], false
}

// First returns the entry tier.
func First() Config {
	return table[0]
}

// prerequisite returns the tier whose Unlocks names the given tier.
func prerequisite(name string) (Config, bool) {
	for _, c := range table {
		if c.Unlocks == name {
			return c, true
		}
	}
	return Config{}, false
}

// Validate checks that the tier table forms a single linear unlock chain
// starting at a tier that needs no unlock.
func Validate(cfgs []Config) error {
	var errs []string

	if len(cfgs) == 0 {
		return fmt.Errorf("tier table is empty")
	}
	if cfgs[0].RequiresUnlock {
		errs = append(errs, fmt.Sprintf("first tier %q must not require unlock", cfgs[0].Name))
	}

	for i, c := range cfgs {
		if c.Tier != i+1 {
			errs = append(errs, fmt.Sprintf("tier %q has ordinal %d, want %d", c.Name, c.Tier, i+1))
		}
		if c.TotalQuestions <= 0 {
			errs = append(errs, fmt.Sprintf("tier %q has no questions", c.Name))
		}
		if len(c.Difficulties) == 0 {
			errs = append(errs, fmt.Sprintf("tier %q allows no difficulties", c.Name))
		}
		last := i == len(cfgs)-1
		switch {
		case last && c.Unlocks != "":
			errs = append(errs, fmt.Sprintf("last tier %q unlocks %q", c.Name, c.Unlocks))
		case last && !c.IsMaxLevel:
			errs = append(errs, fmt.Sprintf("last tier %q is not marked max level", c.Name))
		case !last && c.Unlocks != cfgs[i+1].Name:
			errs = append(errs, fmt.Sprintf("tier %q unlocks %q, want %q", c.Name, c.Unlocks, cfgs[i+1].Name))
		case !last && c.IsMaxLevel:
			errs = append(errs, fmt.Sprintf("tier %q is marked max level but is not last", c.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("tier table invalid:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
