package age

import (
	"context"
	"fmt"
	"time"

	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

// Input Calculates the exact age in years months and days.
type Input struct {
	schema.Base
	// BirthDate Birth date in dd.mm.yyyy format.
	BirthDate string `json:"birth_date" jsonschema:"title=birth_date,description=Datum narození ve formátu dd.mm.rrrr."`
}

func NewInput(birthDate string) *Input {
	return &Input{BirthDate: birthDate}
}

type Config struct {
	tools.Config
	clock birthdate.Clock
}

type Option func(*Config)

// WithToolOptions applies generic tool options such as hooks
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

// WithClock replaces the wall clock
func WithClock(clock birthdate.Clock) Option {
	return func(c *Config) {
		c.clock = clock
	}
}

type Tool struct {
	Config
}

var _ tools.Tool[Input, schema.String] = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("calculate_age")
	}
	if ret.Description() == "" {
		ret.SetDescription("Spočítá přesný věk uživatele v letech, měsících a dnech.")
	}
	if ret.clock == nil {
		ret.clock = time.Now
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input, output *schema.String) error {
	birth, err := birthdate.Parse(input.BirthDate)
	if err != nil {
		*output = birthdate.InvalidFormatMessage
		return nil
	}
	age := birthdate.AgeAt(birth, birthdate.FromTime(t.clock()))
	*output = schema.String(fmt.Sprintf("Věk: %d let, %d měsíců a %d dní. Celkem %s dní na tomto světě!",
		age.Years, age.Months, age.Days, birthdate.GroupThousands(age.TotalDays)))
	return nil
}
