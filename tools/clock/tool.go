package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

// weekdays are Czech weekday names indexed by time.Weekday
var weekdays = [7]string{"neděle", "pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota"}

// Input the tool takes no arguments
type Input struct {
	schema.Base
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

// Tool tells the model today's date
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
		ret.SetTitle("get_current_date")
	}
	if ret.Description() == "" {
		ret.SetDescription("Vrátí aktuální datum a čas. VŽDY použij tento nástroj pro zjištění dnešního data!")
	}
	if ret.clock == nil {
		ret.clock = time.Now
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input, output *schema.String) error {
	*output = schema.String(Today(t.clock()))
	return nil
}

// Today formats now as "Dnes je <weekday> dd.mm.yyyy"
func Today(now time.Time) string {
	return fmt.Sprintf("Dnes je %s %s", weekdays[now.Weekday()], now.Format("02.01.2006"))
}
