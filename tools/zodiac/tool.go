package zodiac

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

// UnknownSign is returned for day and month numbers outside of the table
const UnknownSign = "Neznámé znamení"

// Input Determines the zodiac sign from a birth date.
type Input struct {
	schema.Base
	// BirthDate Birth date in dd.mm.yyyy format.
	BirthDate string `json:"birth_date" jsonschema:"title=birth_date,description=Datum narození ve formátu dd.mm.rrrr."`
}

func NewInput(birthDate string) *Input {
	return &Input{BirthDate: birthDate}
}

type Tool struct {
	tools.Config
}

var _ tools.Tool[Input, schema.String] = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("get_zodiac_sign")
	}
	if ret.Description() == "" {
		ret.SetDescription("Určí znamení zvěrokruhu podle data narození.")
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input, output *schema.String) error {
	*output = schema.String(SignOf(input.BirthDate))
	return nil
}

// SignOf returns the sign label for a dd.mm[.yyyy] date, the year is not needed
func SignOf(date string) string {
	parts := strings.Split(birthdate.Normalize(date), ".")
	if len(parts) < 2 {
		return birthdate.InvalidFormatMessage
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return birthdate.InvalidFormatMessage
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return birthdate.InvalidFormatMessage
	}
	if sign, ok := Lookup(time.Month(month), day); ok {
		return sign.Label
	}
	return UnknownSign
}
