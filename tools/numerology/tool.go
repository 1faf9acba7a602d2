package numerology

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

var errNotDigit = errors.New("not a digit")

// Input Calculates the numerology life number from a birth date.
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
		ret.SetTitle("calculate_life_number")
	}
	if ret.Description() == "" {
		ret.SetDescription("Spočítá životní číslo podle numerologie.")
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input, output *schema.String) error {
	n, err := LifeNumber(input.BirthDate)
	if err != nil {
		*output = birthdate.InvalidFormatMessage
		return nil
	}
	*output = schema.String(fmt.Sprintf("Životní číslo: %d - %s", n, Meaning(n)))
	return nil
}

// LifeNumber sums every digit of the normalized date and reduces the total
func LifeNumber(date string) (int, error) {
	digits := strings.ReplaceAll(birthdate.Normalize(date), ".", "")
	var total int
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, errNotDigit
		}
		total += int(r - '0')
	}
	return Reduce(total), nil
}
