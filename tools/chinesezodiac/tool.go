package chinesezodiac

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

// BaseYear is a year of the Rat, the first animal of the cycle
const BaseYear = 1900

// Animal of the twelve year cycle
type Animal struct {
	Name   string
	Traits string
}

// Animals indexed by (year - BaseYear) mod 12, 1900 is the year of the Monkey
var Animals = [12]Animal{
	{"Opice 🐵", "Chytří, zvědaví a hraví"},
	{"Kohout 🐓", "Pracovití, odvážní a talentovaní"},
	{"Pes 🐕", "Loajální, čestní a přátelští"},
	{"Vepř 🐷", "Štědří, soucitní a pilní"},
	{"Krysa 🐀", "Chytří, šarmantní a ambiciózní"},
	{"Buvol 🐂", "Spolehliví, silní a odhodlaní"},
	{"Tygr 🐅", "Odvážní, konkurenceschopní a sebevědomí"},
	{"Králík 🐇", "Tiší, elegantní a laskaví"},
	{"Drak 🐉", "Sebevědomí, inteligentní a nadšení"},
	{"Had 🐍", "Moudří, záhadní a intuitivní"},
	{"Kůň 🐎", "Energičtí, nezávislí a netrpěliví"},
	{"Koza 🐐", "Klidní, jemní a soucitní"},
}

// AnimalOf returns the animal of the year, years before BaseYear wrap around
func AnimalOf(year int) Animal {
	idx := ((year-BaseYear)%len(Animals) + len(Animals)) % len(Animals)
	return Animals[idx]
}

// Input Determines the Chinese zodiac animal from a birth date.
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
		ret.SetTitle("get_chinese_zodiac")
	}
	if ret.Description() == "" {
		ret.SetDescription("Určí čínské zvířecí znamení podle roku narození.")
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input, output *schema.String) error {
	parts := strings.Split(birthdate.Normalize(input.BirthDate), ".")
	if len(parts) < 3 {
		*output = birthdate.InvalidFormatMessage
		return nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		*output = birthdate.InvalidFormatMessage
		return nil
	}
	animal := AnimalOf(year)
	*output = schema.String(fmt.Sprintf("Čínské znamení: %s - %s", animal.Name, animal.Traits))
	return nil
}
