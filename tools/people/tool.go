package people

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

const emptyMemory = "📭 Paměť je prázdná."

type Config struct {
	tools.Config
	clock birthdate.Clock
}

type Option func(*Config)

// WithClock replaces the wall clock used to count days alive
func WithClock(clock birthdate.Clock) Option {
	return func(c *Config) {
		c.clock = clock
	}
}

// WithToolOptions applies generic tool options such as hooks
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

func newConfig(title string, desc string, opts []Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.Title() == "" {
		c.SetTitle(title)
	}
	if c.Description() == "" {
		c.SetDescription(desc)
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	return c
}

// NoArgs is the input of tools without parameters
type NoArgs struct {
	schema.Base
}

// SaveInput Saves a new user with name and birth date.
type SaveInput struct {
	schema.Base
	// Name Name of the user.
	Name string `json:"name" jsonschema:"title=name,description=Jméno uživatele."`
	// BirthDate Birth date in dd.mm.yyyy format.
	BirthDate string `json:"birth_date" jsonschema:"title=birth_date,description=Datum narození ve formátu dd.mm.rrrr."`
}

func NewSaveInput(name string, birthDate string) *SaveInput {
	return &SaveInput{Name: name, BirthDate: birthDate}
}

// SaveTool stores a user
type SaveTool struct {
	Config
	store *Store
}

var _ tools.Tool[SaveInput, schema.String] = (*SaveTool)(nil)

func NewSaveTool(store *Store, opts ...Option) *SaveTool {
	return &SaveTool{
		Config: newConfig("save_user", "Uloží nového uživatele do paměti (jméno a datum narození).", opts),
		store:  store,
	}
}

func (t *SaveTool) Run(ctx context.Context, input *SaveInput, output *schema.String) error {
	u := NewUser(input.Name, input.BirthDate, t.clock())
	t.store.Save(u)
	*output = schema.String(fmt.Sprintf("✅ Uloženo: %s, narozen/a %s (%d dní)", u.Name, u.BirthDate, u.DaysAlive))
	return nil
}

// ListTool lists saved users
type ListTool struct {
	Config
	store *Store
}

var _ tools.Tool[NoArgs, schema.String] = (*ListTool)(nil)

func NewListTool(store *Store, opts ...Option) *ListTool {
	return &ListTool{
		Config: newConfig("list_all_users", "Zobrazí seznam všech uložených uživatelů v paměti.", opts),
		store:  store,
	}
}

func (t *ListTool) Run(ctx context.Context, input *NoArgs, output *schema.String) error {
	users := t.store.List()
	if len(users) == 0 {
		*output = emptyMemory + " Zatím nebyl uložen žádný uživatel."
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📋 Uložení uživatelé (%d):\n", len(users))
	for i, u := range users {
		fmt.Fprintf(&b, "  %d. %s - %s (%d dní)\n", i+1, u.Name, u.BirthDate, u.DaysAlive)
	}
	*output = schema.String(b.String())
	return nil
}

// TotalTool sums days alive of all users
type TotalTool struct {
	Config
	store *Store
}

var _ tools.Tool[NoArgs, schema.String] = (*TotalTool)(nil)

func NewTotalTool(store *Store, opts ...Option) *TotalTool {
	return &TotalTool{
		Config: newConfig("get_total_days", "Spočítá celkový součet dní na světě všech uložených uživatelů.", opts),
		store:  store,
	}
}

func (t *TotalTool) Run(ctx context.Context, input *NoArgs, output *schema.String) error {
	count := t.store.Len()
	if count == 0 {
		*output = emptyMemory + " Nelze spočítat součet."
		return nil
	}
	*output = schema.String(fmt.Sprintf("📊 Celkem %d uživatelů = %s dní dohromady!", count, birthdate.GroupThousands(t.store.TotalDays())))
	return nil
}

// ClearTool removes all users
type ClearTool struct {
	Config
	store *Store
}

var _ tools.Tool[NoArgs, schema.String] = (*ClearTool)(nil)

func NewClearTool(store *Store, opts ...Option) *ClearTool {
	return &ClearTool{
		Config: newConfig("clear_memory", "Vymaže všechny uložené uživatele z paměti.", opts),
		store:  store,
	}
}

func (t *ClearTool) Run(ctx context.Context, input *NoArgs, output *schema.String) error {
	*output = schema.String(fmt.Sprintf("🗑️ Paměť vymazána. Odstraněno %d uživatelů.", t.store.Clear()))
	return nil
}

// Functions returns the four user tools over one store as model functions
func Functions(store *Store, opts ...Option) []tools.Function {
	return []tools.Function{
		tools.MustFunction[SaveInput, schema.String](NewSaveTool(store, opts...)),
		tools.MustFunction[NoArgs, schema.String](NewListTool(store, opts...)),
		tools.MustFunction[NoArgs, schema.String](NewTotalTool(store, opts...)),
		tools.MustFunction[NoArgs, schema.String](NewClearTool(store, opts...)),
	}
}
