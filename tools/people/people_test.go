package people

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func TestNewUser(t *testing.T) {
	u := NewUser("Marek", "19.10.1990", fixedClock())
	assert.Equal(t, "Marek", u.Name)
	assert.Equal(t, "19.10.1990", u.BirthDate)
	assert.Equal(t, 13149, u.DaysAlive)
	assert.NotEmpty(t, u.ID)

	u = NewUser("Jana", "5.3", fixedClock())
	assert.Equal(t, "5.3", u.BirthDate)
	assert.Zero(t, u.DaysAlive)
}

func TestStoreConcurrentSave(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Save(User{Name: "x", DaysAlive: 2})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, store.Len())
	assert.Equal(t, 100, store.TotalDays())
	assert.Equal(t, 50, store.Clear())
	assert.Zero(t, store.Len())
	assert.Zero(t, store.Clear())
}

func run(t *testing.T, fn tools.Function, args string) string {
	t.Helper()
	ret, err := fn.Call(context.Background(), args)
	require.NoError(t, err)
	return ret
}

func TestTools(t *testing.T) {
	store := NewStore()
	fns := Functions(store, WithClock(fixedClock))
	require.Len(t, fns, 4)
	save, list, total, clr := fns[0], fns[1], fns[2], fns[3]
	assert.Equal(t, "save_user", save.Title())
	assert.Equal(t, "list_all_users", list.Title())
	assert.Equal(t, "get_total_days", total.Title())
	assert.Equal(t, "clear_memory", clr.Title())

	assert.Equal(t, "📭 Paměť je prázdná. Zatím nebyl uložen žádný uživatel.", run(t, list, ""))
	assert.Equal(t, "📭 Paměť je prázdná. Nelze spočítat součet.", run(t, total, "{}"))

	assert.Equal(t, "✅ Uloženo: Marek, narozen/a 19.10.1990 (13149 dní)",
		run(t, save, `{"name":"Marek","birth_date":"19.10.1990"}`))
	assert.Equal(t, "✅ Uloženo: Jan, narozen/a 22.12.1990 (13085 dní)",
		run(t, save, `{"name":"Jan","birth_date":"22.12.1990"}`))

	assert.Equal(t, "📋 Uložení uživatelé (2):\n  1. Marek - 19.10.1990 (13149 dní)\n  2. Jan - 22.12.1990 (13085 dní)\n", run(t, list, "{}"))
	assert.Equal(t, "📊 Celkem 2 uživatelů = 26 234 dní dohromady!", run(t, total, "{}"))

	assert.Equal(t, "🗑️ Paměť vymazána. Odstraněno 2 uživatelů.", run(t, clr, "{}"))
	assert.Zero(t, store.Len())
	assert.Equal(t, "🗑️ Paměť vymazána. Odstraněno 0 uživatelů.", run(t, clr, "{}"))
}

func TestSaveToolHooks(t *testing.T) {
	var saved []string
	tool := NewSaveTool(NewStore(), WithClock(fixedClock), WithToolOptions(
		tools.WithEndHook(func(_ context.Context, _ tools.AnonymousTool, in any, _ any) {
			saved = append(saved, in.(*SaveInput).Name)
		}),
	))
	var out schema.String
	require.NoError(t, tools.Run[SaveInput, schema.String](context.Background(), tool, NewSaveInput("Eva", "1.1.2000"), &out))
	assert.Equal(t, []string{"Eva"}, saved)
	assert.Contains(t, out.String(), "narozen/a 01.01.2000")
}
