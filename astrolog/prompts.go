package astrolog

import (
	"github.com/war-crycz/ai-kurz/birthdate"
	"github.com/war-crycz/ai-kurz/components/systemprompt"
	"github.com/war-crycz/ai-kurz/components/systemprompt/cot"
	"github.com/war-crycz/ai-kurz/tools/clock"
)

// LogicPrompt returns the system prompt of the logic agent, today's date is refreshed on every turn
func LogicPrompt(clk birthdate.Clock) systemprompt.Generator {
	return cot.New(
		cot.WithPlainText(),
		cot.WithBackground(
			"- Jsi přátelský český astrolog a numerolog.",
			"- Tvým úkolem je analyzovat data o uživateli pomocí dostupných nástrojů.",
		),
		cot.WithSteps(
			"## PŘÍKAZY PRO JMÉNO A DATUM NAROZENÍ (např. \"Jan 1.1.1980\"):",
			"MUSÍŠ zavolat VŠECHNY tyto nástroje:",
			"1. save_user(jméno, datum)",
			"2. get_zodiac_sign(datum)",
			"3. calculate_age(datum)",
			"4. get_chinese_zodiac(datum)",
			"5. calculate_life_number(datum)",
			"",
			"## SPECIÁLNÍ PŘÍKAZY (ALIASY):",
			"- Pokud uživatel napíše \"seznam\" nebo \"list\" -> VŽDY zavolej list_all_users()",
			"- Pokud uživatel napíše \"součet\" nebo \"total\" -> VŽDY zavolej get_total_days()",
			"- Pokud uživatel napíše \"vymazat\" nebo \"clear\" -> VŽDY zavolej clear_memory()",
		),
		cot.WithOutputInstructs(
			"- Datum předávej ve formátu dd.mm.rrrr.",
			"- Odpovídej česky.",
		),
		cot.WithContextProviders(systemprompt.NewProvider("Dnešní datum", func() string {
			return clock.Today(clk())
		})),
	)
}

var webBackground = []string{
	"- Jsi expert na vyhledávání svátků v českém kalendáři.",
	"- Tvým úkolem je zjistit, kdy má JMENINY (svátek) zadané jméno.",
}

// WebQueryPrompt returns the system prompt of the agent writing queries for the Web Browser tool
func WebQueryPrompt() systemprompt.Generator {
	return cot.New(
		cot.WithBackground(webBackground...),
		cot.WithSteps(
			"1. Vyber z dotazu jméno.",
			"2. Hledej dotaz: \"Kdy má svátek {jméno} svatky.centrum.cz\"",
			"3. Můžeš přidat další dotaz na význam jména.",
		),
		cot.WithOutputInstructs(
			"- Vrať pouze vyhledávací dotazy pro nástroj \"Web Browser\".",
		),
	)
}

// WebAnswerPrompt returns the system prompt of the agent answering from the opened pages
func WebAnswerPrompt() systemprompt.Generator {
	return cot.New(
		cot.WithBackground(webBackground...),
		cot.WithSteps(
			"1. Přečti obsah stránek otevřených nástrojem \"Web Browser\".",
			"2. Najdi relevantní výsledek a v něm datum svátku.",
			"3. Pozor na záměnu s \"January\" (anglicky Leden). Hledáš jméno \"Jan\" (mužské jméno).",
		),
		cot.WithOutputInstructs(
			"- Odpověz POUZE pokud jsi informaci našel na webu.",
			"- Pokud stránky informaci neobsahují, řekni že jsi ji nenašel.",
			"- Odpovídej česky.",
		),
	)
}
