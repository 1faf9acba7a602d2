package astrolog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const prompt = "\n👤 Ty: "

var (
	wideRule   = strings.Repeat("-", 60)
	narrowRule = strings.Repeat("-", 40)
	headerRule = strings.Repeat("=", 60)
)

// REPL is the interactive console of the assistant
type REPL struct {
	assistant *Assistant
	in        io.Reader
	out       io.Writer
	logger    logrus.FieldLogger
}

// NewREPL returns a console reading lines from in and printing to out
func NewREPL(a *Assistant, in io.Reader, out io.Writer, l logrus.FieldLogger) *REPL {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &REPL{
		assistant: a,
		in:        in,
		out:       out,
		logger:    l,
	}
}

// Banner prints the greeting with the list of commands
func (r *REPL) Banner() {
	r.println(headerRule)
	r.println("🌟 OSOBNÍ ASTROLOG A NUMEROLOG 🌟")
	r.println(headerRule)
	r.println("\nZadej jméno a datum narození (dd.mm.rrrr)")
	r.println("Příklad: Marek 22.08.1990")
	r.println("\n📋 Příkazy:")
	r.println("  • seznam / list    - zobrazí všechny uložené osoby")
	r.println("  • součet / total   - celkový počet dní všech osob")
	r.println("  • vymazat / clear  - vymaže paměť")
	r.println("  • konec / exit     - ukončí program")
	r.println(wideRule)
}

// Run reads messages until an exit word, the end of input or a cancelled context
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			r.println("")
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		input := strings.TrimSpace(scanner.Text())
		if IsExit(input) {
			r.println("\n👋 Nashledanou!")
			return nil
		}
		if input == "" {
			continue
		}
		r.println("\n⏳ Zpracovávám...")
		if err := r.Handle(ctx, input); err != nil {
			r.logger.WithFields(logrus.Fields{
				"input": input,
				"route": Classify(input).String(),
			}).WithError(err).Error("turn failed")
			r.printf("❌ Chyba: %v\n", err)
		}
	}
}

// Handle answers one trimmed non empty message
func (r *REPL) Handle(ctx context.Context, input string) error {
	switch Classify(input) {
	case RouteAnalysis:
		r.println("🔮 Spouštím astrologickou analýzu...")
		astro, err := r.assistant.Logic(ctx, input)
		if err != nil {
			return err
		}
		name := FirstWord(input)
		r.printf("🌐 Hledám svátek pro: %s...\n", name)
		web, err := r.assistant.NameDay(ctx, NameDayQuestion(name))
		if err != nil {
			return err
		}
		r.println("\n🤖 Asistent (Astrologie):")
		r.println(narrowRule)
		r.println(astro)
		r.println("\n🤖 Asistent (Web):")
		r.println(narrowRule)
		r.println(web)
	case RouteNameDay:
		r.println("🌐 Spouštím vyhledávání na webu...")
		answer, err := r.assistant.NameDay(ctx, input)
		if err != nil {
			return err
		}
		r.printf("\n🤖 Asistent: %s\n", answer)
	default:
		answer, err := r.assistant.Logic(ctx, input)
		if err != nil {
			return err
		}
		r.printf("\n🤖 Asistent: %s\n", answer)
	}
	r.println(wideRule)
	return nil
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
