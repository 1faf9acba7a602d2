package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// TerminalHook prints entries as coloured single lines
type TerminalHook struct {
	mtx    sync.Mutex
	out    io.Writer
	levels []logrus.Level
}

// NewTerminalHook returns a hook firing for entries at or above the level
func NewTerminalHook(out io.Writer, level logrus.Level) *TerminalHook {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		if l <= level {
			levels = append(levels, l)
		}
	}
	return &TerminalHook{
		out:    out,
		levels: levels,
	}
}

func (h *TerminalHook) Levels() []logrus.Level {
	return h.levels
}

func (h *TerminalHook) Fire(entry *logrus.Entry) error {
	line := Format(entry)
	h.mtx.Lock()
	defer h.mtx.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

// Format renders an entry as "15:04:05 LEVEL message key=value ..."
func Format(entry *logrus.Entry) string {
	var b strings.Builder
	b.WriteString(entry.Time.Format("15:04:05"))
	b.WriteByte(' ')
	level := fmt.Sprintf("%-7s", strings.ToUpper(entry.Level.String()))
	switch {
	case entry.Level <= logrus.ErrorLevel:
		level = color.RedString(level)
	case entry.Level == logrus.WarnLevel:
		level = color.YellowString(level)
	case entry.Level == logrus.DebugLevel, entry.Level == logrus.TraceLevel:
		level = color.HiBlackString(level)
	default:
		level = color.CyanString(level)
	}
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(color.MagentaString(k))
		b.WriteByte('=')
		fmt.Fprint(&b, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.String()
}
