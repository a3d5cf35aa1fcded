package catalog

import (
	"fmt"
	"strings"
)

// LoadError - ошибка чтения каталога. Приложение без каталога не стартует,
// поэтому повторять загрузку при такой ошибке бессмысленно.
type LoadError struct {
	Line    int      // строка CSV (с 1), 0 - ошибка не привязана к строке
	Columns []string // проблемные колонки
	Err     error    // e.ErrCatalogUnreadable, e.ErrMissingColumns или e.ErrInvalidNumeric
}

func (l *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("catalog load")
	if l.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", l.Line)
	}
	if len(l.Columns) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(l.Columns, ", "))
	}
	fmt.Fprintf(&b, ": %v", l.Err)

	return b.String()
}

func (l *LoadError) Unwrap() error {
	return l.Err
}
