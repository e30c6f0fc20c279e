package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

// maxDraftLine — предел длины одной строки JSONL.
const maxDraftLine = 10 << 20

// Rejection — отклонённая строка входа (нумерация с 1).
type Rejection struct {
	Line int
	Err  error
}

// Summary — итог пакетной проверки черновиков.
type Summary struct {
	Valid    int
	Invalid  int
	Rejected []Rejection
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

func (s *Summary) reject(line int, err error) {
	s.Invalid++
	s.Rejected = append(s.Rejected, Rejection{Line: line, Err: err})
}

// emitDraft — канонический JSON черновика одной строкой.
func emitDraft(w io.Writer, draft any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(draft)
}

// ValidateJSONLStream — построчная проверка JSONL. Валидные черновики уходят
// в w в каноническом виде, невалидные попадают в Summary.Rejected и не
// прерывают обработку. Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.RouteValidator, r io.Reader, w io.Writer) (Summary, error) {
	var sum Summary

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxDraftLine)

	for line := 1; sc.Scan(); line++ {
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		draft, err := ValidateRouteDraftFromJSON(ctx, validator, raw)
		if err != nil {
			sum.reject(line, err)
			continue
		}
		if err := emitDraft(w, draft); err != nil {
			return sum, fmt.Errorf("write line %d: %w", line, err)
		}
		sum.Valid++
	}
	if err := sc.Err(); err != nil {
		return sum, fmt.Errorf("read drafts: %w", err)
	}
	return sum, nil
}
