package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

// InputFormat — формат входа пакетной проверки.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// DetectFormat — формат по расширению файла; всё, кроме .jsonl, считается JSON.
func DetectFormat(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateStream — проверка одного JSON-черновика или потока JSONL.
// Для одиночного JSON ошибка черновика возвращается как ошибка вызова.
func ValidateStream(ctx context.Context, validator ports.RouteValidator, r io.Reader, format InputFormat, w io.Writer) (Summary, error) {
	switch format {
	case FormatJSONL:
		return ValidateJSONLStream(ctx, validator, r, w)
	case FormatJSON:
		var sum Summary
		raw, err := io.ReadAll(r)
		if err != nil {
			return sum, fmt.Errorf("read draft: %w", err)
		}
		draft, err := ValidateRouteDraftFromJSON(ctx, validator, raw)
		if err != nil {
			sum.reject(1, err)
			return sum, err
		}
		if err := emitDraft(w, draft); err != nil {
			return sum, fmt.Errorf("write draft: %w", err)
		}
		sum.Valid = 1
		return sum, nil
	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// ValidateFile — ValidateStream по файлу; FormatAuto определяется по расширению.
func ValidateFile(ctx context.Context, validator ports.RouteValidator, path string, format InputFormat, w io.Writer) (Summary, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open drafts: %w", err)
	}
	defer f.Close()
	return ValidateStream(ctx, validator, f, format, w)
}
