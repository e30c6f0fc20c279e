// Package treeview — состояние сворачиваемого дерева конфигурации интеграции
// и его текстовая отрисовка.
package treeview

import (
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	IconExpanded  = "angle-down"
	IconCollapsed = "angle-right"
)

// Item — элемент дерева. Expanded/Collapsed — представления в развёрнутом и свёрнутом виде.
type Item struct {
	CustomIcon    string
	Expanded      string
	Collapsed     string
	Collapsible   bool
	StartExpanded bool
	OnStateChange func()
}

// Element — одиночный элемент или группа элементов.
type Element struct {
	items []Item
	group bool
}

// Single — одиночный элемент.
func Single(it Item) Element { return Element{items: []Item{it}} }

// Group — группа элементов, каждый сворачивается отдельно.
func Group(items ...Item) Element { return Element{items: items, group: true} }

// IsGroup — элемент является группой.
func (e Element) IsGroup() bool { return e.group }

// Len — число элементов (1 для одиночного).
func (e Element) Len() int { return len(e.items) }

// Tree — дерево элементов и флаги развёрнутости по позициям.
type Tree struct {
	elements []Element
	expanded [][]bool
}

// New — дерево в начальном состоянии.
func New(elements ...Element) *Tree {
	t := &Tree{}
	t.Reset(elements...)
	return t
}

// Reset — заменяет элементы и пересчитывает начальное состояние:
// несворачиваемые всегда развёрнуты, остальные по StartExpanded.
func (t *Tree) Reset(elements ...Element) {
	t.elements = elements
	t.expanded = make([][]bool, len(elements))
	for i, el := range elements {
		row := make([]bool, len(el.items))
		for j, it := range el.items {
			row[j] = !it.Collapsible || it.StartExpanded
		}
		t.expanded[i] = row
	}
}

// Expanded — развёрнут ли элемент (i — позиция в дереве, j — позиция в группе, 0 для одиночного).
func (t *Tree) Expanded(i, j int) bool {
	if !t.valid(i, j) {
		return false
	}
	return t.expanded[i][j]
}

// Toggle — переключает сворачиваемый элемент и вызывает его OnStateChange.
// Для несворачиваемого ничего не делает.
func (t *Tree) Toggle(i, j int) error {
	if !t.valid(i, j) {
		return fmt.Errorf("%w: tree position %d/%d out of range", domain.ErrValidation, i, j)
	}
	it := t.elements[i].items[j]
	if !it.Collapsible {
		return nil
	}
	// Колбэк вызывается для любого j, в том числе для первого элемента группы.
	if it.OnStateChange != nil {
		it.OnStateChange()
	}
	t.expanded[i][j] = !t.expanded[i][j]
	return nil
}

// Icon — имя иконки элемента.
func (t *Tree) Icon(i, j int) string {
	if !t.valid(i, j) {
		return ""
	}
	if icon := t.elements[i].items[j].CustomIcon; icon != "" {
		return icon
	}
	if t.expanded[i][j] {
		return IconExpanded
	}
	return IconCollapsed
}

func (t *Tree) valid(i, j int) bool {
	return i >= 0 && i < len(t.elements) && j >= 0 && j < len(t.elements[i].items)
}

var glyphs = map[string]string{
	IconExpanded:  "▾",
	IconCollapsed: "▸",
	"plus":        "+",
	"check":       "✓",
	"info-circle": "i",
	"bell":        "!",
}

func glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}

// Render — рисует видимое представление каждого элемента с глифом иконки.
// Многострочные представления выравниваются под первой строкой.
func (t *Tree) Render(w io.Writer) error {
	r := lipgloss.NewRenderer(w)
	iconStyle := r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	groupStyle := r.NewStyle().PaddingLeft(2)

	var b strings.Builder
	for i, el := range t.elements {
		for j, it := range el.items {
			view := it.Collapsed
			if t.expanded[i][j] {
				view = it.Expanded
			}
			line := lipgloss.JoinHorizontal(lipgloss.Top, iconStyle.Render(glyph(t.Icon(i, j)))+" ", view)
			if el.group {
				line = groupStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
