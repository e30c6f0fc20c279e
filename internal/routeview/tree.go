package routeview

import (
	"fmt"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/treeview"
)

// BuildTree — дерево конфигурации интеграции: заголовок, группа маршрутов, добавление маршрута.
// onToggle (может быть nil) получает id маршрута при сворачивании/разворачивании.
func BuildTree(in *domain.Integration, counters *domain.Counters, views []RouteView, onToggle func(routeID string)) []treeview.Element {
	header := treeview.Item{
		CustomIcon: "info-circle",
		Expanded:   integrationHeader(in, counters),
	}

	items := make([]treeview.Item, 0, len(views))
	for _, v := range views {
		v := v
		it := treeview.Item{
			Expanded:    expandedRoute(v),
			Collapsed:   collapsedRoute(v),
			Collapsible: true,
		}
		if onToggle != nil {
			it.OnStateChange = func() { onToggle(v.ID) }
		}
		items = append(items, it)
	}

	add := treeview.Item{CustomIcon: "plus", Expanded: "Add route"}

	return []treeview.Element{
		treeview.Single(header),
		treeview.Group(items...),
		treeview.Single(add),
	}
}

func integrationHeader(in *domain.Integration, counters *domain.Counters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", in.VerbalName, in.Kind)
	if counters != nil {
		fmt.Fprintf(&b, "  alerts=%d groups=%d", counters.AlertsCount, counters.AlertGroupsCount)
	}
	if in.InboundEmail != "" {
		fmt.Fprintf(&b, "\nInbound email: %s", in.InboundEmail)
	}
	return b.String()
}

func collapsedRoute(v RouteView) string {
	if v.TemplatePreview == "" {
		return string(v.Wording)
	}
	return fmt.Sprintf("%s %s", v.Wording, v.TemplatePreview)
}

func expandedRoute(v RouteView) string {
	var b strings.Builder
	b.WriteString(string(v.Wording))
	fmt.Fprintf(&b, " [%s]%s", v.ID, buttonMarks(v.Buttons))
	if v.ShowTemplate {
		fmt.Fprintf(&b, "\nRouting template: %s", v.TemplatePreview)
	}
	if v.GroupingHint != "" {
		fmt.Fprintf(&b, "\n%s", v.GroupingHint)
	}
	if v.ChatOps != nil {
		var chats []string
		if v.ChatOps.Slack != nil {
			chats = append(chats, fmt.Sprintf("slack=%t", *v.ChatOps.Slack))
		}
		if v.ChatOps.Telegram != nil {
			chats = append(chats, fmt.Sprintf("telegram=%t", *v.ChatOps.Telegram))
		}
		fmt.Fprintf(&b, "\nPublish to ChatOps: %s", strings.Join(chats, " "))
	}
	switch {
	case v.EscalationChainName != "":
		fmt.Fprintf(&b, "\nEscalation chain: %s (%s)", v.EscalationChainName, v.EscalationChainID)
	case v.EscalationChainID != "":
		fmt.Fprintf(&b, "\nEscalation chain: %s", v.EscalationChainID)
	default:
		b.WriteString("\nEscalation chain: not selected")
	}
	return b.String()
}

func buttonMarks(bs ButtonSet) string {
	var marks []string
	if bs.MoveUp {
		marks = append(marks, "↑")
	}
	if bs.MoveDown {
		marks = append(marks, "↓")
	}
	if bs.Delete {
		marks = append(marks, "✕")
	}
	if len(marks) == 0 {
		return ""
	}
	return " " + strings.Join(marks, " ")
}
