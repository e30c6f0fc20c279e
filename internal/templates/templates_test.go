package templates_test

import (
	"slices"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/templates"
)

func TestBlocks_OrderAndShape(t *testing.T) {
	t.Parallel()

	got := templates.Blocks()
	wantNames := []string{"", "Web", "", "", "Slack", "Telegram", "Email"}
	if len(got) != len(wantNames) {
		t.Fatalf("want %d blocks, got %d", len(wantNames), len(got))
	}
	for i, b := range got {
		if b.Name != wantNames[i] {
			t.Fatalf("block %d: got %q, want %q", i, b.Name, wantNames[i])
		}
	}
	if f := got[0].Fields[0]; f.Name != "grouping_id_template" || f.Label != "Grouping" || f.Height != templates.HeightTall {
		t.Fatalf("first field: %+v", f)
	}
	if f := got[6].Fields[1]; f.Name != "email_message_template" || f.Height != templates.HeightTall {
		t.Fatalf("last field: %+v", f)
	}
}

func TestBlocks_ReturnsCopy(t *testing.T) {
	t.Parallel()

	b := templates.Blocks()
	b[1].Fields[0].Label = "changed"
	if templates.Blocks()[1].Fields[0].Label != "Title" {
		t.Fatalf("table must not be mutable from outside")
	}
}

func TestForChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		slack, telegram bool
		want            int
		absent          []string
	}{
		{"none", false, false, 5, []string{"Slack", "Telegram"}},
		{"slack_only", true, false, 6, []string{"Telegram"}},
		{"both", true, true, 7, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := templates.ForChannels(tt.slack, tt.telegram)
			if len(got) != tt.want {
				t.Fatalf("want %d blocks, got %d", tt.want, len(got))
			}
			for _, b := range got {
				if slices.Contains(tt.absent, b.Name) {
					t.Fatalf("block %s must be hidden", b.Name)
				}
			}
		})
	}
}

func TestLookupAndIsKnown(t *testing.T) {
	t.Parallel()

	f, block, ok := templates.Lookup("slack_message_template")
	if !ok || block != "Slack" || f.Label != "Message" {
		t.Fatalf("lookup: %+v %q %v", f, block, ok)
	}
	if !templates.IsKnown(templates.RouteTemplate) {
		t.Fatalf("route_template must be known")
	}
	if templates.IsKnown("unknown_template") {
		t.Fatalf("unknown name must be rejected")
	}
	if n := len(templates.Names()); n != 17 {
		t.Fatalf("want 17 template names, got %d", n)
	}
}
