package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, cmd string) []string {
	t.Helper()
	r := New(WithIDGenerator(FixedID(42)))
	lines, err := r.Resolve(context.Background(), cmd)
	require.NoError(t, err)
	return lines
}

func TestResolveResponses(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want []string
	}{
		{
			name: "create with quoted name",
			cmd:  `buildcli project create "Kitchen Remodel"`,
			want: []string{"Created project: Kitchen Remodel (ID: 42)", "Budget: $50,000.00"},
		},
		{
			name: "create without quotes uses default name",
			cmd:  "buildcli project create",
			want: []string{"Created project: New Project (ID: 42)", "Budget: $50,000.00"},
		},
		{
			name: "create with trailing flags",
			cmd:  `buildcli project create "My Project" --budget 100000`,
			want: []string{"Created project: My Project (ID: 42)", "Budget: $50,000.00"},
		},
		{
			name: "quoted name must follow the keyword directly",
			cmd:  `buildcli project create --name "Deck"`,
			want: []string{"Created project: New Project (ID: 42)", "Budget: $50,000.00"},
		},
		{
			name: "empty quotes fall back to default",
			cmd:  `buildcli project create ""`,
			want: []string{"Created project: New Project (ID: 42)", "Budget: $50,000.00"},
		},
		{
			name: "material add",
			cmd:  `buildcli materials add "Drywall"`,
			want: []string{"Added material: Drywall (ID: 42)", "Unit: piece", "Cost per unit: $10.00"},
		},
		{
			name: "supplier add default",
			cmd:  "buildcli materials suppliers add",
			want: []string{"Added supplier: New Supplier (ID: 42)", "Contact: 555-0123"},
		},
		{
			name: "supplier list",
			cmd:  "buildcli materials suppliers list",
			want: []string{
				"Suppliers List:",
				"1. ABC Supply Co - 555-0123",
				"2. BuildMart - buildmart@email.com",
				"3. Steel Works - steel@works.com",
			},
		},
		{
			name: "materials orders",
			cmd:  "buildcli materials orders",
			want: []string{
				"Material Orders:",
				"1. Concrete - 100.0 cubic-yard - ABC Supply Co - $12,000.00 - pending - Delivery: 2024-02-15",
				"2. Steel Rebar - 5.0 ton - Steel Works - $4,000.00 - pending - Delivery: 2024-03-01",
			},
		},
		{
			name: "phase add",
			cmd:  `buildcli project phases add "Roofing" --project-id 1`,
			want: []string{"Added phase: Roofing (ID: 42) to project Kitchen Renovation", "Duration: 30 days"},
		},
		{
			name: "milestone add beats complete",
			cmd:  `buildcli project milestones add "complete walkthrough"`,
			want: []string{"Added milestone: complete walkthrough (ID: 42) to project Kitchen Renovation", "Target date: 2024-06-01"},
		},
		{
			name: "milestone complete",
			cmd:  "buildcli project milestones complete --milestone-id 1",
			want: []string{"Milestone 'Foundation Complete' marked as completed"},
		},
		{
			name: "materials list",
			cmd:  "buildcli materials list",
			want: []string{
				"Materials List:",
				"1. Concrete - cubic-yard - $120.00",
				"2. Steel Rebar - ton - $800.00",
				"3. Lumber - board-foot - $3.50",
			},
		},
		{
			name: "flat form shares listing",
			cmd:  "buildcli project-list",
			want: []string{"Project List:", "1. Kitchen Renovation - $15,000 - active", "2. Bathroom Remodel - $8,500 - active"},
		},
		{
			name: "surrounding whitespace is ignored",
			cmd:  "   buildcli project-status  ",
			want: []string{"Usage: buildcli project-status --project-id PROJECT_ID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.cmd))
		})
	}
}

func TestUnrecognizedCommandsYieldTwoLines(t *testing.T) {
	for _, cmd := range []string{
		"ls -la",
		"buildcli",
		"buildcli materials suppliers",
		"buildcli project phases",
		"BUILDCLI --help",
		"buildcli materials orders --all",
	} {
		t.Run(cmd, func(t *testing.T) {
			lines := resolve(t, cmd)
			require.Len(t, lines, 2)
			assert.Equal(t, "Command not recognized: "+cmd, lines[0])
			assert.Equal(t, `Try "buildcli --help" for available commands`, lines[1])
		})
	}
}

func TestSubcommandHelpFallsThroughToCannedTable(t *testing.T) {
	for _, cmd := range []string{
		"buildcli materials suppliers --help",
		"buildcli project phases --help",
		"buildcli project milestones --help",
	} {
		t.Run(cmd, func(t *testing.T) {
			lines := resolve(t, cmd)
			require.NotEmpty(t, lines)
			assert.True(t, strings.HasPrefix(lines[0], "Usage: "+cmd[:len(cmd)-len(" --help")]), lines[0])
		})
	}
}

func TestBlankLinesAreStripped(t *testing.T) {
	r := New()
	for _, cmd := range r.Commands() {
		raw := r.Respond(cmd)
		lines, err := r.Resolve(context.Background(), cmd)
		require.NoError(t, err)
		for _, l := range lines {
			assert.NotEmpty(t, strings.TrimSpace(l), "%s produced a blank line", cmd)
		}
		if strings.Contains(raw, "\n\n") {
			assert.Less(t, len(lines), strings.Count(raw, "\n")+1, cmd)
		}
	}

	help := resolve(t, "buildcli --help")
	assert.Equal(t, "Usage: buildcli [OPTIONS] COMMAND [ARGS]...", help[0])
	assert.Equal(t, "  Construction Management CLI System", help[1])
	assert.Equal(t, "Options:", help[2])
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "  b", "\tc"}, SplitLines("a\n\n  b\n   \n\tc"))
	assert.Nil(t, SplitLines(""))
	assert.Nil(t, SplitLines("\n \n"))
}

func TestPrecedenceOrder(t *testing.T) {
	names := DefaultTable().Names()
	assert.Equal(t, []string{
		"project.create",
		"materials.add",
		"materials.suppliers.add",
		"materials.suppliers.list",
		"materials.orders",
		"project.phases.add",
		"project.phases.list",
		"project.milestones.add",
		"project.milestones.list",
		"project.milestones.complete",
	}, names[:10])
	for _, n := range names[10:] {
		assert.True(t, strings.HasPrefix(n, exactPrefix), n)
	}
}

func TestPrefixRuleBeatsExactEntry(t *testing.T) {
	table := Table{
		{Name: "prefix", Match: Prefix("buildcli project"), Respond: Static("from prefix")},
		{Name: "exact", Match: Exact("buildcli project"), Respond: Static("from exact")},
	}
	r := New(WithTable(table))
	assert.Equal(t, "from prefix", r.Respond("buildcli project"))
}

func TestCommandsListsCannedVocabulary(t *testing.T) {
	cmds := New().Commands()
	assert.Len(t, cmds, len(canned))
	assert.IsNonDecreasing(t, cmds)
	assert.Contains(t, cmds, "buildcli --help")
	assert.Contains(t, cmds, "buildcli materials-suppliers")
	assert.NotContains(t, cmds, "buildcli project create")
}

func TestResolveHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Resolve(ctx, "buildcli --help")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandomIDsStayInRange(t *testing.T) {
	ids := RandomIDs()
	for i := 0; i < 500; i++ {
		id := ids.Intn(maxID)
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, maxID)
	}
}

// sequence hands out IDs in order, wrapping around.
type sequence struct {
	ids  []int
	next int
}

func (s *sequence) Intn(n int) int {
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return FixedID(id).Intn(n)
}

func TestSequenceWraps(t *testing.T) {
	seq := &sequence{ids: []int{7, 250, -1}}
	assert.Equal(t, 7, seq.Intn(100))
	assert.Equal(t, 50, seq.Intn(100))
	assert.Equal(t, 99, seq.Intn(100))
	assert.Equal(t, 7, seq.Intn(100))

	r := New(WithIDGenerator(&sequence{ids: []int{1, 2}}))
	first := SplitLines(r.Respond(`buildcli materials suppliers add "Acme"`))
	second := SplitLines(r.Respond(`buildcli materials suppliers add "Acme"`))
	assert.Equal(t, "Added supplier: Acme (ID: 1)", first[0])
	assert.Equal(t, "Added supplier: Acme (ID: 2)", second[0])
}
