package resolver

import (
	"fmt"
	"maps"
	"slices"
)

// exactPrefix marks the names of rules generated from the canned table.
const exactPrefix = "exact:"

const (
	suppliersList = `Suppliers List:
1. ABC Supply Co - 555-0123
2. BuildMart - buildmart@email.com
3. Steel Works - steel@works.com`

	phasesList = `Phases for project: Kitchen Renovation
1. Foundation - 30 days - planned
2. Framing - 45 days - planned
3. Finishing - 60 days - planned`

	milestonesList = `Milestones for project: Kitchen Renovation
1. Foundation Complete - Target: 2024-02-15 - Status: completed
2. Roof Installation - Target: 2024-04-30 - Status: pending
3. Grand Opening - Target: 2024-08-01 - Status: pending`

	notRecognized = `Command not recognized: %s
Try "buildcli --help" for available commands`
)

// DefaultTable returns the buildcli rules. Creation prefixes come first,
// in the order the grouped commands are checked; the sub-dispatch on
// add/list/complete is flattened into separate rules under one prefix, so a
// command under the prefix that names none of them falls through to the
// exact-match entries.
func DefaultTable() Table {
	var (
		projectName   = QuotedAfter("create").OrDefault("New Project")
		materialName  = QuotedAfter("add").OrDefault("New Material")
		supplierName  = QuotedAfter("add").OrDefault("New Supplier")
		phaseName     = QuotedAfter("add").OrDefault("New Phase")
		milestoneName = QuotedAfter("add").OrDefault("New Milestone")
	)

	const (
		suppliers  = "buildcli materials suppliers"
		phases     = "buildcli project phases"
		milestones = "buildcli project milestones"
	)

	t := Table{
		{
			Name:    "project.create",
			Match:   Prefix("buildcli project create"),
			Respond: Created(projectName, "Created project: %s (ID: %d)\nBudget: $50,000.00"),
		},
		{
			Name:    "materials.add",
			Match:   Prefix("buildcli materials add"),
			Respond: Created(materialName, "Added material: %s (ID: %d)\nUnit: piece\nCost per unit: $10.00"),
		},
		{
			Name:    "materials.suppliers.add",
			Match:   All(Prefix(suppliers), Contains("add")),
			Respond: Created(supplierName, "Added supplier: %s (ID: %d)\nContact: 555-0123"),
		},
		{
			Name:    "materials.suppliers.list",
			Match:   All(Prefix(suppliers), Contains("list")),
			Respond: Static(suppliersList),
		},
		{
			Name:    "materials.orders",
			Match:   Exact("buildcli materials orders"),
			Respond: Static(materialOrders),
		},
		{
			Name:    "project.phases.add",
			Match:   All(Prefix(phases), Contains("add")),
			Respond: Created(phaseName, "Added phase: %s (ID: %d) to project Kitchen Renovation\nDuration: 30 days"),
		},
		{
			Name:    "project.phases.list",
			Match:   All(Prefix(phases), Contains("list")),
			Respond: Static(phasesList),
		},
		{
			Name:    "project.milestones.add",
			Match:   All(Prefix(milestones), Contains("add")),
			Respond: Created(milestoneName, "Added milestone: %s (ID: %d) to project Kitchen Renovation\nTarget date: 2024-06-01"),
		},
		{
			Name:    "project.milestones.list",
			Match:   All(Prefix(milestones), Contains("list")),
			Respond: Static(milestonesList),
		},
		{
			Name:    "project.milestones.complete",
			Match:   All(Prefix(milestones), Contains("complete")),
			Respond: Static("Milestone 'Foundation Complete' marked as completed"),
		},
	}

	for _, cmd := range slices.Sorted(maps.Keys(canned)) {
		t = append(t, Rule{
			Name:    exactPrefix + cmd,
			Match:   Exact(cmd),
			Respond: Static(canned[cmd]),
		})
	}
	return t
}

// Fallback is the response for commands no rule matches.
func Fallback(cmd string) string {
	return fmt.Sprintf(notRecognized, cmd)
}
