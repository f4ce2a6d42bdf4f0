package resolver

// Listings shared by the grouped and the flat hyphenated command forms.
const (
	projectList = `Project List:
1. Kitchen Renovation - $15,000 - active
2. Bathroom Remodel - $8,500 - active`

	materialsList = `Materials List:
1. Concrete - cubic-yard - $120.00
2. Steel Rebar - ton - $800.00
3. Lumber - board-foot - $3.50`

	inventoryStatus = `Inventory Status:
Concrete: 50.0 cubic-yard - Location: Site A
Steel Rebar: 5.0 ton - Location: Warehouse B
Lumber: 0 board-foot - Location: N/A`

	materialOrders = `Material Orders:
1. Concrete - 100.0 cubic-yard - ABC Supply Co - $12,000.00 - pending - Delivery: 2024-02-15
2. Steel Rebar - 5.0 ton - Steel Works - $4,000.00 - pending - Delivery: 2024-03-01`
)

// canned maps every fully spelled command to its fixed response.
var canned = map[string]string{
	"buildcli project list":        projectList,
	"buildcli materials list":      materialsList,
	"buildcli materials inventory": inventoryStatus,
	"buildcli project-list":        projectList,
	"buildcli project-status":      "Usage: buildcli project-status --project-id PROJECT_ID",
	"buildcli project-update":      "Usage: buildcli project-update --project-id PROJECT_ID [OPTIONS]",
	"buildcli project-phases":      "Usage: buildcli project-phases [OPTIONS] COMMAND [ARGS]...",
	"buildcli project-milestones":  "Usage: buildcli project-milestones [OPTIONS] COMMAND [ARGS]...",
	"buildcli materials-list":      materialsList,
	"buildcli materials-inventory": inventoryStatus,
	"buildcli materials-orders":    materialOrders,
	"buildcli materials-suppliers": "Usage: buildcli materials-suppliers [OPTIONS] COMMAND [ARGS]...",

	"buildcli --help": `Usage: buildcli [OPTIONS] COMMAND [ARGS]...

  Construction Management CLI System

Options:
  --help  Show this message and exit.

Commands:
  materials            Material management commands
  materials-add        Add a new material
  materials-inventory  Show inventory status
  materials-list       List all materials
  materials-order      Create a material order
  materials-orders     List all material orders
  materials-stock      Update material stock quantity
  materials-suppliers  Supplier management
  project              Project management commands
  project-create       Create a new project
  project-list         List all projects
  project-milestones   Project milestones management
  project-phases       Project phases management
  project-status       Show project status
  project-update       Update project details`,

	"buildcli project": `Usage: buildcli project [OPTIONS] COMMAND [ARGS]...

  Project management commands

Options:
  --help  Show this message and exit.

Commands:
  create      Create a new project
  list        List all projects
  milestones  Project milestones management
  phases      Project phases management
  status      Show project status
  update      Update project details`,

	"buildcli project --help": `Usage: buildcli project [OPTIONS] COMMAND [ARGS]...

  Project management commands

Commands:
  create      Create a new project
  list        List all projects
  milestones  Project milestones management
  phases      Project phases management
  status      Show project status
  update      Update project details`,

	"buildcli materials --help": `Usage: buildcli materials [OPTIONS] COMMAND [ARGS]...

  Material management commands

Commands:
  add        Add a new material
  inventory  Show inventory status
  list       List all materials
  suppliers  Supplier management`,

	"buildcli materials": `Usage: buildcli materials [OPTIONS] COMMAND [ARGS]...

  Material management commands

Options:
  --help  Show this message and exit.

Commands:
  add        Add a new material
  inventory  Show inventory status
  list       List all materials
  order      Create a material order
  orders     List all material orders
  stock      Update material stock quantity
  suppliers  Supplier management`,

	"buildcli materials suppliers --help": `Usage: buildcli materials suppliers [OPTIONS] COMMAND [ARGS]...

  Supplier management

Options:
  --help  Show this message and exit.

Commands:
  add   Add a new supplier
  list  List all suppliers`,

	"buildcli project phases --help": `Usage: buildcli project phases [OPTIONS] COMMAND [ARGS]...

  Project phases management

Options:
  --help  Show this message and exit.

Commands:
  add   Add a phase to a project
  list  List phases for a project`,

	"buildcli project milestones --help": `Usage: buildcli project milestones [OPTIONS] COMMAND [ARGS]...

  Project milestones management

Options:
  --help  Show this message and exit.

Commands:
  add       Add a milestone to a project
  complete  Mark milestone as completed
  list      List milestones for a project`,

	"buildcli project-create": `=== Create New Project ===
Project name: [Enter project name]
Budget (optional, press Enter to skip): [Enter budget or skip]
Start date YYYY-MM-DD (optional, press Enter to skip): [Enter date or skip]
Project location (optional, press Enter to skip): [Enter location or skip]

✅ Project created successfully!
Name: New Project
ID: 15
Budget: $50,000.00
Location: Construction Site
Start Date: 2024-01-15`,

	"buildcli materials-add": `=== Add New Material ===
Material name: [Enter material name]
Unit of measurement (e.g., cubic-yard, ton, piece): [Enter unit]
Cost per unit: [Enter cost]
Supplier name (optional, press Enter to skip): [Enter supplier or skip]

✅ Material added successfully!
Name: New Material
ID: 42
Unit: piece
Cost per unit: $25.00`,

	"buildcli materials-stock": `=== Update Stock ===
Available materials:
  1. Concrete (cubic-yard)
  2. Steel Rebar (ton)
  3. Lumber (board-foot)

Enter material ID: [Select material]
Enter quantity: [Enter amount]
Storage location: [Enter location]

✅ Stock updated successfully!
Material: Concrete
Quantity: 100.0 cubic-yard
Location: Site A`,

	"buildcli materials-order": `=== Create Material Order ===
Available materials:
  1. Concrete (cubic-yard) - $120.00
  2. Steel Rebar (ton) - $800.00
  3. Lumber (board-foot) - $3.50

Enter material ID: [Select material]
Enter quantity: [Enter amount]
Available suppliers:
  1. ABC Supply Co - 555-0123
  2. BuildMart - buildmart@email.com

Enter supplier ID: [Select supplier]
Delivery date (YYYY-MM-DD, optional): [Enter date or skip]

✅ Order created successfully!
Order ID: 7
Material: Concrete
Quantity: 50.0 cubic-yard
Supplier: ABC Supply Co
Total Cost: $6,000.00
Expected Delivery: 2024-02-15`,
}
