// Package generic provides provider-neutral node kinds.
package generic

import "github.com/matzehuels/archdraw/pkg/diagram"

const provider = "generic"

var (
	// Blank is an unstyled placeholder.
	Blank = diagram.Kind{Provider: provider, Category: "blank", Name: "Blank", Shape: "box", FillColor: "white"}

	// Firewall is a network filter.
	Firewall = diagram.Kind{Provider: provider, Category: "network", Name: "Firewall", Shape: "box", FillColor: "#F8CECC"}

	// Rack is a physical server rack.
	Rack = diagram.Kind{Provider: provider, Category: "compute", Name: "Rack", Shape: "box3d", FillColor: "#E1E1E1"}

	// Database is a generic database.
	Database = diagram.Kind{Provider: provider, Category: "database", Name: "SQL", Shape: "cylinder", FillColor: "#DAE8FC"}
)

// Kinds returns every kind in this package.
func Kinds() []diagram.Kind {
	return []diagram.Kind{Blank, Firewall, Rack, Database}
}
