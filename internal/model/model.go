// Package model assembles the address book, fleet, package catalog, node
// list, scenario, and settings into the single immutable DataModel the
// routing model builder consumes.
package model

import (
	"fmt"

	"github.com/griffin-west/delivery-route-planner/internal/addressbook"
	"github.com/griffin-west/delivery-route-planner/internal/fleet"
	"github.com/griffin-west/delivery-route-planner/internal/nodes"
	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/griffin-west/delivery-route-planner/internal/scenario"
)

// DataModel is the single root of the in-memory routing problem. Everything
// else borrows from it via identifiers (street keys, vehicle ids, package
// ids, node indices); it never hands out owning references.
type DataModel struct {
	Addresses   *addressbook.Book
	Distances   addressbook.CostMap
	Vehicles    *fleet.Fleet
	Packages    *parcelcatalog.Catalog
	Nodes       []nodes.Node
	Scenario    scenario.Scenario
	Settings    scenario.Settings
	DepotStreet string
}

// New assembles a DataModel and validates the model-build invariants
// (day_end > day_start, capacity > 0, fleet non-empty, depot street known,
// every required vehicle id and package address resolvable). Bundled
// packages are not checked here; the catalog loader resolves them.
func New(
	addresses *addressbook.Book,
	vehicles *fleet.Fleet,
	packages *parcelcatalog.Catalog,
	depotStreet string,
	sc scenario.Scenario,
	settings scenario.Settings,
) (*DataModel, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if vehicles.Len() == 0 {
		return nil, fmt.Errorf("model: fleet must not be empty")
	}
	if _, ok := addresses.Get(depotStreet); !ok {
		return nil, fmt.Errorf("model: depot street %q not in address book", depotStreet)
	}

	for _, pkg := range packages.All() {
		if pkg.HasRequiredVehicle() {
			if _, ok := vehicles.Get(*pkg.RequiredVehicleID); !ok {
				return nil, fmt.Errorf("model: package %d requires unknown vehicle %d", pkg.ID, *pkg.RequiredVehicleID)
			}
		}
		if _, ok := addresses.Get(pkg.Address); !ok {
			return nil, fmt.Errorf("model: package %d references unknown address %q", pkg.ID, pkg.Address)
		}
	}

	dm := &DataModel{
		Addresses:   addresses,
		Distances:   addresses.DistanceMap(),
		Vehicles:    vehicles,
		Packages:    packages,
		Nodes:       nodes.Build(packages, depotStreet),
		Scenario:    sc,
		Settings:    settings,
		DepotStreet: depotStreet,
	}
	return dm, nil
}
