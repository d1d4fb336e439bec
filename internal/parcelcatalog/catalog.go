// Package parcelcatalog holds the packages to be delivered: their
// destination, optional time window, optional required vehicle, and
// same-vehicle bundling relation. It is also responsible for recording the
// solution extractor's result fields once a route has been found.
package parcelcatalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
)

// Package is one parcel in the catalog.
type Package struct {
	ID      int
	Address string

	WeightKG            *float64
	Availability        *routingtime.Time
	Deadline            *routingtime.Time
	RequiredVehicleID   *int
	BundledPackages     []*Package

	// Result fields. Populated only by the solution extractor; nil/unset
	// until a solve has run.
	ShippedAt   *routingtime.Time
	DeliveredAt *routingtime.Time
	VehicleUsed *int
}

// HasRequiredVehicle reports whether the package restricts delivery to a
// single vehicle. This is an explicit presence check, not a zero test: a
// required vehicle id of 1 (zero-based index 0) must restrict routing just
// as any other id would. See DESIGN.md for the source behavior this
// deliberately diverges from.
func (p *Package) HasRequiredVehicle() bool {
	return p.RequiredVehicleID != nil
}

// Catalog is the ordered set of packages, indexed by id.
type Catalog struct {
	order    []int
	byID     map[int]*Package
}

// New builds a Catalog from already-parsed packages (order is catalog
// iteration order, not necessarily sorted by id).
func New(order []int, byID map[int]*Package) *Catalog {
	return &Catalog{order: order, byID: byID}
}

// All returns the packages in catalog order.
func (c *Catalog) All() []*Package {
	out := make([]*Package, len(c.order))
	for i, id := range c.order {
		out[i] = c.byID[id]
	}
	return out
}

// Len returns the number of packages.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get returns the package with the given id.
func (c *Catalog) Get(id int) (*Package, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// rawRow is the intermediate, pre-resolution form of one CSV row.
type rawRow struct {
	id                int
	address           string
	weightKG          *float64
	availability      *routingtime.Time
	deadline          *routingtime.Time
	requiredVehicleID *int
	linkedIDs         []int
}

// LoadCSV reads a package CSV: header
// "id,address,weight_kg,availability,deadline,vehicle_requirement,linked_packages".
// Blank numeric/time cells are "unset". linked_packages is a comma-separated
// list of package ids, possibly empty. Bundling is resolved in a second
// pass so that forward references (a package linking to one defined later
// in the file) work.
func LoadCSV(path string, knownAddresses func(street string) bool, knownVehicleIDs func(id int) bool) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parcelcatalog: open %s: %w", path, err)
	}
	defer f.Close()
	return parseCSV(f, knownAddresses, knownVehicleIDs)
}

func parseCSV(r io.Reader, knownAddresses func(string) bool, knownVehicleIDs func(int) bool) (*Catalog, error) {
	reader := csv.NewReader(bufio.NewReader(stripBOM(r)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("parcelcatalog: read header: %w", err)
	}
	if len(header) != 7 {
		return nil, fmt.Errorf("parcelcatalog: header has %d columns, want 7", len(header))
	}

	rows := make([]rawRow, 0, 64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parcelcatalog: read row: %w", err)
		}
		row, err := parseRow(record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	// Pass 1: build every package.
	order := make([]int, 0, len(rows))
	byID := make(map[int]*Package, len(rows))
	for _, row := range rows {
		if _, dup := byID[row.id]; dup {
			return nil, fmt.Errorf("parcelcatalog: duplicate package id %d", row.id)
		}
		if knownAddresses != nil && !knownAddresses(row.address) {
			return nil, fmt.Errorf("parcelcatalog: package %d references unknown address %q", row.id, row.address)
		}
		if row.requiredVehicleID != nil && knownVehicleIDs != nil && !knownVehicleIDs(*row.requiredVehicleID) {
			return nil, fmt.Errorf("parcelcatalog: package %d requires unknown vehicle %d", row.id, *row.requiredVehicleID)
		}
		byID[row.id] = &Package{
			ID:                row.id,
			Address:           row.address,
			WeightKG:          row.weightKG,
			Availability:      row.availability,
			Deadline:          row.deadline,
			RequiredVehicleID: row.requiredVehicleID,
		}
		order = append(order, row.id)
	}

	// Pass 2: resolve bundling links by object. Self-references are a
	// tolerated no-op.
	for _, row := range rows {
		pkg := byID[row.id]
		for _, linkedID := range row.linkedIDs {
			if linkedID == row.id {
				continue
			}
			peer, ok := byID[linkedID]
			if !ok {
				return nil, fmt.Errorf("parcelcatalog: package %d bundles unknown package %d", row.id, linkedID)
			}
			pkg.BundledPackages = append(pkg.BundledPackages, peer)
		}
	}

	return New(order, byID), nil
}

func parseRow(record []string) (rawRow, error) {
	if len(record) != 7 {
		return rawRow{}, fmt.Errorf("parcelcatalog: row has %d columns, want 7", len(record))
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return rawRow{}, fmt.Errorf("parcelcatalog: invalid id %q: %w", record[0], err)
	}

	row := rawRow{id: id, address: record[1]}

	if w := strings.TrimSpace(record[2]); w != "" {
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return rawRow{}, fmt.Errorf("parcelcatalog: package %d invalid weight %q: %w", id, w, err)
		}
		row.weightKG = &weight
	}

	if a := strings.TrimSpace(record[3]); a != "" {
		t, err := routingtime.FromClock(a)
		if err != nil {
			return rawRow{}, fmt.Errorf("parcelcatalog: package %d invalid availability: %w", id, err)
		}
		row.availability = &t
	}

	if d := strings.TrimSpace(record[4]); d != "" {
		t, err := routingtime.FromClock(d)
		if err != nil {
			return rawRow{}, fmt.Errorf("parcelcatalog: package %d invalid deadline: %w", id, err)
		}
		row.deadline = &t
	}

	if v := strings.TrimSpace(record[5]); v != "" {
		vehicleID, err := strconv.Atoi(v)
		if err != nil {
			return rawRow{}, fmt.Errorf("parcelcatalog: package %d invalid vehicle_requirement %q: %w", id, v, err)
		}
		row.requiredVehicleID = &vehicleID
	}

	if l := strings.TrimSpace(record[6]); l != "" {
		for _, piece := range strings.Split(l, ",") {
			linkedID, err := strconv.Atoi(strings.TrimSpace(piece))
			if err != nil {
				return rawRow{}, fmt.Errorf("parcelcatalog: package %d invalid linked_packages %q: %w", id, l, err)
			}
			row.linkedIDs = append(row.linkedIDs, linkedID)
		}
	}

	return row, nil
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom, err := br.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
