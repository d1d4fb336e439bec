// Package addressbook loads street addresses and the pairwise-miles matrix
// between them, and derives the integer cost maps the routing model builds
// its transit callbacks from.
package addressbook

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
)

// DistanceScaleFactor keeps mileage arithmetic integral while preserving
// one-tenth-mile granularity: cost = round(miles * DistanceScaleFactor).
const DistanceScaleFactor = 10

// SecondsPerHour converts an hourly speed into a per-second rate.
const SecondsPerHour = 3600

// Address is one entry in the book: its location columns, plus the miles to
// every other address in the book (including itself, which is always 0).
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
	Miles  map[string]float64
}

// Book is the full set of addresses, keyed by street.
type Book struct {
	order     []string
	addresses map[string]Address
}

// CostMap is a derived from-street -> to-street -> integer-cost mapping.
type CostMap map[string]map[string]int

// New builds a Book from already-parsed addresses, preserving the given
// order (the order used later to iterate the matrix deterministically).
func New(order []string, addresses map[string]Address) (*Book, error) {
	book := &Book{order: order, addresses: addresses}
	if err := book.validate(); err != nil {
		return nil, err
	}
	return book, nil
}

func (b *Book) validate() error {
	for _, street := range b.order {
		addr, ok := b.addresses[street]
		if !ok {
			return fmt.Errorf("addressbook: street %q listed in order but missing", street)
		}
		if _, ok := addr.Miles[street]; !ok {
			return fmt.Errorf("addressbook: %q is missing its self-distance", street)
		}
		for _, other := range b.order {
			if _, ok := addr.Miles[other]; !ok {
				return fmt.Errorf("addressbook: %q is missing a distance to %q", street, other)
			}
			if addr.Miles[other] < 0 {
				return fmt.Errorf("addressbook: %q to %q distance is negative", street, other)
			}
		}
	}
	return nil
}

// Streets returns the addresses in book order.
func (b *Book) Streets() []string {
	return b.order
}

// Get returns the Address for a street.
func (b *Book) Get(street string) (Address, bool) {
	addr, ok := b.addresses[street]
	return addr, ok
}

// DistanceMap derives the scaled-integer distance cost map used as the
// routing engine's arc cost: cost = round(miles * DistanceScaleFactor).
func (b *Book) DistanceMap() CostMap {
	return b.costMap(func(miles float64) int {
		return int(math.Round(miles * DistanceScaleFactor))
	})
}

// DurationMap derives the integer seconds cost map for a vehicle travelling
// at speedMPH: cost = round(miles / speedMPH * 3600).
func (b *Book) DurationMap(speedMPH float64) CostMap {
	return b.costMap(func(miles float64) int {
		return int(math.Round(miles / speedMPH * SecondsPerHour))
	})
}

// costMap applies a pure mile->cost transform over the matrix in book order.
func (b *Book) costMap(transform func(miles float64) int) CostMap {
	out := make(CostMap, len(b.order))
	for _, from := range b.order {
		row := make(map[string]int, len(b.order))
		fromAddr := b.addresses[from]
		for _, to := range b.order {
			row[to] = transform(fromAddr.Miles[to])
		}
		out[from] = row
	}
	return out
}

// LoadCSV reads an address book CSV: header "Street,City,State,Zip Code,
// <street1>,<street2>,..." followed by one row per address. The trailing
// header cells must name the same streets, in the same order, as the data
// rows that follow.
func LoadCSV(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("addressbook: open %s: %w", path, err)
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) (*Book, error) {
	reader := csv.NewReader(bufio.NewReader(stripBOM(r)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("addressbook: read header: %w", err)
	}
	if len(header) < 5 {
		return nil, fmt.Errorf("addressbook: header has too few columns")
	}
	streetHeaders := header[4:]

	order := make([]string, 0, 64)
	addresses := make(map[string]Address, 64)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("addressbook: read row: %w", err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("addressbook: row has %d columns, want %d", len(row), len(header))
		}

		street := row[0]
		if _, dup := addresses[street]; dup {
			return nil, fmt.Errorf("addressbook: duplicate street %q", street)
		}

		miles := make(map[string]float64, len(streetHeaders))
		for i, other := range streetHeaders {
			value, err := parseFloat(row[4+i])
			if err != nil {
				return nil, fmt.Errorf("addressbook: %q distance to %q: %w", street, other, err)
			}
			miles[other] = value
		}

		addresses[street] = Address{
			Street: street,
			City:   row[1],
			State:  row[2],
			Zip:    row[3],
			Miles:  miles,
		}
		order = append(order, street)
	}

	return New(order, addresses)
}

func parseFloat(cell string) (float64, error) {
	var value float64
	_, err := fmt.Sscanf(cell, "%g", &value)
	if err != nil {
		return 0, fmt.Errorf("non-numeric distance %q", cell)
	}
	return value, nil
}

// stripBOM drops a UTF-8 byte-order mark if the reader starts with one.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom, err := br.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
