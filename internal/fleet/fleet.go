// Package fleet holds the vehicle registry: the fleet size, per-vehicle
// capacity and speed, and each vehicle's owned duration map.
package fleet

import (
	"fmt"

	"github.com/griffin-west/delivery-route-planner/internal/addressbook"
)

// Vehicle is one fleet member. ID is dense and 1-based; Index is the
// zero-based id used when interfacing with the routing engine.
type Vehicle struct {
	ID         int
	SpeedMPH   float64
	Capacity   int
	Durations  addressbook.CostMap
}

// Index returns the zero-based index the routing engine expects.
func (v Vehicle) Index() int {
	return v.ID - 1
}

// Fleet is the ordered, dense-id set of vehicles.
type Fleet struct {
	vehicles []Vehicle
	book     *addressbook.Book
}

// NewShared builds a fleet of n vehicles sharing a speed and capacity,
// each deriving its own duration map (identical, since they share a speed)
// from book.
func NewShared(book *addressbook.Book, n int, speedMPH float64, capacity int) (*Fleet, error) {
	f := &Fleet{book: book}
	for i := 0; i < n; i++ {
		if err := f.Add(speedMPH, capacity); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// New builds an empty fleet bound to book; vehicles are appended with Add.
func New(book *addressbook.Book) *Fleet {
	return &Fleet{book: book}
}

// Add appends a vehicle with its own speed and capacity, deriving its
// duration map from the address book.
func (f *Fleet) Add(speedMPH float64, capacity int) error {
	if speedMPH <= 0 {
		return fmt.Errorf("fleet: speed must be positive, got %v", speedMPH)
	}
	if capacity < 1 {
		return fmt.Errorf("fleet: capacity must be at least 1, got %d", capacity)
	}
	f.vehicles = append(f.vehicles, Vehicle{
		ID:        len(f.vehicles) + 1,
		SpeedMPH:  speedMPH,
		Capacity:  capacity,
		Durations: f.book.DurationMap(speedMPH),
	})
	return nil
}

// Remove deletes the vehicle with the given id and compacts the remaining
// ids back to a dense 1..N range. Any id held elsewhere that pointed past
// this point in the sequence is now invalid.
func (f *Fleet) Remove(id int) error {
	idx := -1
	for i, v := range f.vehicles {
		if v.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("fleet: no vehicle with id %d", id)
	}
	f.vehicles = append(f.vehicles[:idx], f.vehicles[idx+1:]...)
	for i := range f.vehicles {
		f.vehicles[i].ID = i + 1
	}
	return nil
}

// All returns the vehicles in dense id order.
func (f *Fleet) All() []Vehicle {
	return f.vehicles
}

// Len returns the fleet size.
func (f *Fleet) Len() int {
	return len(f.vehicles)
}

// Get returns the vehicle with the given id.
func (f *Fleet) Get(id int) (Vehicle, bool) {
	if id < 1 || id > len(f.vehicles) {
		return Vehicle{}, false
	}
	return f.vehicles[id-1], true
}
