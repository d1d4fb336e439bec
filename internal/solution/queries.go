package solution

import (
	"github.com/griffin-west/delivery-route-planner/internal/addressbook"
	"github.com/griffin-west/delivery-route-planner/internal/nodes"
	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/griffin-west/delivery-route-planner/internal/routingtime"
)

// Miles converts a scaled mileage value back into miles (to one tenth).
func Miles(scaled int) float64 {
	return float64(scaled) / float64(addressbook.DistanceScaleFactor)
}

// TotalMileage sums every route's final cumulative mileage, in miles.
func (s *Solution) TotalMileage() float64 {
	total := 0
	for _, r := range s.Routes {
		if len(r.Stops) == 0 {
			continue
		}
		total += r.Stops[len(r.Stops)-1].Mileage
	}
	return Miles(total)
}

// EndTime is the latest visit time across every route's final stop.
func (s *Solution) EndTime() routingtime.Time {
	var end routingtime.Time
	for _, r := range s.Routes {
		if len(r.Stops) == 0 {
			continue
		}
		last := r.Stops[len(r.Stops)-1].VisitTime
		if last > end {
			end = last
		}
	}
	return end
}

// DeliveredPackages returns every package that appears as a DELIVERY stop
// in some route.
func (s *Solution) DeliveredPackages() []*parcelcatalog.Package {
	var out []*parcelcatalog.Package
	for _, r := range s.Routes {
		for _, stop := range r.Stops {
			if stop.Kind == nodes.Delivery {
				out = append(out, stop.Package)
			}
		}
	}
	return out
}

// MissedPackages returns every catalog package that never appears as a
// DELIVERY stop.
func (s *Solution) MissedPackages() []*parcelcatalog.Package {
	delivered := make(map[int]bool)
	for _, p := range s.DeliveredPackages() {
		delivered[p.ID] = true
	}
	var out []*parcelcatalog.Package
	for _, p := range s.Model.Packages.All() {
		if !delivered[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// DeliveryPercentage is delivered / (delivered + missed), to two decimals.
func (s *Solution) DeliveryPercentage() float64 {
	delivered := len(s.DeliveredPackages())
	missed := len(s.MissedPackages())
	if delivered+missed == 0 {
		return 0
	}
	pct := float64(delivered) / float64(delivered+missed) * 100
	return roundTo2(pct)
}

func roundTo2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
