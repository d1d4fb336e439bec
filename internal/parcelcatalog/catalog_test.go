package parcelcatalog_test

import (
	"os"
	"testing"

	"github.com/griffin-west/delivery-route-planner/internal/parcelcatalog"
	"github.com/stretchr/testify/require"
)

func anyAddress(string) bool { return true }
func anyVehicle(int) bool    { return true }

func TestLoadCSVBasic(t *testing.T) {
	csv := "id,address,weight_kg,availability,deadline,vehicle_requirement,linked_packages\n" +
		"1,Elm St,2.5,,17:00:00,,\n" +
		"2,Oak Ave,,09:00:00,,2,\n"
	path := t.TempDir() + "/packages.csv"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	catalog, err := parcelcatalog.LoadCSV(path, anyAddress, anyVehicle)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	p1, ok := catalog.Get(1)
	require.True(t, ok)
	require.Nil(t, p1.Availability)
	require.NotNil(t, p1.Deadline)

	p2, ok := catalog.Get(2)
	require.True(t, ok)
	require.NotNil(t, p2.RequiredVehicleID)
	require.Equal(t, 2, *p2.RequiredVehicleID)
}

func TestBundlingResolvesToObjects(t *testing.T) {
	csv := "id,address,weight_kg,availability,deadline,vehicle_requirement,linked_packages\n" +
		"1,Elm St,,,,,\"2,3\"\n" +
		"2,Oak Ave,,,,,1\n" +
		"3,Pine Rd,,,,,\n"
	path := t.TempDir() + "/packages.csv"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	catalog, err := parcelcatalog.LoadCSV(path, anyAddress, anyVehicle)
	require.NoError(t, err)

	p1, _ := catalog.Get(1)
	require.Len(t, p1.BundledPackages, 2)

	p2, _ := catalog.Get(2)
	require.Len(t, p2.BundledPackages, 1)
	require.Same(t, p1, p2.BundledPackages[0])
}

func TestSelfReferentialBundlingIsNoOp(t *testing.T) {
	csv := "id,address,weight_kg,availability,deadline,vehicle_requirement,linked_packages\n" +
		"1,Elm St,,,,,1\n"
	path := t.TempDir() + "/packages.csv"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	catalog, err := parcelcatalog.LoadCSV(path, anyAddress, anyVehicle)
	require.NoError(t, err)

	p1, _ := catalog.Get(1)
	require.Empty(t, p1.BundledPackages)
}

func TestUnknownAddressRejected(t *testing.T) {
	csv := "id,address,weight_kg,availability,deadline,vehicle_requirement,linked_packages\n" +
		"1,Nowhere,,,,,\n"
	path := t.TempDir() + "/packages.csv"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	_, err := parcelcatalog.LoadCSV(path, func(string) bool { return false }, anyVehicle)
	require.Error(t, err)
}

func TestHasRequiredVehicleIsPresenceCheck(t *testing.T) {
	id := 1
	p := &parcelcatalog.Package{RequiredVehicleID: &id}
	require.True(t, p.HasRequiredVehicle())

	zero := 0
	p2 := &parcelcatalog.Package{RequiredVehicleID: &zero}
	require.True(t, p2.HasRequiredVehicle())

	p3 := &parcelcatalog.Package{}
	require.False(t, p3.HasRequiredVehicle())
}
