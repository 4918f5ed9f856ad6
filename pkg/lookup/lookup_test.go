package lookup

import (
	"slices"
	"testing"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/geo"
)

func sampleRecords() []Record {
	return []Record{
		{ZipCode: "50309", City: "Des Moines", State: "IA", Latitude: "42.0", Longitude: "-93.5"},
		{ZipCode: "43215", City: "Columbus", State: "OH", Latitude: "40.4", Longitude: "-82.9"},
		{ZipCode: "78701", City: "Austin", State: "TX", Latitude: "31.0", Longitude: "-99.9"},
		{ZipCode: "20001", City: "Washington", State: "DC", Latitude: " 38.9 ", Longitude: "-77.0"},
	}
}

func TestFromRecords(t *testing.T) {
	table, err := FromRecords(sampleRecords())
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	if table.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", table.Len())
	}
	dc, ok := table.Find("DC")
	if !ok {
		t.Fatal("DC not found")
	}
	if dc.Point != (geo.Point{Lat: 38.9, Lon: -77.0}) {
		t.Errorf("DC point = %v", dc.Point)
	}
	if dc.ZipCode != "20001" || dc.City != "Washington" {
		t.Errorf("DC metadata = %+v", dc)
	}
	if got := table.IDs(); !slices.Equal(got, []string{"IA", "OH", "TX", "DC"}) {
		t.Errorf("IDs() = %v", got)
	}
}

func TestFromRecordsParseError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"bad latitude", func(r *Record) { r.Latitude = "north" }},
		{"empty longitude", func(r *Record) { r.Longitude = "" }},
		{"comma decimal", func(r *Record) { r.Latitude = "40,4" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := sampleRecords()
			tt.mutate(&recs[1])
			_, err := FromRecords(recs)
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Fatalf("FromRecords error = %v, want %s", err, errors.ErrCodeParse)
			}
		})
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	table := New([]Location{
		{ID: "IA", ZipCode: "first"},
		{ID: "IA", ZipCode: "second"},
	})
	l, ok := table.Find("IA")
	if !ok || l.ZipCode != "first" {
		t.Errorf("Find(IA) = %+v, %v; want first entry", l, ok)
	}
}

func TestGetUnknown(t *testing.T) {
	table, _ := FromRecords(sampleRecords())
	if _, err := table.Get("ZZ"); !errors.Is(err, errors.ErrCodeLookup) {
		t.Errorf("Get(ZZ) error = %v, want %s", err, errors.ErrCodeLookup)
	}
	if _, err := table.Coordinates("ZZ"); !errors.Is(err, errors.ErrCodeLookup) {
		t.Errorf("Coordinates(ZZ) error = %v, want %s", err, errors.ErrCodeLookup)
	}
}

func TestIntermediates(t *testing.T) {
	table, _ := FromRecords(sampleRecords())

	ids, err := table.Intermediates("IA", "DC")
	if err != nil {
		t.Fatalf("Intermediates: %v", err)
	}
	if !slices.Equal(ids, []string{"OH", "TX"}) {
		t.Errorf("Intermediates(IA, DC) = %v, want [OH TX]", ids)
	}
	if len(ids) != table.Len()-2 {
		t.Errorf("len = %d, want total-2 = %d", len(ids), table.Len()-2)
	}
}

func TestIntermediatesErrors(t *testing.T) {
	dup := append(sampleRecords(), Record{State: "IA", Latitude: "1", Longitude: "1"})
	dupTable, _ := FromRecords(dup)
	table, _ := FromRecords(sampleRecords())

	tests := []struct {
		name       string
		table      *Table
		start, end string
		code       errors.Code
	}{
		{"missing start", table, "ZZ", "DC", errors.ErrCodeLookup},
		{"missing end", table, "IA", "ZZ", errors.ErrCodeLookup},
		{"same endpoints", table, "IA", "IA", errors.ErrCodeInvalidInput},
		{"duplicated start", dupTable, "IA", "DC", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.table.Intermediates(tt.start, tt.end)
			if !errors.Is(err, tt.code) {
				t.Errorf("Intermediates(%s, %s) error = %v, want %s", tt.start, tt.end, err, tt.code)
			}
		})
	}
}

func TestIntermediatesOnlyEndpoints(t *testing.T) {
	table, _ := FromRecords(sampleRecords())
	sub, err := table.Subset("IA", "DC", []string{"DC"})
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	ids, err := sub.Intermediates("IA", "DC")
	if err != nil {
		t.Fatalf("Intermediates: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Intermediates = %v, want none", ids)
	}
}

func TestSubset(t *testing.T) {
	table, _ := FromRecords(sampleRecords())

	sub, err := table.Subset("IA", "DC", []string{"TX"})
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	if got := sub.IDs(); !slices.Equal(got, []string{"IA", "TX", "DC"}) {
		t.Errorf("Subset IDs = %v, want [IA TX DC]", got)
	}

	all, err := table.Subset("IA", "DC", nil)
	if err != nil || all.Len() != table.Len() {
		t.Errorf("Subset with no ids = %v, %v; want whole table", all, err)
	}

	if _, err := table.Subset("IA", "DC", []string{"ZZ"}); !errors.Is(err, errors.ErrCodeLookup) {
		t.Errorf("Subset unknown id error = %v, want %s", err, errors.ErrCodeLookup)
	}
}

func TestLocationsReturnsCopy(t *testing.T) {
	table, _ := FromRecords(sampleRecords())
	locs := table.Locations()
	locs[0].ID = "XX"
	if _, ok := table.Find("IA"); !ok {
		t.Error("mutating Locations() result changed the table")
	}
}
