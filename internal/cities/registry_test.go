package cities

import (
	"errors"
	"fmt"
	"testing"
)

// makeCities creates n cities spread along the equator.
func makeCities(n int) []*City {
	result := make([]*City, n)
	for i := range result {
		result[i] = NewCity(fmt.Sprintf("City %02d", i), float64(100*(i+1)), 0, float64(i))
	}
	return result
}

func names(cs []*City) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestSelectDeterminism(t *testing.T) {
	all := makeCities(30)

	a := NewRegistry(all, 42).Select(10)
	b := NewRegistry(all, 42).Select(10)
	c := NewRegistry(all, 9001).Select(10)

	if fmt.Sprint(names(a)) != fmt.Sprint(names(b)) {
		t.Errorf("same seed selected different cities:\n%v\n%v", names(a), names(b))
	}
	if fmt.Sprint(names(a)) == fmt.Sprint(names(c)) {
		t.Errorf("different seeds selected identical cities: %v", names(a))
	}
}

func TestSelectCounts(t *testing.T) {
	all := makeCities(5)

	tests := []struct {
		count int
		want  int
	}{
		{count: 3, want: 3},
		{count: 5, want: 5},
		{count: 50, want: 5},
		{count: 0, want: 0},
		{count: -2, want: 0},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("count=%d", tc.count), func(t *testing.T) {
			r := NewRegistry(all, 1)
			got := r.Select(tc.count)
			if len(got) != tc.want {
				t.Errorf("Select(%d) returned %d cities, want %d", tc.count, len(got), tc.want)
			}
			if r.Len() != tc.want || len(r.All()) != tc.want {
				t.Errorf("working set size = %d, want %d", r.Len(), tc.want)
			}
		})
	}
}

func TestSelectDoesNotReorderInput(t *testing.T) {
	all := makeCities(8)
	before := names(all)

	NewRegistry(all, 9).Select(8)

	if fmt.Sprint(names(all)) != fmt.Sprint(before) {
		t.Error("Select must shuffle a copy, not the caller's slice")
	}
}

func TestSelectReplacesWorkingSet(t *testing.T) {
	r := NewRegistry(makeCities(10), 3)
	r.Select(4)
	second := r.Select(6)

	if r.Len() != 6 || &r.All()[0] != &second[0] {
		t.Error("second Select should replace the working set")
	}
}

func TestDamageFractionBounds(t *testing.T) {
	tests := []struct {
		fraction float64
		wantErr  bool
	}{
		{fraction: 0.4, wantErr: true},
		{fraction: 0.49999, wantErr: true},
		{fraction: 1.1, wantErr: true},
		{fraction: -1, wantErr: true},
		{fraction: 0.5, wantErr: false},
		{fraction: 0.75, wantErr: false},
		{fraction: 1.0, wantErr: false},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("fraction=%v", tc.fraction), func(t *testing.T) {
			r := NewRegistry(makeCities(10), 42)
			r.Select(10)

			err := r.Damage(tc.fraction)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("Damage(%v) error = %v, want ErrInvalidArgument", tc.fraction, err)
				}
				if n := len(r.Damaged()); n != 0 {
					t.Errorf("rejected Damage(%v) still damaged %d cities", tc.fraction, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("Damage(%v) failed: %v", tc.fraction, err)
			}
		})
	}
}

func TestDamageCount(t *testing.T) {
	tests := []struct {
		size     int
		fraction float64
		want     int
	}{
		{size: 10, fraction: 1.0, want: 10},
		{size: 20, fraction: 0.5, want: 10},
		{size: 10, fraction: 0.75, want: 8},
		{size: 5, fraction: 0.5, want: 3}, // 2.5 rounds up
		{size: 0, fraction: 1.0, want: 0},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%dx%v", tc.size, tc.fraction), func(t *testing.T) {
			r := NewRegistry(makeCities(tc.size), 123)
			r.Select(tc.size)
			if err := r.Damage(tc.fraction); err != nil {
				t.Fatal(err)
			}
			if got := len(r.Damaged()); got != tc.want {
				t.Errorf("damaged %d cities, want %d", got, tc.want)
			}
			if got := len(r.DamagedUnrestored()); got != tc.want {
				t.Errorf("DamagedUnrestored() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDamageDeterminism(t *testing.T) {
	all1 := makeCities(20)
	all2 := makeCities(20)

	r1 := NewRegistry(all1, 77)
	r1.Select(12)
	r2 := NewRegistry(all2, 77)
	r2.Select(12)

	if err := r1.Damage(0.5); err != nil {
		t.Fatal(err)
	}
	if err := r2.Damage(0.5); err != nil {
		t.Fatal(err)
	}

	if fmt.Sprint(names(r1.Damaged())) != fmt.Sprint(names(r2.Damaged())) {
		t.Errorf("same seed damaged different cities")
	}
}

func TestFindByName(t *testing.T) {
	r := NewRegistry([]*City{
		NewCity("New York", 19500, 40.71, -74.01),
		NewCity("Los Angeles", 12800, 34.05, -118.24),
	}, 1)
	r.Select(2)

	tests := []struct {
		input string
		want  string
	}{
		{input: "New York", want: "New York"},
		{input: "new york", want: "New York"},
		{input: "  LOS ANGELES \t", want: "Los Angeles"},
		{input: "York", want: ""},
		{input: "", want: ""},
		{input: "   ", want: ""},
		{input: "Chicago", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			c, ok := r.FindByName(tc.input)
			if tc.want == "" {
				if ok || c != nil {
					t.Errorf("FindByName(%q) = %v, want not found", tc.input, c)
				}
				return
			}
			if !ok || c.Name != tc.want {
				t.Errorf("FindByName(%q) = %v, %v; want %s", tc.input, c, ok, tc.want)
			}
		})
	}
}

func TestFindByNameOnlySearchesWorkingSet(t *testing.T) {
	all := makeCities(10)
	r := NewRegistry(all, 5)
	selected := r.Select(3)

	for _, c := range all {
		_, found := r.FindByName(c.Name)
		inWorking := false
		for _, s := range selected {
			if s == c {
				inWorking = true
			}
		}
		if found != inWorking {
			t.Errorf("FindByName(%q) found=%v, in working set=%v", c.Name, found, inWorking)
		}
	}
}

func TestMarkRestored(t *testing.T) {
	outsider := NewCity("Outsider", 1, 0, 0)
	r := NewRegistry(makeCities(6), 11)
	r.Select(6)
	if err := r.Damage(0.5); err != nil {
		t.Fatal(err)
	}

	damaged := r.DamagedUnrestored()
	var healthy *City
	for _, c := range r.All() {
		if !c.Damaged() {
			healthy = c
			break
		}
	}
	if healthy == nil {
		t.Fatal("expected at least one undamaged city")
	}

	if r.MarkRestored(healthy) {
		t.Error("MarkRestored should refuse an undamaged city")
	}
	if r.MarkRestored(outsider) || r.MarkRestored(nil) {
		t.Error("MarkRestored should refuse cities outside the working set")
	}

	target := damaged[0]
	if !r.MarkRestored(target) {
		t.Fatal("MarkRestored should accept a damaged city")
	}
	if r.MarkRestored(target) {
		t.Error("MarkRestored should refuse an already restored city")
	}

	for _, c := range r.All() {
		if c.Restored() && !c.Damaged() {
			t.Errorf("%s is restored but not damaged", c.Name)
		}
	}
}

func TestQueriesShareCities(t *testing.T) {
	r := NewRegistry(makeCities(4), 8)
	r.Select(4)
	if err := r.Damage(1.0); err != nil {
		t.Fatal(err)
	}

	all := r.All()
	target := r.DamagedUnrestored()[0]
	r.MarkRestored(target)

	restored := r.Restored()
	if len(restored) != 1 || restored[0] != target {
		t.Fatalf("Restored() = %v, want [%s]", names(restored), target.Name)
	}

	found := false
	for _, c := range all {
		if c == target && c.Restored() {
			found = true
		}
	}
	if !found {
		t.Error("restoration not visible through the earlier All() view")
	}

	if len(r.DamagedUnrestored()) != 3 {
		t.Errorf("DamagedUnrestored() = %d, want 3", len(r.DamagedUnrestored()))
	}
}

func TestQueryOrderFollowsWorkingSet(t *testing.T) {
	r := NewRegistry(makeCities(12), 21)
	r.Select(12)
	if err := r.Damage(0.5); err != nil {
		t.Fatal(err)
	}

	index := make(map[*City]int)
	for i, c := range r.All() {
		index[c] = i
	}

	last := -1
	for _, c := range r.DamagedUnrestored() {
		if index[c] <= last {
			t.Fatalf("DamagedUnrestored() out of working-set order")
		}
		last = index[c]
	}
}
