package planner

import "testing"

func TestPlan(t *testing.T) {
	t.Run("120 pages in chunks of 50", func(t *testing.T) {
		ranges, err := Plan(120, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := []PageRange{{1, 50}, {51, 100}, {101, 120}}
		if len(ranges) != len(expected) {
			t.Fatalf("expected %d ranges, got %d", len(expected), len(ranges))
		}
		for i, r := range ranges {
			if r != expected[i] {
				t.Errorf("range %d: expected %v, got %v", i, expected[i], r)
			}
		}
	})

	t.Run("exact multiple", func(t *testing.T) {
		ranges, err := Plan(100, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranges) != 2 {
			t.Fatalf("expected 2 ranges, got %d", len(ranges))
		}
		if ranges[1] != (PageRange{51, 100}) {
			t.Errorf("expected {51 100}, got %v", ranges[1])
		}
	})

	t.Run("single page", func(t *testing.T) {
		ranges, err := Plan(1, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranges) != 1 || ranges[0] != (PageRange{1, 1}) {
			t.Errorf("expected [{1 1}], got %v", ranges)
		}
	})

	t.Run("chunk size of one", func(t *testing.T) {
		ranges, err := Plan(3, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranges) != 3 {
			t.Fatalf("expected 3 ranges, got %d", len(ranges))
		}
		for i, r := range ranges {
			if r.Start != i+1 || r.End != i+1 {
				t.Errorf("range %d: expected single page %d, got %v", i, i+1, r)
			}
		}
	})

	t.Run("coverage invariants", func(t *testing.T) {
		for _, tc := range []struct{ pages, chunk int }{
			{1, 1}, {7, 3}, {50, 50}, {51, 50}, {999, 100}, {120, 7},
		} {
			ranges, err := Plan(tc.pages, tc.chunk)
			if err != nil {
				t.Fatalf("Plan(%d, %d): %v", tc.pages, tc.chunk, err)
			}
			want := (tc.pages + tc.chunk - 1) / tc.chunk
			if len(ranges) != want {
				t.Errorf("Plan(%d, %d): expected %d ranges, got %d", tc.pages, tc.chunk, want, len(ranges))
			}
			next := 1
			for i, r := range ranges {
				if r.Start != next {
					t.Errorf("Plan(%d, %d) range %d: expected start %d, got %d", tc.pages, tc.chunk, i, next, r.Start)
				}
				if r.End < r.Start {
					t.Errorf("Plan(%d, %d) range %d: end %d before start %d", tc.pages, tc.chunk, i, r.End, r.Start)
				}
				if r.Pages() > tc.chunk {
					t.Errorf("Plan(%d, %d) range %d: %d pages exceeds chunk size", tc.pages, tc.chunk, i, r.Pages())
				}
				if i < len(ranges)-1 && r.Pages() != tc.chunk {
					t.Errorf("Plan(%d, %d) range %d: only the last range may be short", tc.pages, tc.chunk, i)
				}
				next = r.End + 1
			}
			if next != tc.pages+1 {
				t.Errorf("Plan(%d, %d): ranges end at %d, expected %d", tc.pages, tc.chunk, next-1, tc.pages)
			}
		}
	})

	t.Run("rejects non-positive inputs", func(t *testing.T) {
		if _, err := Plan(0, 50); err == nil {
			t.Error("expected error for zero pages")
		}
		if _, err := Plan(-1, 50); err == nil {
			t.Error("expected error for negative pages")
		}
		if _, err := Plan(10, 0); err == nil {
			t.Error("expected error for zero chunk size")
		}
		if _, err := Plan(10, -5); err == nil {
			t.Error("expected error for negative chunk size")
		}
	})
}

func TestPageRangeString(t *testing.T) {
	r := PageRange{Start: 51, End: 100}
	if r.String() != "51-100" {
		t.Errorf("expected 51-100, got %s", r.String())
	}
	if r.Pages() != 50 {
		t.Errorf("expected 50 pages, got %d", r.Pages())
	}
}
