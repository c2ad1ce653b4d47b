package request

import "testing"

func TestPaginatedRequestBounds(t *testing.T) {
	cases := []struct {
		name   string
		req    PaginatedRequest
		limit  int
		offset int
	}{
		{"defaults", PaginatedRequest{}, DefaultPerPage, 0},
		{"normal page", PaginatedRequest{Page: 3, PerPage: 20}, 20, 40},
		{"per_page clamped to max", PaginatedRequest{Page: 2, PerPage: 500}, MaxPerPage, 100},
		{"negative page", PaginatedRequest{Page: -1, PerPage: 20}, 20, 0},
		{"zero per_page falls back", PaginatedRequest{Page: 2}, DefaultPerPage, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.Limit(); got != tc.limit {
				t.Fatalf("limit should be %d, got %d", tc.limit, got)
			}
			if got := tc.req.Offset(); got != tc.offset {
				t.Fatalf("offset should be %d, got %d", tc.offset, got)
			}
		})
	}
}
