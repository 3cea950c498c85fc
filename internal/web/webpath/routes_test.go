package webpath

import "testing"

func TestWithID(t *testing.T) {
	tests := []struct {
		route string
		id    int64
		want  string
	}{
		{route: AdminEdit, id: 5, want: "/admin/events/5/edit"},
		{route: PlayerLeave, id: 12, want: "/player/events/12/leave"},
		{route: ApiEventMembership, id: 3, want: "/api/v1/events/3/membership"},
		{route: Signin, id: 1, want: "/signin"},
	}
	for _, tt := range tests {
		if got := WithID(tt.route, tt.id); got != tt.want {
			t.Errorf("WithID(%q, %d) = %q, want %q", tt.route, tt.id, got, tt.want)
		}
	}
}
