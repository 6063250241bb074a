package estatekit

import (
	"context"
	"net/http"
	"testing"
)

func TestResourceAPIRoutes(t *testing.T) {
	type hit struct {
		method string
		path   string
	}
	var last hit
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = hit{method: r.Method, path: r.URL.Path}
		w.Write([]byte(`{}`))
	}), nil)

	ctx := context.Background()

	tests := []struct {
		name string
		call func()
		want hit
	}{
		{"properties list", func() { client.Properties().List(ctx) }, hit{"GET", "/api/properties/"}},
		{"properties get", func() { client.Properties().Get(ctx, "p1") }, hit{"GET", "/api/properties/p1/"}},
		{"properties create", func() { client.Properties().Create(ctx, map[string]string{"name": "x"}) }, hit{"POST", "/api/properties/"}},
		{"properties update", func() { client.Properties().Update(ctx, "p1", map[string]string{}) }, hit{"PUT", "/api/properties/p1/"}},
		{"properties delete", func() { client.Properties().Delete(ctx, "p1") }, hit{"DELETE", "/api/properties/p1/"}},
		{"property units", func() { client.Properties().Units(ctx, "p1") }, hit{"GET", "/api/properties/p1/units/"}},
		{"tenant assign", func() { client.Tenants().AssignUnit(ctx, "t1", "u1") }, hit{"POST", "/api/tenants/t1/assign/"}},
		{"owner dashboard", func() { client.Analytics().GetDashboardStats(ctx, RoleOwner) }, hit{"GET", "/api/owner/dashboard/"}},
		{"upper-cased role dashboard", func() { client.Analytics().GetDashboardStats(ctx, Role("ADMIN")) }, hit{"GET", "/api/admin/dashboard/"}},
		{"revenue summary", func() { client.Analytics().RevenueSummary(ctx) }, hit{"GET", "/api/analytics/revenue/"}},
		{"occupancy summary", func() { client.Analytics().OccupancySummary(ctx) }, hit{"GET", "/api/analytics/occupancy/"}},
		{"payment history", func() { client.Payments().History(ctx, "t1") }, hit{"GET", "/api/payments/history/t1/"}},
		{"maintenance status", func() { client.Maintenance().UpdateStatus(ctx, "m1", "resolved") }, hit{"PATCH", "/api/maintenance/m1/"}},
		{"staff list", func() { client.Staff().List(ctx) }, hit{"GET", "/api/staff/"}},
		{"auth me", func() { client.Auth().Me(ctx) }, hit{"GET", "/api/auth/me/"}},
		{"auth logout", func() { client.Auth().Logout(ctx) }, hit{"POST", "/api/auth/logout/"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.call()
			if last != tc.want {
				t.Fatalf("hit = %+v, want %+v", last, tc.want)
			}
		})
	}
}

func TestItemPathEscapesID(t *testing.T) {
	paths := resourcePaths{root: "/tenants"}
	if got := paths.item("a/b c"); got != "/tenants/a%2Fb%20c/" {
		t.Fatalf("item = %q", got)
	}
}
