package estatekit

import (
	"context"
	"net/url"
	"strings"
)

// resourcePaths is the declarative path template every CRUD grouping is built
// from. Collection routes keep the backend's trailing slash convention.
type resourcePaths struct {
	root string
}

func (r resourcePaths) list() string {
	return r.root + "/"
}

func (r resourcePaths) item(id string) string {
	return r.root + "/" + url.PathEscape(id) + "/"
}

// crud binds a path table to the client's verb wrappers. Resource groupings
// embed it and add endpoint-specific calls on top.
type crud struct {
	client *Client
	paths  resourcePaths
}

// List describes the list operation and its observable behavior.
func (c crud) List(ctx context.Context) Result {
	return c.client.Get(ctx, c.paths.list())
}

// Get describes the get operation and its observable behavior.
func (c crud) Get(ctx context.Context, id string) Result {
	return c.client.Get(ctx, c.paths.item(id))
}

// Create describes the create operation and its observable behavior.
func (c crud) Create(ctx context.Context, input any) Result {
	return c.client.Post(ctx, c.paths.list(), input)
}

// Update describes the update operation and its observable behavior.
func (c crud) Update(ctx context.Context, id string, input any) Result {
	return c.client.Put(ctx, c.paths.item(id), input)
}

// Delete describes the delete operation and its observable behavior.
func (c crud) Delete(ctx context.Context, id string) Result {
	return c.client.Delete(ctx, c.paths.item(id))
}

// PropertiesAPI groups the property endpoints.
type PropertiesAPI struct {
	crud
}

// Units lists the units of one property.
func (p *PropertiesAPI) Units(ctx context.Context, propertyID string) Result {
	return p.client.Get(ctx, p.paths.item(propertyID)+"units/")
}

// TenantsAPI groups the tenant endpoints.
type TenantsAPI struct {
	crud
}

// AssignUnit places a tenant into a unit.
func (t *TenantsAPI) AssignUnit(ctx context.Context, tenantID, unitID string) Result {
	return t.client.Post(ctx, t.paths.item(tenantID)+"assign/", map[string]string{"unit_id": unitID})
}

// AnalyticsAPI groups the dashboard and reporting endpoints.
type AnalyticsAPI struct {
	client *Client
}

// GetDashboardStats fetches the role-scoped dashboard. The role is
// lower-cased into the path: GET /{role}/dashboard/.
func (a *AnalyticsAPI) GetDashboardStats(ctx context.Context, role Role) Result {
	return a.client.Get(ctx, "/"+strings.ToLower(string(role))+"/dashboard/")
}

// RevenueSummary describes the revenuesummary operation and its observable behavior.
func (a *AnalyticsAPI) RevenueSummary(ctx context.Context) Result {
	return a.client.Get(ctx, "/analytics/revenue/")
}

// OccupancySummary describes the occupancysummary operation and its observable behavior.
func (a *AnalyticsAPI) OccupancySummary(ctx context.Context) Result {
	return a.client.Get(ctx, "/analytics/occupancy/")
}

// PaymentsAPI groups the payment endpoints.
type PaymentsAPI struct {
	crud
}

// History lists the payment history of one tenant.
func (p *PaymentsAPI) History(ctx context.Context, tenantID string) Result {
	return p.client.Get(ctx, "/payments/history/"+url.PathEscape(tenantID)+"/")
}

// MaintenanceAPI groups the maintenance-request endpoints.
type MaintenanceAPI struct {
	crud
}

// UpdateStatus patches just the status field of one request.
func (m *MaintenanceAPI) UpdateStatus(ctx context.Context, id, status string) Result {
	return m.client.Patch(ctx, m.paths.item(id), map[string]string{"status": status})
}

// StaffAPI groups the staff endpoints.
type StaffAPI struct {
	crud
}

func newResourceAPIs(c *Client) {
	c.auth = &AuthAPI{client: c}
	c.properties = &PropertiesAPI{crud{client: c, paths: resourcePaths{root: "/properties"}}}
	c.tenants = &TenantsAPI{crud{client: c, paths: resourcePaths{root: "/tenants"}}}
	c.analytics = &AnalyticsAPI{client: c}
	c.payments = &PaymentsAPI{crud{client: c, paths: resourcePaths{root: "/payments"}}}
	c.maintenance = &MaintenanceAPI{crud{client: c, paths: resourcePaths{root: "/maintenance"}}}
	c.staff = &StaffAPI{crud{client: c, paths: resourcePaths{root: "/staff"}}}
}
