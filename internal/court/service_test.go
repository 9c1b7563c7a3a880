package court

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sportbook-app/sportbook-backend/internal/facility"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

type fakeRepo struct {
	courts map[string]*Court
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{courts: map[string]*Court{}}
}

func (r *fakeRepo) Create(ctx context.Context, c *Court) error {
	r.nextID++
	c.ID = fmt.Sprintf("court-%d", r.nextID)
	r.courts[c.ID] = c
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Court, error) {
	c, ok := r.courts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	var out []*Court
	for _, c := range r.courts {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, c *Court) error {
	if _, ok := r.courts[c.ID]; !ok {
		return ErrNotFound
	}
	r.courts[c.ID] = c
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.courts[id]; !ok {
		return ErrNotFound
	}
	delete(r.courts, id)
	return nil
}

// stubFacilityService knows one facility, "fac-1", owned by "owner-1".
type stubFacilityService struct {
	facility.Service
}

func (s *stubFacilityService) IsOwner(ctx context.Context, facilityID, userID string) (bool, error) {
	if facilityID != "fac-1" {
		return false, facility.ErrNotFound
	}
	return userID == "owner-1", nil
}

func newTestService() Service {
	return NewService(newFakeRepo(), &stubFacilityService{})
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		FacilityID:   "fac-1",
		Name:         "Campo Centrale",
		Sport:        "padel",
		Surface:      "synthetic",
		Indoor:       true,
		PricePerHour: 24,
	}
}

func TestCreateCourt(t *testing.T) {
	svc := newTestService()

	c, err := svc.Create(context.Background(), validCreateRequest(), "owner-1", false)
	require.NoError(t, err)
	require.Equal(t, "Campo Centrale", c.Name)
	require.Equal(t, "padel", c.Sport)
	require.Nil(t, c.PricingRules)

	// Without rules, pricing resolves through the legacy rate.
	require.Equal(t, 24.0, pricing.Calculate(c.Pricing(), pricing.OneHour, "", ""))
}

func TestCreateCourtValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		creator string
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(r *CreateRequest) { r.Name = " " },
			creator: "owner-1",
			wantErr: ErrEmptyName,
		},
		{
			name:    "missing facility",
			mutate:  func(r *CreateRequest) { r.FacilityID = "" },
			creator: "owner-1",
			wantErr: ErrInvalidFacility,
		},
		{
			name:    "unknown facility",
			mutate:  func(r *CreateRequest) { r.FacilityID = "fac-404" },
			creator: "owner-1",
			wantErr: ErrInvalidFacility,
		},
		{
			name:    "unsupported sport",
			mutate:  func(r *CreateRequest) { r.Sport = "cricket" },
			creator: "owner-1",
			wantErr: ErrInvalidSport,
		},
		{
			name:    "non-positive price",
			mutate:  func(r *CreateRequest) { r.PricePerHour = 0 },
			creator: "owner-1",
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "non-owner cannot create",
			mutate:  func(r *CreateRequest) {},
			creator: "intruder",
			wantErr: ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			req := validCreateRequest()
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), req, tt.creator, false)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateCourt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, validCreateRequest(), "owner-1", false)
	require.NoError(t, err)

	price := 30.0
	sport := "tennis"
	got, err := svc.Update(ctx, c.ID, UpdateRequest{Sport: &sport, PricePerHour: &price}, "owner-1", false)
	require.NoError(t, err)
	require.Equal(t, "tennis", got.Sport)
	require.Equal(t, 30.0, got.PricePerHour)

	bad := "cricket"
	_, err = svc.Update(ctx, c.ID, UpdateRequest{Sport: &bad}, "owner-1", false)
	require.ErrorIs(t, err, ErrInvalidSport)

	_, err = svc.Update(ctx, c.ID, UpdateRequest{Sport: &sport}, "intruder", false)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdatePricingRules(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, validCreateRequest(), "owner-1", false)
	require.NoError(t, err)

	flat := 25.0
	rules := &pricing.Rules{
		Mode:       pricing.ModeFlat,
		FlatPrices: &pricing.PricePair{OneHour: &flat},
	}

	got, err := svc.UpdatePricingRules(ctx, c.ID, rules, "owner-1", false)
	require.NoError(t, err)
	require.NotNil(t, got.PricingRules)
	require.Equal(t, 25.0, pricing.Calculate(got.Pricing(), pricing.OneHour, "", ""))

	// Unknown modes are rejected before they reach storage.
	_, err = svc.UpdatePricingRules(ctx, c.ID, &pricing.Rules{Mode: "seasonal"}, "owner-1", false)
	require.ErrorIs(t, err, ErrInvalidRules)

	_, err = svc.UpdatePricingRules(ctx, c.ID, rules, "intruder", false)
	require.ErrorIs(t, err, ErrPermissionDenied)

	// Clearing the rules reverts the court to legacy pricing.
	got, err = svc.UpdatePricingRules(ctx, c.ID, nil, "owner-1", false)
	require.NoError(t, err)
	require.Nil(t, got.PricingRules)
}

func TestDeleteCourt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, validCreateRequest(), "owner-1", false)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, c.ID, "intruder", false), ErrPermissionDenied)

	// A system admin can delete without owning the facility.
	require.NoError(t, svc.Delete(ctx, c.ID, "admin-1", true))

	_, err = svc.GetByID(ctx, c.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
