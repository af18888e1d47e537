package staff

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/user"
)

type fakeStaffRepo struct {
	staff  map[string]staff.Staff
	nextID int
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]staff.Staff)}
}

func (r *fakeStaffRepo) Create(_ context.Context, st staff.Staff) (staff.Staff, error) {
	r.nextID++
	st.ID = fmt.Sprintf("staff-%d", r.nextID)
	r.staff[st.ID] = st
	return st, nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	st, ok := r.staff[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return st, nil
}

func (r *fakeStaffRepo) GetByUserID(_ context.Context, userID string) (staff.Staff, error) {
	for _, st := range r.staff {
		if st.UserID != nil && *st.UserID == userID {
			return st, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (r *fakeStaffRepo) List(_ context.Context, status *staff.Status) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, st := range r.staff {
		if status == nil || st.Status == *status {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) ListActiveIDs(_ context.Context) ([]string, error) {
	var ids []string
	for _, st := range r.staff {
		if st.Status == staff.StatusActive {
			ids = append(ids, st.ID)
		}
	}
	return ids, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestService() (staff.StaffService, *fakeStaffRepo) {
	staffRepo := newFakeStaffRepo()
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Email: "linh@salon.vn", FullName: "Linh Tran", Role: user.RoleStylist},
		"user-2": {ID: "user-2", Email: "admin@salon.vn", FullName: "Chu Salon", Role: user.RoleAdmin},
	}}
	return NewStaffService(staffRepo, userRepo), staffRepo
}

func TestEnsureStaffProfileCreatesForEligibleRole(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.EnsureStaffProfile(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Linh Tran", created.FullName)
	assert.Equal(t, staff.StatusActive, created.Status)
	require.NotNil(t, created.UserID)
	assert.Equal(t, "user-1", *created.UserID)
	assert.Len(t, repo.staff, 1)
}

func TestEnsureStaffProfileIdempotent(t *testing.T) {
	svc, repo := newTestService()

	first, err := svc.EnsureStaffProfile(context.Background(), "user-1")
	require.NoError(t, err)

	second, err := svc.EnsureStaffProfile(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.staff, 1)
}

func TestEnsureStaffProfileRejectsAdmin(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.EnsureStaffProfile(context.Background(), "user-2")
	assert.ErrorIs(t, err, staff.ErrStaffNotEligible)
	assert.Empty(t, repo.staff)
}

func TestEnsureStaffProfileUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.EnsureStaffProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetStaffNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetStaff(context.Background(), "missing")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestListStaffFiltersByStatus(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.EnsureStaffProfile(context.Background(), "user-1")
	require.NoError(t, err)
	repo.staff["staff-retired"] = staff.Staff{ID: "staff-retired", FullName: "Cu Nhan", Status: staff.StatusInactive}

	active := staff.StatusActive
	result, err := svc.ListStaff(context.Background(), &active)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Linh Tran", result[0].FullName)

	all, err := svc.ListStaff(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
