package staff

import (
	"context"
	"errors"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/user"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	user.UserRepository
}

func NewStaffService(staffRepo staff.StaffRepository, userRepo user.UserRepository) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepo,
		UserRepository:  userRepo,
	}
}

// EnsureStaffProfile implements staff.StaffService. Safe to call on
// every login: an existing profile is returned as-is.
func (s *StaffServiceImpl) EnsureStaffProfile(ctx context.Context, userID string) (staff.Staff, error) {
	existing, err := s.StaffRepository.GetByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, staff.ErrStaffNotFound) {
		return staff.Staff{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return staff.Staff{}, err
	}
	if !u.Role.EligibleForStaffProfile() {
		return staff.Staff{}, staff.ErrStaffNotEligible
	}

	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		UserID:   &u.ID,
		FullName: u.FullName,
		Status:   staff.StatusActive,
	})
	if err != nil {
		// Two logins racing the first provision: the second insert loses,
		// the row is there now.
		existing, getErr := s.StaffRepository.GetByUserID(ctx, userID)
		if getErr == nil {
			return existing, nil
		}
		return staff.Staff{}, err
	}
	return created, nil
}

// GetStaff implements staff.StaffService.
func (s *StaffServiceImpl) GetStaff(ctx context.Context, id string) (staff.StaffResponse, error) {
	st, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapStaffToResponse(st), nil
}

// ListStaff implements staff.StaffService.
func (s *StaffServiceImpl) ListStaff(ctx context.Context, status *staff.Status) ([]staff.StaffResponse, error) {
	rows, err := s.StaffRepository.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.StaffResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, mapStaffToResponse(row))
	}
	return responses, nil
}

func mapStaffToResponse(st staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:                st.ID,
		FullName:          st.FullName,
		PhoneNumber:       st.PhoneNumber,
		BaseSalary:        st.BaseSalary,
		CommissionPercent: st.EffectiveCommissionPercent(),
		Status:            string(st.Status),
	}
}
