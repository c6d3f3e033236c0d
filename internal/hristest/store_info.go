package hristest

import (
	"net/http"

	"github.com/google/uuid"

	"go-hris-cli/internal/employeeinfo"
	"go-hris-cli/internal/shared/apperror"
)

var (
	errInformationNotFound = apperror.New(apperror.CodeNotFound, "Employee information not found", http.StatusNotFound)
	errDuplicateInfo       = apperror.New(apperror.CodeConflict, "Employee information already exists", http.StatusConflict)
)

func (s *Store) InformationRecords() []employeeinfo.Information {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]employeeinfo.Information, len(s.information))
	copy(out, s.information)
	return out
}

func (s *Store) Information(id string) (employeeinfo.Information, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, info := range s.information {
		if info.ID == id {
			return info, nil
		}
	}
	return employeeinfo.Information{}, errInformationNotFound
}

func (s *Store) InformationByEmployee(employeeID string) (employeeinfo.Information, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, info := range s.information {
		if info.EmployeeID == employeeID {
			return info, nil
		}
	}
	return employeeinfo.Information{}, errInformationNotFound
}

func (s *Store) CreateInformation(req employeeinfo.CreateInformationRequest) (employeeinfo.Information, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, e := range s.employees {
		if e.ID == req.EmployeeID {
			found = true
			break
		}
	}
	if !found {
		return employeeinfo.Information{}, errEmployeeNotFound
	}
	for _, info := range s.information {
		if info.EmployeeID == req.EmployeeID {
			return employeeinfo.Information{}, errDuplicateInfo
		}
	}

	info := employeeinfo.Information{
		ID:                           uuid.NewString(),
		EmployeeID:                   req.EmployeeID,
		Address:                      req.Address,
		City:                         req.City,
		State:                        req.State,
		PostalCode:                   req.PostalCode,
		Country:                      req.Country,
		PhoneNumber:                  req.PhoneNumber,
		MobileNumber:                 req.MobileNumber,
		DateOfBirth:                  req.DateOfBirth,
		Gender:                       req.Gender,
		MaritalStatus:                req.MaritalStatus,
		Nationality:                  req.Nationality,
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		BankName:                     req.BankName,
		BankAccountNumber:            req.BankAccountNumber,
		CreatedAt:                    now(),
		UpdatedAt:                    now(),
	}
	s.information = append(s.information, info)
	return info, nil
}

func (s *Store) UpdateInformation(id string, req employeeinfo.UpdateInformationRequest) (employeeinfo.Information, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.information {
		if s.information[i].ID != id {
			continue
		}
		info := &s.information[i]
		info.Address = req.Address
		info.City = req.City
		info.State = req.State
		info.PostalCode = req.PostalCode
		info.Country = req.Country
		info.PhoneNumber = req.PhoneNumber
		info.MobileNumber = req.MobileNumber
		info.DateOfBirth = req.DateOfBirth
		info.Gender = req.Gender
		info.MaritalStatus = req.MaritalStatus
		info.Nationality = req.Nationality
		info.EmergencyContactName = req.EmergencyContactName
		info.EmergencyContactRelationship = req.EmergencyContactRelationship
		info.EmergencyContactPhone = req.EmergencyContactPhone
		info.BankName = req.BankName
		info.BankAccountNumber = req.BankAccountNumber
		info.UpdatedAt = now()
		return *info, nil
	}
	return employeeinfo.Information{}, errInformationNotFound
}

func (s *Store) DeleteInformation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.information {
		if s.information[i].ID == id {
			s.information = append(s.information[:i], s.information[i+1:]...)
			return nil
		}
	}
	return errInformationNotFound
}
