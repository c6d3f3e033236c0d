package hristest

import (
	"github.com/google/uuid"

	"go-hris-cli/internal/leave"
)

func (s *Store) Leaves() []leave.Leave {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]leave.Leave, len(s.leaves))
	copy(out, s.leaves)
	return out
}

func (s *Store) Leave(id string) (leave.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lv := range s.leaves {
		if lv.ID == id {
			return lv, nil
		}
	}
	return leave.Leave{}, errLeaveNotFound
}

func (s *Store) EmployeeLeaves(employeeID string) []leave.Leave {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []leave.Leave
	for _, lv := range s.leaves {
		if lv.EmployeeID == employeeID {
			out = append(out, lv)
		}
	}
	return out
}

func (s *Store) LeavesByStatus(status string) []leave.Leave {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []leave.Leave
	for _, lv := range s.leaves {
		if lv.Status == status {
			out = append(out, lv)
		}
	}
	return out
}

func (s *Store) CreateLeave(req leave.CreateLeaveRequest) (leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	var empName string
	for _, e := range s.employees {
		if e.ID == req.EmployeeID {
			found = true
			empName = e.Name
			break
		}
	}
	if !found {
		return leave.Leave{}, errEmployeeNotFound
	}

	var typeName string
	for _, lt := range s.leaveTypes {
		if lt.ID == req.LeaveTypeID {
			typeName = lt.Name
		}
	}

	totalDays := req.TotalDays
	if totalDays == 0 {
		start, err1 := leave.ParseDate(req.StartDate)
		end, err2 := leave.ParseDate(req.EndDate)
		if err1 == nil && err2 == nil {
			totalDays = leave.TotalDays(start, end)
		}
	}

	lv := leave.Leave{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		EmployeeName:  empName,
		LeaveTypeID:   req.LeaveTypeID,
		LeaveTypeName: typeName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TotalDays:     totalDays,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
		CreatedAt:     now(),
	}
	s.leaves = append(s.leaves, lv)
	return lv, nil
}

func (s *Store) UpdateLeave(id string, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leaves {
		if s.leaves[i].ID != id {
			continue
		}
		lv := &s.leaves[i]
		if lv.Status != leave.StatusPending {
			return leave.Leave{}, errBadTransition
		}
		lv.StartDate = req.StartDate
		lv.EndDate = req.EndDate
		lv.TotalDays = req.TotalDays
		lv.Reason = req.Reason
		lv.UpdatedAt = now()
		return *lv, nil
	}
	return leave.Leave{}, errLeaveNotFound
}

func (s *Store) DeleteLeave(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leaves {
		if s.leaves[i].ID == id {
			s.leaves = append(s.leaves[:i], s.leaves[i+1:]...)
			return nil
		}
	}
	return errLeaveNotFound
}

// DecideLeave applies an approval decision, enforcing the state machine. An
// approval books the days against the matching allocation.
func (s *Store) DecideLeave(id string, req leave.ApprovalRequest, approverName string) (leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leaves {
		if s.leaves[i].ID != id {
			continue
		}
		lv := &s.leaves[i]
		if !leave.CanTransition(lv.Status, req.Status) {
			return leave.Leave{}, errBadTransition
		}

		lv.Status = req.Status
		lv.ApproverName = approverName
		lv.ApproverComments = req.Comments
		lv.UpdatedAt = now()
		switch req.Status {
		case leave.StatusApproved:
			lv.ApprovedAt = now()
			s.bookDaysLocked(lv, lv.TotalDays)
		case leave.StatusRejected:
			lv.RejectionReason = req.RejectionReason
		}
		return *lv, nil
	}
	return leave.Leave{}, errLeaveNotFound
}

// CancelLeave moves an approved leave to Cancelled and releases its days.
func (s *Store) CancelLeave(id, reason string) (leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leaves {
		if s.leaves[i].ID != id {
			continue
		}
		lv := &s.leaves[i]
		if !leave.CanTransition(lv.Status, leave.StatusCancelled) {
			return leave.Leave{}, errBadTransition
		}
		lv.Status = leave.StatusCancelled
		lv.CancelledAt = now()
		lv.CancellationReason = reason
		lv.UpdatedAt = now()
		s.bookDaysLocked(lv, -lv.TotalDays)
		return *lv, nil
	}
	return leave.Leave{}, errLeaveNotFound
}

func (s *Store) bookDaysLocked(lv *leave.Leave, days int) {
	start, err := leave.ParseDate(lv.StartDate)
	if err != nil {
		return
	}
	for i := range s.allocations {
		a := &s.allocations[i]
		if a.EmployeeID == lv.EmployeeID && a.LeaveTypeID == lv.LeaveTypeID && a.Year == start.Year() {
			a.UsedDays += days
			if a.UsedDays < 0 {
				a.UsedDays = 0
			}
			a.RemainingDays = remaining(a.AllocatedDays, a.UsedDays)
			a.UpdatedAt = now()
			return
		}
	}
}
