package domain

// Staff represents a salon staff member (master)
type Staff struct {
	ID     int64
	Email  string // Уникальный идентификатор мастера
	Name   string
	Active bool

	// QualifiedServiceIDs список услуг, которые мастер выполняет.
	// Пустой список означает, что мастер выполняет все услуги салона.
	QualifiedServiceIDs []int64
}

// QualifiedFor returns true if the staff member can perform the given service.
// Staff with no qualification data is assumed qualified for everything.
func (s *Staff) QualifiedFor(serviceID int64) bool {
	if len(s.QualifiedServiceIDs) == 0 {
		return true
	}
	for _, id := range s.QualifiedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
