package conduit

// Suspend brackets pump, a call into the external dispatcher, with the
// manager's region boundary: the current registration list is saved
// before pump runs and restored after it returns, even when pump
// panics. This is the guaranteed-release form of the
// EnterSuspension/LeaveSuspension pair and should be preferred at every
// suspension call site.
//
// Suspend never delivers; callers follow it with DrainPending.
func (m *Manager) Suspend(pump func()) (err error) {
	tok := m.EnterSuspension()
	defer func() {
		if lerr := m.LeaveSuspension(tok); lerr != nil && err == nil {
			err = lerr
		}
	}()

	pump()
	return nil
}
