package domain

type Persona struct {
	ID               string
	Name             string
	Role             Role
	ManagedLeaderIDs []string
}

// ManagesMultipleLeaders reports whether the persona oversees more than one team.
func (p *Persona) ManagesMultipleLeaders() bool {
	return len(p.ManagedLeaderIDs) > 1
}

// CanImpersonate reports whether the persona may narrow its view to leaderID.
// Personas without a managed list are unrestricted.
func (p *Persona) CanImpersonate(leaderID string) bool {
	if len(p.ManagedLeaderIDs) == 0 {
		return true
	}
	for _, id := range p.ManagedLeaderIDs {
		if id == leaderID {
			return true
		}
	}
	return false
}
