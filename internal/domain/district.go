package domain

// DistrictMember é um condado listado no distrito
type DistrictMember struct {
	Name       string
	Membership Membership
}

type District struct {
	Name      string
	StateFIPS string // restringe a geometria aos condados deste estado
	Members   []DistrictMember
}

// RenderedMembers retorna os condados full e partial
func (d *District) RenderedMembers() []DistrictMember {
	members := make([]DistrictMember, 0, len(d.Members))
	for _, member := range d.Members {
		if member.Membership.Rendered() {
			members = append(members, member)
		}
	}
	return members
}

// InState indica se o código FIPS de um condado pertence ao estado do distrito.
// Sem estado definido, ou sem FIPS no condado, não há restrição.
func (d *District) InState(fips string) bool {
	if d.StateFIPS == "" || len(fips) < len(d.StateFIPS) {
		return true
	}
	return fips[:len(d.StateFIPS)] == d.StateFIPS
}
