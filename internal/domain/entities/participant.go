package entities

// ParticipantRole is the part a contact plays on a policy.
type ParticipantRole string

const (
	ParticipantRolePrimaryInsured   ParticipantRole = "Primary Insured"
	ParticipantRoleSecondaryInsured ParticipantRole = "Secondary Insured"
	ParticipantRoleBeneficiary      ParticipantRole = "Beneficiary"
	ParticipantRoleDependent        ParticipantRole = "Dependent"
)

var participantRoles = []ParticipantRole{
	ParticipantRolePrimaryInsured,
	ParticipantRoleSecondaryInsured,
	ParticipantRoleBeneficiary,
	ParticipantRoleDependent,
}

func (r ParticipantRole) Valid() bool {
	return oneOf(r, participantRoles)
}

// Participant links an existing contact to a policy.
type Participant struct {
	ID                    string
	InsurancePolicyID     string
	ContactID             string
	Role                  ParticipantRole
	RelationshipToInsured string
	IsActive              bool
}

func (p Participant) Fields() Record {
	fields := Record{
		"insurance_policy_id": p.InsurancePolicyID,
		"contact_id":          p.ContactID,
		"role":                string(p.Role),
		"is_active":           p.IsActive,
	}
	if p.RelationshipToInsured != "" {
		fields["relationship_to_insured"] = p.RelationshipToInsured
	}
	return fields
}
