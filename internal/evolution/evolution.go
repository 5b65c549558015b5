package evolution

import (
	"strconv"
	"strings"
	"time"

	errors "github.com/nexushr/hr-management/internal"
	evolutionDatamodel "github.com/nexushr/hr-management/internal/core/datamodel/evolution"
	"github.com/nexushr/hr-management/internal/employee"
)

// Career event types, in the directory's canonical wording.
const (
	TypeAdmission    = "Admissão"
	TypePromotion    = "Promoção"
	TypeProgression  = "Progressão"
	TypeCareerChange = "Mudança de Carreira"
	TypeLeadership   = "Nomeação Chefia"
	TypeMobility     = "Mobilidade"
	TypeCessation    = "Cessação de Funções"
)

var Types = []string{
	TypeAdmission, TypePromotion, TypeProgression, TypeCareerChange,
	TypeLeadership, TypeMobility, TypeCessation,
}

// Label conventions carried over from the directory's record texts:
// promotion destinations read "Nível B", progressions "Escalão 2". The
// prefixes are stripped when deriving the typed change; the full label is
// kept as the human-readable destination.
const (
	levelLabelPrefix = "Nível "
	stepLabelPrefix  = "Escalão "

	// CeasedSentinel is the destination written on the synthesized
	// record that closes a ceased function.
	CeasedSentinel = "Função Cessada"

	// AdmissionOrigin is the origin written on the admission record a
	// new hire receives.
	AdmissionOrigin = "Recrutamento"
)

// Record is an immutable fact about one career event. Only the
// IsActive/EndDate pair may be retracted, and only through CeaseFunctions.
type Record struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Type        string     `json:"type"`
	Date        time.Time  `json:"date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
}

// ChangeKind tags the typed payload a record projects onto the employee.
type ChangeKind string

const (
	ChangeNone       ChangeKind = "none"
	ChangeRole       ChangeKind = "role"
	ChangeLevel      ChangeKind = "level"
	ChangeStep       ChangeKind = "step"
	ChangeLeadership ChangeKind = "leadership"
	ChangeCessation  ChangeKind = "cessation"
)

// Change is the tagged union derived once from a record's type and
// destination label. Exactly one payload field is meaningful per kind.
type Change struct {
	Kind   ChangeKind
	Level  string // ChangeLevel: A..E
	Step   int    // ChangeStep: 1..3
	Role   string // ChangeRole / ChangeLeadership
	Origin string // ChangeCessation: the function being ceased
}

// ParseChange derives the typed change for a record. Promotion and
// progression labels that strip to nothing on the ladder yield an error;
// callers treat that as ignore-with-reason, not as a failure.
func ParseChange(recordType, origin, destination string) (Change, error) {
	switch recordType {
	case TypeCareerChange:
		return Change{Kind: ChangeRole, Role: destination}, nil

	case TypePromotion:
		level := strings.TrimSpace(strings.TrimPrefix(destination, levelLabelPrefix))
		if !employee.ValidCareerLevel(level) {
			return Change{}, errors.NewValidationError(
				"promotion destination does not name a career level (A-E): "+destination,
				errors.ErrCodeInvalidLevel)
		}
		return Change{Kind: ChangeLevel, Level: level}, nil

	case TypeProgression:
		raw := strings.TrimSpace(strings.TrimPrefix(destination, stepLabelPrefix))
		step, err := strconv.Atoi(raw)
		if err != nil || !employee.ValidCareerStep(step) {
			return Change{}, errors.NewValidationError(
				"progression destination does not name a career step (1-3): "+destination,
				errors.ErrCodeInvalidStep)
		}
		return Change{Kind: ChangeStep, Step: step}, nil

	case TypeLeadership:
		return Change{Kind: ChangeLeadership, Role: destination}, nil

	case TypeCessation:
		return Change{Kind: ChangeCessation, Origin: origin}, nil

	default:
		// Admission and Mobility are history-only.
		return Change{Kind: ChangeNone}, nil
	}
}

// Apply projects the change onto the employee's career fields and reports
// whether the employee was terminated by a cessation.
func (c Change) Apply(emp *employee.Employee) (terminated bool) {
	switch c.Kind {
	case ChangeRole:
		prev := emp.Role
		emp.PreviousRole = &prev
		emp.Role = c.Role

	case ChangeLevel:
		emp.CareerLevel = c.Level

	case ChangeStep:
		emp.CareerStep = c.Step

	case ChangeLeadership:
		role := c.Role
		emp.IsLeadership = true
		emp.LeadershipRole = &role

	case ChangeCessation:
		if emp.IsLeadership && emp.LeadershipRole != nil && *emp.LeadershipRole == c.Origin {
			emp.IsLeadership = false
			emp.LeadershipRole = nil
		}
		if emp.Role == c.Origin {
			emp.Status = employee.StatusTerminated
			terminated = true
		}
	}
	return terminated
}

func ToDataModel(r *Record) *evolutionDatamodel.EvolutionRecord {
	return &evolutionDatamodel.EvolutionRecord{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		Date:        r.Date,
		EndDate:     r.EndDate,
		Origin:      r.Origin,
		Destination: r.Destination,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

func FromDataModel(r *evolutionDatamodel.EvolutionRecord) *Record {
	return &Record{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		Date:        r.Date,
		EndDate:     r.EndDate,
		Origin:      r.Origin,
		Destination: r.Destination,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

func FromDataModelSlice(records []*evolutionDatamodel.EvolutionRecord) []*Record {
	result := make([]*Record, len(records))
	for i, r := range records {
		result[i] = FromDataModel(r)
	}
	return result
}
