package membership

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CariHQ/nnp-web/internal/pkg/validators"
)

// ErrDeclarationRequired is returned when the applicant did not accept the declaration
var ErrDeclarationRequired = errors.New("the declaration must be accepted")

// Option is a value/label pair shown in the membership form
type Option struct {
	Value string
	Label string
}

// Constituencies lists the electoral constituencies an applicant can pick
var Constituencies = []Option{
	{"saint_george_north_east", "Saint George North East"},
	{"saint_george_north_west", "Saint George North West"},
	{"saint_george_south", "Saint George South"},
	{"saint_george_south_east", "Saint George South East"},
	{"saint_john", "Saint John"},
	{"saint_mark", "Saint Mark"},
	{"saint_patrick_east", "Saint Patrick East"},
	{"saint_patrick_west", "Saint Patrick West"},
	{"saint_andrew_north_east", "Saint Andrew North East"},
	{"saint_andrew_north_west", "Saint Andrew North West"},
	{"saint_andrew_south_east", "Saint Andrew South East"},
	{"saint_andrew_south_west", "Saint Andrew South West"},
	{"saint_david", "Saint David"},
	{"town_of_st_george", "Town of St. George"},
	{"carriacou_and_petite_martinique", "Carriacou and Petite Martinique"},
}

// AssistAreas lists the volunteer activities an applicant can offer
var AssistAreas = []Option{
	{"house", "House to House Visits"},
	{"speaking", "Speaking Assignments"},
	{"campaign", "Campaign Activity"},
	{"research", "Research Activities"},
	{"youth", "Youth Organization"},
	{"membership", "Membership Drive"},
	{"fund", "Fund Raising"},
	{"public", "Public Relations"},
	{"branch", "Branch Organization"},
	{"enumeration", "Enumeration"},
	{"transportation", "Transportation"},
	{"other", "Other"},
}

// Application is a membership form submission
type Application struct {
	ID                  uint
	IDNumber            *string  `validate:"omitempty,max=50"`
	Name                string   `validate:"required,min=1,max=255"`
	HomeAddress         *string  `validate:"omitempty,max=500"`
	HomePhone           *string  `validate:"omitempty,max=50"`
	BusinessAddress     *string  `validate:"omitempty,max=500"`
	BusinessPhone       *string  `validate:"omitempty,max=50"`
	Email               *string  `validate:"omitempty,email"`
	Constituency        string   `validate:"required"`
	PreviousPartyMember bool
	AssistAreas         []string `validate:"dive,required"`
	DeclarationAccepted bool
	CreatedAt           time.Time
}

// Validate for validating Application struct
func (a *Application) Validate() error {
	if err := validators.ValidateStruct(a); err != nil {
		return err
	}
	if !isOption(Constituencies, a.Constituency) {
		return fmt.Errorf("%w: [Field: Constituency, Tag: oneof]", validators.ErrValidation)
	}
	for _, area := range a.AssistAreas {
		if !isOption(AssistAreas, area) {
			return fmt.Errorf("%w: [Field: AssistAreas, Tag: oneof]", validators.ErrValidation)
		}
	}
	if !a.DeclarationAccepted {
		return ErrDeclarationRequired
	}
	return nil
}

// ConstituencyLabel returns the display name of the chosen constituency
func (a *Application) ConstituencyLabel() string {
	return label(Constituencies, a.Constituency)
}

// AssistLabels returns the display names of the chosen assist areas joined by commas
func (a *Application) AssistLabels() string {
	labels := make([]string, 0, len(a.AssistAreas))
	for _, area := range a.AssistAreas {
		labels = append(labels, label(AssistAreas, area))
	}
	return strings.Join(labels, ", ")
}

func isOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func label(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
