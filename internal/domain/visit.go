package domain

// VisitType classifies a visit. The empty value means unspecified ("other").
type VisitType string

const (
	VisitBusiness VisitType = "business"
	VisitLeisure  VisitType = "leisure"
	VisitTransit  VisitType = "transit"
	VisitOther    VisitType = ""
)

// Visit is one discrete trip to a country.
// Dates are calendar dates in DateLayout; EndDate is empty for single-day visits.
type Visit struct {
	StartDate string    `json:"startDate" validate:"required,isodate"`
	EndDate   string    `json:"endDate,omitempty" validate:"omitempty,isodate"`
	VisitType VisitType `json:"visitType,omitempty" validate:"omitempty,oneof=business leisure transit"`
	Notes     string    `json:"notes,omitempty"`
	Rating    *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Photos    []string  `json:"photos,omitempty" validate:"omitempty,dive,required"`
}

// VisitInput carries partial visit data for add and update.
// A nil field means "not provided": add leaves it absent, update leaves it unchanged.
// An EndDate of "" removes the end date; ClearRating removes the rating and
// takes precedence over Rating.
type VisitInput struct {
	StartDate   *string
	EndDate     *string
	VisitType   *VisitType
	Notes       *string
	Rating      *float64
	ClearRating bool
	Photos      []string
}
