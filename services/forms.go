package services

import (
	"errors"
	"html"
	"regexp"
	"strings"

	"fyyur_app_go/models"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate     = newValidator()
	textPolicy   = bluemonday.StrictPolicy()
	phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return models.IsGenre(fl.Field().String())
	})
	v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		return models.IsState(fl.Field().String())
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// formMessages maps "Field.tag" to the message shown next to the input
var formMessages = map[string]string{
	"Name.required":      "Name is required",
	"City.required":      "City is required",
	"Address.required":   "Address is required",
	"State.required":     "State is required",
	"State.us_state":     "Invalid state. Please select a valid state.",
	"Phone.phone":        "Invalid phone number. Please use the format 123-456-7890",
	"Genres.required":    "Please select at least one genre",
	"Genres.min":         "Please select at least one genre",
	"Genres.genre":       "Invalid genre. Please select a valid genre.",
	"ImageLink.url":      "Please, provide a valid image URL",
	"FacebookLink.url":   "Please, provide a valid facebook URL",
	"WebsiteLink.url":    "Please, provide valid website URL",
	"ArtistID.required":  "Artist ID is required",
	"VenueID.required":   "Venue ID is required",
	"StartTime.required": "Start date is required",
}

// FormErrors holds one message per invalid field
type FormErrors map[string]string

func (fe FormErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, m := range fe {
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "; ")
}

func validateForm(form interface{}) FormErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FormErrors{"_": err.Error()}
	}

	out := FormErrors{}
	for _, fe := range verrs {
		// dive errors are reported as "Genres[1]"
		field, _, _ := strings.Cut(fe.StructField(), "[")
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := formMessages[field+"."+fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		out[field] = msg
	}
	return out
}

// SanitizeText strips all markup from free text and trims it.
// The result is plain text; templates escape it on output.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// VenueForm is the create/edit venue form
type VenueForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"required"`
	State              string   `form:"state" validate:"required,us_state"`
	Address            string   `form:"address" validate:"required"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url"`
	SeekingTalent      bool     `form:"-"`
	SeekingDescription string   `form:"seeking_description"`
}

// Validate trims the inputs and returns the failing fields, or nil
func (f *VenueForm) Validate() FormErrors {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.SeekingDescription = SanitizeText(f.SeekingDescription)
	return validateForm(f)
}

// ApplyTo copies the form onto a venue
func (f *VenueForm) ApplyTo(v *models.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = append([]string(nil), f.Genres...)
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.WebsiteLink = f.WebsiteLink
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

// VenueFormFrom prefills the edit form
func VenueFormFrom(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             append([]string(nil), v.Genres...),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistForm is the create/edit artist form
type ArtistForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"required"`
	State              string   `form:"state" validate:"required,us_state"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url"`
	SeekingVenue       bool     `form:"-"`
	SeekingDescription string   `form:"seeking_description"`
}

// Validate trims the inputs and returns the failing fields, or nil
func (f *ArtistForm) Validate() FormErrors {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.Phone = strings.TrimSpace(f.Phone)
	f.SeekingDescription = SanitizeText(f.SeekingDescription)
	return validateForm(f)
}

// ApplyTo copies the form onto an artist
func (f *ArtistForm) ApplyTo(a *models.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = append([]string(nil), f.Genres...)
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.WebsiteLink = f.WebsiteLink
	a.SeekingVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}

// ArtistFormFrom prefills the edit form
func ArtistFormFrom(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string(nil), a.Genres...),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ShowForm books an artist into a venue. StartTime accepts anything ParseISOString does.
type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required"`
	VenueID   string `form:"venue_id" validate:"required"`
	StartTime string `form:"start_time" validate:"required"`
}

// Validate trims the inputs and returns the failing fields, or nil
func (f *ShowForm) Validate() FormErrors {
	f.ArtistID = strings.TrimSpace(f.ArtistID)
	f.VenueID = strings.TrimSpace(f.VenueID)
	f.StartTime = strings.TrimSpace(f.StartTime)
	return validateForm(f)
}
