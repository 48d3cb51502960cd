package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fyyur_app_go/models"

	"gorm.io/gorm"
)

// ErrVenueNotFound is returned when no venue has the requested id
var ErrVenueNotFound = errors.New("venue not found")

// VenueSummary is a venue row in listings and search results
type VenueSummary struct {
	ID               string
	Name             string
	NumUpcomingShows int
}

// VenueArea groups venues sharing a city and state
type VenueArea struct {
	City   string
	State  string
	Venues []VenueSummary
}

// VenueSearchResult is the outcome of a name search
type VenueSearchResult struct {
	Count int
	Data  []VenueSummary
}

// ShowSlot is one show on a detail page, seen from the other party
type ShowSlot struct {
	ID        string // artist id on a venue page, venue id on an artist page
	Name      string
	ImageLink string
	StartTime time.Time
}

// VenueDetail is a venue with its shows split at a point in time
type VenueDetail struct {
	models.Venue
	PastShows          []ShowSlot
	UpcomingShows      []ShowSlot
	PastShowsCount     int
	UpcomingShowsCount int
}

// ListVenueAreas returns all venues grouped by (city, state), areas and venues sorted by name
func ListVenueAreas(db *gorm.DB, now time.Time) ([]VenueArea, error) {
	var venues []models.Venue
	if err := db.Preload("Shows").Order("name ASC").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	index := map[string]int{}
	var areas []VenueArea
	for _, v := range venues {
		key := v.City + "|" + v.State
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, VenueArea{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, summarizeVenue(v, now))
	}

	sort.SliceStable(areas, func(a, b int) bool {
		if areas[a].State != areas[b].State {
			return areas[a].State < areas[b].State
		}
		return areas[a].City < areas[b].City
	})

	return areas, nil
}

// SearchVenues finds venues whose name contains term, ignoring case
func SearchVenues(db *gorm.DB, term string, now time.Time) (VenueSearchResult, error) {
	var venues []models.Venue
	err := db.Preload("Shows").
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(term)).
		Order("name ASC").
		Find(&venues).Error
	if err != nil {
		return VenueSearchResult{}, fmt.Errorf("failed to search venues: %w", err)
	}

	result := VenueSearchResult{Count: len(venues), Data: make([]VenueSummary, 0, len(venues))}
	for _, v := range venues {
		result.Data = append(result.Data, summarizeVenue(v, now))
	}
	return result, nil
}

func summarizeVenue(v models.Venue, now time.Time) VenueSummary {
	upcoming := 0
	for _, s := range v.Shows {
		if s.IsUpcoming(now) {
			upcoming++
		}
	}
	return VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming}
}

// likeEscaper makes LIKE wildcards in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern builds a lowercase substring pattern for LIKE ... ESCAPE '\'
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// GetVenue loads a single venue
func GetVenue(db *gorm.DB, id string) (*models.Venue, error) {
	var venue models.Venue
	if err := db.First(&venue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
		}
		return nil, fmt.Errorf("failed to load venue: %w", err)
	}
	return &venue, nil
}

// GetVenueDetail loads a venue with its shows and the artists playing them
func GetVenueDetail(db *gorm.DB, id string, now time.Time) (*VenueDetail, error) {
	var venue models.Venue
	err := db.Preload("Shows", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("start_time ASC")
	}).Preload("Shows.Artist").First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
		}
		return nil, fmt.Errorf("failed to load venue: %w", err)
	}

	detail := &VenueDetail{Venue: venue}
	for _, s := range venue.Shows {
		slot := ShowSlot{ID: s.ArtistID, StartTime: s.StartTime}
		if s.Artist != nil {
			slot.Name = s.Artist.Name
			slot.ImageLink = s.Artist.ImageLink
		}
		if s.IsUpcoming(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, slot)
		} else {
			detail.PastShows = append(detail.PastShows, slot)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return detail, nil
}

// CreateVenue stores a venue from a validated form
func CreateVenue(db *gorm.DB, form VenueForm) (*models.Venue, error) {
	venue := &models.Venue{}
	form.ApplyTo(venue)

	if err := db.Create(venue).Error; err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return venue, nil
}

// UpdateVenue overwrites a venue's editable fields from a validated form
func UpdateVenue(db *gorm.DB, id string, form VenueForm) (*models.Venue, error) {
	venue, err := GetVenue(db, id)
	if err != nil {
		return nil, err
	}

	form.ApplyTo(venue)
	if err := db.Save(venue).Error; err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return venue, nil
}

// DeleteVenue removes a venue and every show booked there in one transaction
func DeleteVenue(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return fmt.Errorf("failed to delete venue shows: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&models.Venue{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete venue: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrVenueNotFound, id)
		}
		return nil
	})
}

// AllVenues returns every venue ordered by name
func AllVenues(db *gorm.DB) ([]models.Venue, error) {
	var venues []models.Venue
	if err := db.Order("name ASC").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}
