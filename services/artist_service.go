package services

import (
	"errors"
	"fmt"
	"time"

	"fyyur_app_go/models"

	"gorm.io/gorm"
)

// ErrArtistNotFound is returned when no artist has the requested id
var ErrArtistNotFound = errors.New("artist not found")

// ArtistSummary is an artist row in listings and search results
type ArtistSummary struct {
	ID               string
	Name             string
	NumUpcomingShows int
}

// ArtistSearchResult is the outcome of a name search
type ArtistSearchResult struct {
	Count int
	Data  []ArtistSummary
}

// ArtistDetail is an artist with the venues they play, split at a point in time
type ArtistDetail struct {
	models.Artist
	PastShows          []ShowSlot
	UpcomingShows      []ShowSlot
	PastShowsCount     int
	UpcomingShowsCount int
}

// ListArtists returns every artist, newest first
func ListArtists(db *gorm.DB) ([]models.Artist, error) {
	var artists []models.Artist
	if err := db.Order("created_at DESC").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// SearchArtists finds artists whose name contains term, ignoring case
func SearchArtists(db *gorm.DB, term string, now time.Time) (ArtistSearchResult, error) {
	var artists []models.Artist
	err := db.Preload("Shows").
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(term)).
		Order("name ASC").
		Find(&artists).Error
	if err != nil {
		return ArtistSearchResult{}, fmt.Errorf("failed to search artists: %w", err)
	}

	result := ArtistSearchResult{Count: len(artists), Data: make([]ArtistSummary, 0, len(artists))}
	for _, a := range artists {
		upcoming := 0
		for _, s := range a.Shows {
			if s.IsUpcoming(now) {
				upcoming++
			}
		}
		result.Data = append(result.Data, ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming})
	}
	return result, nil
}

// GetArtist loads a single artist
func GetArtist(db *gorm.DB, id string) (*models.Artist, error) {
	var artist models.Artist
	if err := db.First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, id)
		}
		return nil, fmt.Errorf("failed to load artist: %w", err)
	}
	return &artist, nil
}

// GetArtistDetail loads an artist with their shows and the venues hosting them
func GetArtistDetail(db *gorm.DB, id string, now time.Time) (*ArtistDetail, error) {
	var artist models.Artist
	err := db.Preload("Shows", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("start_time ASC")
	}).Preload("Shows.Venue").First(&artist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, id)
		}
		return nil, fmt.Errorf("failed to load artist: %w", err)
	}

	detail := &ArtistDetail{Artist: artist}
	for _, s := range artist.Shows {
		slot := ShowSlot{ID: s.VenueID, StartTime: s.StartTime}
		if s.Venue != nil {
			slot.Name = s.Venue.Name
			slot.ImageLink = s.Venue.ImageLink
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

// CreateArtist stores an artist from a validated form
func CreateArtist(db *gorm.DB, form ArtistForm) (*models.Artist, error) {
	artist := &models.Artist{}
	form.ApplyTo(artist)

	if err := db.Create(artist).Error; err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	return artist, nil
}

// UpdateArtist overwrites an artist's editable fields from a validated form
func UpdateArtist(db *gorm.DB, id string, form ArtistForm) (*models.Artist, error) {
	artist, err := GetArtist(db, id)
	if err != nil {
		return nil, err
	}

	form.ApplyTo(artist)
	if err := db.Save(artist).Error; err != nil {
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}
	return artist, nil
}
