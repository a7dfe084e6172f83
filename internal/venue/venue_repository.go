package venue

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VenueRepository defines methods to interact with venue records
type VenueRepository interface {
	GetVenuesBySport(sport string) ([]Venue, error)
	UpsertVenue(name, sport string) (*Venue, error)
}

// GormVenueRepository implements VenueRepository using GORM
type GormVenueRepository struct {
	db *gorm.DB
}

// NewGormVenueRepository creates a new GormVenueRepository
func NewGormVenueRepository(db *gorm.DB) *GormVenueRepository {
	return &GormVenueRepository{db: db}
}

// GetVenuesBySport lists venues for a sport sorted by name.
func (r *GormVenueRepository) GetVenuesBySport(sport string) ([]Venue, error) {
	var venues []Venue
	err := r.db.Where("sport = ?", sport).Order("name asc").Find(&venues).Error
	return venues, err
}

// UpsertVenue inserts the (name, sport) pair if absent and returns the row
// either way. The insert-or-ignore runs as one statement so concurrent
// upserts of the same pair cannot create duplicates.
func (r *GormVenueRepository) UpsertVenue(name, sport string) (*Venue, error) {
	v := Venue{Name: name, Sport: sport}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "sport"}},
		DoNothing: true,
	}).Create(&v).Error
	if err != nil {
		return nil, err
	}

	// On conflict the insert is a no-op and v keeps a zero ID; fetch the
	// existing row.
	if v.ID == 0 {
		if err := r.db.Where("name = ? AND sport = ?", name, sport).First(&v).Error; err != nil {
			return nil, err
		}
	}
	return &v, nil
}
