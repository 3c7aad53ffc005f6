package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	l.id, l.category_id, l.name, l.contact_person, l.phone, l.email,
	l.rating, l.review_count, l.google_maps_url,
	l.street, l.city, l.state, l.postal_code, l.country, l.latitude, l.longitude,
	l.status, l.source, l.tags, l.notes, l.priority, l.is_deleted,
	l.created_at, l.updated_at, l.contacted_at, l.last_activity_at,
	c.id, c.name, c.slug, c.created_at, c.updated_at`

const leadSelect = `SELECT` + leadColumns + `
	FROM leads l
	LEFT JOIN categories c ON c.id = l.category_id`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, category_id, name, contact_person, phone, email,
			rating, review_count, google_maps_url,
			street, city, state, postal_code, country, latitude, longitude,
			status, source, tags, notes, priority, is_deleted,
			created_at, updated_at, contacted_at, last_activity_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26
		)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.CategoryID,
		nullString(lead.Name),
		nullString(lead.ContactPerson),
		lead.Phone,
		nullString(lead.Email),
		lead.Rating,
		lead.ReviewCount,
		nullString(lead.GoogleMapsURL),
		nullString(lead.Address.Street),
		nullString(lead.Address.City),
		nullString(lead.Address.State),
		nullString(lead.Address.PostalCode),
		nullString(lead.Address.Country),
		lead.Address.Latitude,
		lead.Address.Longitude,
		string(lead.Status),
		string(lead.Source),
		pq.Array(lead.Tags),
		nullString(lead.Notes),
		string(lead.Priority),
		lead.IsDeleted,
		lead.CreatedAt,
		lead.UpdatedAt,
		lead.ContactedAt,
		lead.LastActivityAt,
	)

	if isUniqueViolation(err) {
		return entity.ErrDuplicatePhone
	}
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, leadSelect+` WHERE l.id = $1`, id)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// FindByPhone looks up a non-deleted lead by phone, optionally excluding
// one id (the record being updated).
func (r *LeadRepository) FindByPhone(ctx context.Context, phone, excludeID string) (*entity.Lead, error) {
	query := leadSelect + `
		WHERE l.phone = $1 AND l.is_deleted = false AND ($2 = '' OR l.id::text <> $2)
		LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, phone, excludeID)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			category_id = $1, name = $2, contact_person = $3, phone = $4, email = $5,
			rating = $6, review_count = $7, google_maps_url = $8,
			street = $9, city = $10, state = $11, postal_code = $12, country = $13,
			latitude = $14, longitude = $15,
			status = $16, source = $17, tags = $18, notes = $19, priority = $20,
			is_deleted = $21, updated_at = $22, contacted_at = $23, last_activity_at = $24
		WHERE id = $25
	`

	result, err := r.DB.ExecContext(ctx, query,
		lead.CategoryID,
		nullString(lead.Name),
		nullString(lead.ContactPerson),
		lead.Phone,
		nullString(lead.Email),
		lead.Rating,
		lead.ReviewCount,
		nullString(lead.GoogleMapsURL),
		nullString(lead.Address.Street),
		nullString(lead.Address.City),
		nullString(lead.Address.State),
		nullString(lead.Address.PostalCode),
		nullString(lead.Address.Country),
		lead.Address.Latitude,
		lead.Address.Longitude,
		string(lead.Status),
		string(lead.Source),
		pq.Array(lead.Tags),
		nullString(lead.Notes),
		string(lead.Priority),
		lead.IsDeleted,
		lead.UpdatedAt,
		lead.ContactedAt,
		lead.LastActivityAt,
		lead.ID,
	)

	if isUniqueViolation(err) {
		return entity.ErrDuplicatePhone
	}
	if isInvalidUUID(err) {
		return entity.ErrNotFound
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// BulkUpdateStatus moves every matched id in a single statement, so the
// batch either applies or fails as a whole. contacted_at is stamped for
// the whole batch when the target status is "contacted".
func (r *LeadRepository) BulkUpdateStatus(ctx context.Context, ids []string, status entity.LeadStatus, now time.Time) error {
	query := `
		UPDATE leads SET
			status = $1,
			updated_at = $2,
			last_activity_at = $2,
			contacted_at = CASE WHEN $3 THEN $2 ELSE contacted_at END
		WHERE id = ANY($4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		string(status),
		now,
		status == entity.StatusContacted,
		pq.Array(ids),
	)
	return err
}

func (r *LeadRepository) HardDelete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if isInvalidUUID(err) {
		return entity.ErrNotFound
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) List(ctx context.Context, includeDeleted bool) ([]*entity.Lead, error) {
	query := leadSelect + ` WHERE l.is_deleted = false ORDER BY l.created_at DESC`
	if includeDeleted {
		query = leadSelect + ` ORDER BY l.created_at DESC`
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) DistinctTags(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT tag
		FROM leads l, unnest(l.tags) AS tag
		WHERE l.is_deleted = false AND tag <> ''
		ORDER BY tag`

	return r.queryStrings(ctx, query)
}

func (r *LeadRepository) DistinctCities(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT city
		FROM leads
		WHERE is_deleted = false AND city IS NOT NULL AND city <> ''
		ORDER BY city`

	return r.queryStrings(ctx, query)
}

func (r *LeadRepository) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var name, contactPerson, email, mapsURL, notes sql.NullString
	var street, city, state, postalCode, country sql.NullString
	var latitude, longitude sql.NullFloat64
	var status, source, priority string
	var tags pq.StringArray
	var contactedAt, lastActivityAt sql.NullTime
	var catID, catName, catSlug sql.NullString
	var catCreatedAt, catUpdatedAt sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.CategoryID,
		&name,
		&contactPerson,
		&lead.Phone,
		&email,
		&lead.Rating,
		&lead.ReviewCount,
		&mapsURL,
		&street,
		&city,
		&state,
		&postalCode,
		&country,
		&latitude,
		&longitude,
		&status,
		&source,
		&tags,
		&notes,
		&priority,
		&lead.IsDeleted,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&contactedAt,
		&lastActivityAt,
		&catID,
		&catName,
		&catSlug,
		&catCreatedAt,
		&catUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Name = name.String
	lead.ContactPerson = contactPerson.String
	lead.Email = email.String
	lead.GoogleMapsURL = mapsURL.String
	lead.Notes = notes.String
	lead.Address = entity.Address{
		Street:     street.String,
		City:       city.String,
		State:      state.String,
		PostalCode: postalCode.String,
		Country:    country.String,
	}
	if latitude.Valid {
		lead.Address.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		lead.Address.Longitude = &longitude.Float64
	}
	lead.Status = entity.LeadStatus(status)
	lead.Source = entity.LeadSource(source)
	lead.Priority = entity.Priority(priority)
	lead.Tags = []string(tags)
	if lead.Tags == nil {
		lead.Tags = []string{}
	}
	if contactedAt.Valid {
		t := contactedAt.Time
		lead.ContactedAt = &t
	}
	if lastActivityAt.Valid {
		t := lastActivityAt.Time
		lead.LastActivityAt = &t
	}
	if catID.Valid {
		lead.Category = &entity.Category{
			ID:        catID.String,
			Name:      catName.String,
			Slug:      catSlug.String,
			CreatedAt: catCreatedAt.Time,
			UpdatedAt: catUpdatedAt.Time,
		}
	}

	return &lead, nil
}
