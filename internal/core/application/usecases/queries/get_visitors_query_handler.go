package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetVisitorsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetVisitorsQueryHandler(db *gorm.DB) GetVisitorsQueryHandler {
	return GetVisitorsQueryHandler{db: db, now: time.Now}
}

// Handle lists the most recent visits first.
func (h GetVisitorsQueryHandler) Handle(
	ctx context.Context,
	query GetVisitorsQuery,
) (Listing[GetVisitorsQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetVisitorsQueryResponse]{}, err
	}

	listing := Listing[GetVisitorsQueryResponse]{
		Items: make([]GetVisitorsQueryResponse, 0),
		Page:  query.Page(),
	}

	f := query.Filter()
	var startedAfter *time.Time
	if f.StartedAfter != nil {
		t := f.StartedAfter.UTC()
		startedAfter = &t
	}
	args := map[string]any{
		"filter_bot":    f.IsBot != nil,
		"is_bot":        f.IsBot != nil && *f.IsBot,
		"search":        f.Search,
		"started_after": startedAfter,
		"limit":         query.Page().Size,
		"offset":        query.Page().Offset(),
	}
	const where = `WHERE (NOT @filter_bot OR v.is_bot = @is_bot)
		AND (@search = ''
			OR host(v.ip_address) = @search
			OR v.session_key = @search
			OR v.user_agent ILIKE '%' || @search || '%')
		AND (CAST(@started_after AS timestamptz) IS NULL OR v.start_time >= @started_after)`

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT count(*) FROM tracking_visitors v `+where, args).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			v.session_key,
			v.identity,
			v.user_id,
			host(v.ip_address),
			v.hostname,
			v.start_time,
			v.time_on_site,
			v.is_bot,
			v.data,
			v.expiry_time,
			v.end_time,
			(SELECT count(*) FROM tracking_page_views pv WHERE pv.session_key = v.session_key),
			coalesce((
				SELECT pv.url FROM tracking_page_views pv
				WHERE pv.session_key = v.session_key
				ORDER BY pv.view_time DESC
				LIMIT 1
			), '')
		FROM tracking_visitors v
		`+where+`
		ORDER BY v.start_time DESC, v.session_key
		LIMIT @limit OFFSET @offset
	`, args).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	now := h.now()
	for rows.Next() {
		var visit GetVisitorsQueryResponse
		var identity uuid.UUID
		var userID uuid.NullUUID
		var timeOnSite int
		var data []byte
		var expiry, ended sql.NullTime

		if err = rows.Scan(
			&visit.SessionKey,
			&identity,
			&userID,
			&visit.IPAddress,
			&visit.Hostname,
			&visit.StartTime,
			&timeOnSite,
			&visit.IsBot,
			&data,
			&expiry,
			&ended,
			&visit.NumPageViews,
			&visit.LandingPage,
		); err != nil {
			return listing, err
		}

		if visit.Identity, err = kernel.UUIDFromGoogle(identity); err != nil {
			return listing, err
		}
		if visit.UserID, err = optionalUUID(userID); err != nil {
			return listing, err
		}
		if len(data) > 0 && string(data) != "null" {
			var client analytics.UserAgentData
			if err = json.Unmarshal(data, &client); err != nil {
				return listing, err
			}
			visit.Client = &client
		}
		visit.TimeOnSite = time.Duration(timeOnSite) * time.Second
		visit.SessionOver = ended.Valid || (expiry.Valid && !expiry.Time.After(now))
		listing.Items = append(listing.Items, visit)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
