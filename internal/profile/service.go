package profile

import (
	"context"
	"strconv"

	"alumni-connect-api/internal/apperr"
	"alumni-connect-api/internal/auth"
	"alumni-connect-api/internal/cache"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const msgProfileNotFound = "Profile not found"

type ProfileService struct {
	DB    *gorm.DB
	Cache cache.Store[auth.ProfileSummary]

	sf singleflight.Group
}

var _ auth.ProfileLookup = (*ProfileService)(nil)

// GetProfile loads the public fields of user id. Profiles are never updated,
// so a cached summary stays valid until it expires.
func (ps *ProfileService) GetProfile(ctx context.Context, id int) (*auth.ProfileSummary, error) {
	if id <= 0 {
		return nil, apperr.NotFound(msgProfileNotFound)
	}

	store := cache.Or(ps.Cache)
	key := strconv.Itoa(id)
	if cached, ok := store.Get(ctx, key); ok {
		return cached, nil
	}

	// The shared load outlives any single caller; each caller still gives up
	// when its own context ends.
	ch := ps.sf.DoChan(key, func() (any, error) {
		return ps.load(context.WithoutCancel(ctx), id)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, apperr.Internal(errors.Wrap(ctx.Err(), "find profile"))
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	summary := res.Val.(auth.ProfileSummary)
	store.Set(ctx, key, &summary)
	return &summary, nil
}

// load reads one profile row. Concurrent misses for the same id share a
// single query.
func (ps *ProfileService) load(ctx context.Context, id int) (auth.ProfileSummary, error) {
	var summary auth.ProfileSummary
	err := ps.DB.WithContext(ctx).
		Model(&auth.User{}).
		Select("id", "name", "email", "college", "pass_out_year").
		Where("id = ?", id).
		Take(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return summary, apperr.NotFound(msgProfileNotFound)
	}
	if err != nil {
		return summary, apperr.Internal(errors.Wrap(err, "find profile"))
	}
	return summary, nil
}
