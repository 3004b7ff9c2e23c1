package community

import (
	"context"
	"strconv"
	"strings"

	"alumni-connect-api/internal/apperr"
	"alumni-connect-api/internal/cache"
	"alumni-connect-api/internal/database"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CommunityService struct {
	DB    *gorm.DB
	Cache cache.Store[[]Community]
	// Version is bumped on every create. Defaults to an in-process counter.
	Version cache.Counter

	local cache.LocalCounter
}

func (cs *CommunityService) version() cache.Counter {
	if cs.Version != nil {
		return cs.Version
	}
	return &cs.local
}

func listCacheKey(gen int64) string {
	return "all:v" + strconv.FormatInt(gen, 10)
}

// ListCommunities returns every community in creation order. The result is
// never nil.
func (cs *CommunityService) ListCommunities(ctx context.Context) ([]Community, error) {
	store := cache.Or(cs.Cache)
	gen, verr := cs.version().Get(ctx)
	key := listCacheKey(gen)
	if verr == nil {
		if cached, ok := store.Get(ctx, key); ok && *cached != nil {
			return *cached, nil
		}
	}

	communities := []Community{}
	if err := cs.DB.WithContext(ctx).Order("id asc").Find(&communities).Error; err != nil {
		return nil, apperr.Internal(errors.Wrap(err, "list communities"))
	}

	// A create that lands after the read above bumps the generation, so this
	// entry is never served again.
	if verr == nil {
		store.Set(ctx, key, &communities)
	}
	return communities, nil
}

func (cs *CommunityService) CreateCommunity(ctx context.Context, name, description string) (*Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(msgNameRequired)
	}

	var count int64
	if err := cs.DB.WithContext(ctx).Model(&Community{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperr.Internal(errors.Wrap(err, "check community name"))
	}
	if count > 0 {
		return nil, apperr.Conflict(msgCommunityExists)
	}

	community := Community{Name: name, Description: description}
	if err := cs.DB.WithContext(ctx).Create(&community).Error; err != nil {
		// the name may have been taken between the check and the insert
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict(msgCommunityExists)
		}
		return nil, apperr.Internal(errors.Wrap(err, "insert community"))
	}

	if err := cs.version().Incr(ctx); err != nil {
		logrus.WithError(err).Warn("community list version bump failed")
	}
	return &community, nil
}
