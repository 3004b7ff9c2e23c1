package logs

import (
	"context"
	"encoding/json"
	"time"

	"alumni-connect-api/internal/util"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

// Log stores entry, attaching metadata as JSON when it can be encoded.
func (ls *LogService) Log(ctx context.Context, entry SystemLog, metadata any) error {
	meta := datatypes.JSON("{}")
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	row := SystemLog{
		Level:     entry.Level,
		Service:   entry.Service,
		UserID:    entry.UserID,
		Action:    util.Clamp(entry.Action, 100),
		Message:   entry.Message,
		Metadata:  meta,
		CreatedAt: time.Now(),
	}
	if row.Level == "" {
		row.Level = LevelInfo
	}

	if err := ls.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return errors.Wrap(err, "insert audit log")
	}
	return nil
}
