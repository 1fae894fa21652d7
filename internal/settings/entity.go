package settings

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProfessorSettings struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessorID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"professor_id"`
	DefaultGracePeriod int       `gorm:"not null;default:15" json:"default_grace_period"`
	DefaultMaxAttempts int       `gorm:"not null;default:3" json:"default_max_attempts"`

	// Notification preferences as a free-form document; the set of toggles
	// changes more often than the schema.
	Notifications datatypes.JSON `gorm:"type:jsonb" json:"notifications,omitempty"`

	// Expo push token, AES-GCM encrypted at rest.
	PushToken *string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
