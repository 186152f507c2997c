// Package usecase defines the application operations of the monitoring session.
package usecase

import "vplmon/internal/domain/entity"

// Classifier maps a raw message to its panel category. It never fails.
type Classifier interface {
	Classify(msg entity.Message) *entity.ClassifiedMessage
}
