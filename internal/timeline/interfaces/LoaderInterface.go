package interfaces

import "timelinecsv/internal/models"

type LoaderInterface interface {
	Load(path string) ([]models.TimelineObject, error)
}
