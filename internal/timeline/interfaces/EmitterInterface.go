package interfaces

import "timelinecsv/internal/models"

type EmitterInterface interface {
	Emit(root string, report *models.Report) error
	Close()
}
