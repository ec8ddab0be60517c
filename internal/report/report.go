package report

import (
	"fmt"

	"github.com/meltforce/ftracker/internal/models"
)

// InfoMessage is the printable summary of one training. Numeric fields are
// pre-rendered with three fractional digits.
type InfoMessage struct {
	TrainingType string
	Duration     string
	Distance     string
	Speed        string
	Calories     string
}

// NewInfoMessage formats raw metric values into an InfoMessage.
func NewInfoMessage(trainingType string, duration, distance, speed, calories float64) InfoMessage {
	return InfoMessage{
		TrainingType: trainingType,
		Duration:     formatValue(duration),
		Distance:     formatValue(distance),
		Speed:        formatValue(speed),
		Calories:     formatValue(calories),
	}
}

// ShowTrainingInfo builds the summary for a training.
func ShowTrainingInfo(t models.Training) InfoMessage {
	m := t.Metrics()
	return NewInfoMessage(t.Kind().String(), t.Duration(), m.DistanceKm, m.MeanSpeedKmh, m.Calories)
}

// Message returns the one-line report.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %s ч.; Дистанция: %s км; Ср. скорость: %s км/ч; Потрачено ккал: %s.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
