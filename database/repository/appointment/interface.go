package appointmentRepo

import (
	"context"
	"errors"

	"tailortalk/config"
	"tailortalk/database"
	"tailortalk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository stores booked appointment records.
type AppointmentRepository interface {
	Save(ctx context.Context, appt models.Appointment) (string, error)
	GetAll(ctx context.Context, limit int64) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Cancel(ctx context.Context, id string) error
	Reschedule(ctx context.Context, id string, newStart string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns an AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
