package model

// Reservation is a booking a classroom already holds before exams are placed.
type Reservation struct {
	Classroom string `csv:"Classroom" validate:"required"`
	Slot      string `csv:"Slot" validate:"required"`
}
