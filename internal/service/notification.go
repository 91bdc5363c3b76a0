package service

import (
	"fmt"
	"log"
	"time"

	"quickride/internal/domain"
	"quickride/internal/simulator"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationRideBooked     NotificationType = "RIDE_BOOKED"
	NotificationDriverAssigned NotificationType = "DRIVER_ASSIGNED"
	NotificationDriverArriving NotificationType = "DRIVER_ARRIVING"
	NotificationDriverArrived  NotificationType = "DRIVER_ARRIVED"
	NotificationTripStarted    NotificationType = "TRIP_STARTED"
	NotificationTripCompleted  NotificationType = "TRIP_COMPLETED"
	NotificationRideCancelled  NotificationType = "RIDE_CANCELLED"
)

// Notification is the toast-equivalent message surfaced to the user.
type Notification struct {
	Type      NotificationType
	Title     string
	Message   string
	RideID    string
	CreatedAt time.Time
}

// NotificationService delivers user-facing notifications. This demo client
// has no push channel; delivery is a structured log line, and the websocket
// hub carries the snapshot itself.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyRideBooked announces a successful booking.
func (s *NotificationService) NotifyRideBooked(ride *domain.Ride) {
	s.send(Notification{
		Type:      NotificationRideBooked,
		Title:     "Ride Booked",
		Message:   "Ride booked successfully! Finding your driver...",
		RideID:    ride.ID,
		CreatedAt: time.Now(),
	})
}

// NotifyStatus turns a lifecycle transition into the matching notification.
// Snapshots for states without a user-facing message are ignored.
func (s *NotificationService) NotifyStatus(snap simulator.Snapshot) {
	n := Notification{RideID: snap.RideID, CreatedAt: time.Now()}

	switch snap.Status {
	case domain.RideStatusDriverAssigned:
		name := "Your driver"
		if snap.Driver != nil {
			name = snap.Driver.Name
		}
		n.Type = NotificationDriverAssigned
		n.Title = "Driver Assigned"
		n.Message = fmt.Sprintf("Driver assigned! %s is on the way", firstName(name))
	case domain.RideStatusDriverArriving:
		n.Type = NotificationDriverArriving
		n.Title = "Driver Arriving"
		n.Message = "Driver is arriving soon"
	case domain.RideStatusDriverArrived:
		n.Type = NotificationDriverArrived
		n.Title = "Driver Arrived"
		n.Message = "Driver has arrived!"
	case domain.RideStatusInProgress:
		n.Type = NotificationTripStarted
		n.Title = "Trip Started"
		n.Message = "Trip started"
	case domain.RideStatusCompleted:
		n.Type = NotificationTripCompleted
		n.Title = "Trip Completed"
		n.Message = "Trip completed!"
	case domain.RideStatusCancelled:
		n.Type = NotificationRideCancelled
		n.Title = "Ride Cancelled"
		n.Message = "Ride cancelled"
	default:
		return
	}

	s.send(n)
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(n Notification) {
	log.Printf("[NOTIFICATION] Type=%s, Ride=%s, Title=%s, Message=%s",
		n.Type, n.RideID, n.Title, n.Message)
}

// firstName trims a full name down to the toast's informal first name.
func firstName(name string) string {
	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}
	return name
}
