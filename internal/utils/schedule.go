package utils

import (
	"fmt"
)

// Appointment slots run on a 30-minute grid across the working day.
const (
	scheduleStartHour = 8  // 8 AM
	scheduleEndHour   = 18 // 6 PM
)

// TimeSlots returns every bookable HH:MM slot of the working day, in order.
func TimeSlots() []string {
	var slots []string
	for hour := scheduleStartHour; hour < scheduleEndHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

// ValidTimeSlot reports whether t is one of the bookable slots.
func ValidTimeSlot(t string) bool {
	for _, slot := range TimeSlots() {
		if slot == t {
			return true
		}
	}
	return false
}
