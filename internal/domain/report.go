package domain

import "github.com/google/uuid"

type TechnicianReport struct {
	TechnicianID           uuid.UUID `json:"technician_id"`
	ActiveBookings         int64     `json:"active_bookings"`
	TotalBookings          int64     `json:"total_bookings"`
	RejectedBookings       int64     `json:"rejected_bookings"`
	AcceptedBookings       int64     `json:"accepted_bookings"`
	TotalPayments          int64     `json:"total_payments"`
	TotalRevenue           float64   `json:"total_revenue"`
	ShortestDistanceKm     float64   `json:"shortest_distance_km"`
	LongestDistanceKm      float64   `json:"longest_distance_km"`
	TotalDistanceKm        float64   `json:"total_distance_km"`
	Rating                 float64   `json:"rating"`
	NumReviews             int64     `json:"num_reviews"`
	NumRepeatingClients    int64     `json:"num_repeating_clients"`
	NumServicesOffered     int64     `json:"num_services_offered"`
	MostBookedServiceName  string    `json:"most_booked_service_name"`
	LeastBookedServiceName string    `json:"least_booked_service_name"`
}

type PlatformSummary struct {
	MostBookedTechnicianID   *uuid.UUID              `json:"most_booked_technician_id"`
	MostEarningTechnicianID  *uuid.UUID              `json:"most_earning_technician_id"`
	MostFavoriteTechnicianID *uuid.UUID              `json:"most_favorite_technician_id"`
	MostBookedServiceName    string                  `json:"most_booked_service_name"`
	UsersByRole              map[UserRole]int64      `json:"users_by_role"`
	BookingsByStatus         map[BookingStatus]int64 `json:"bookings_by_status"`
}
