package repository

// Models lists every table model in dependency order, for AutoMigrate.
func Models() []any {
	return []any{
		&adminModel{},
		&clientModel{},
		&technicianModel{},
		&serviceModel{},
		&technicianServiceModel{},
		&availabilityModel{},
		&bookingModel{},
		&reviewModel{},
		&paymentModel{},
		&notificationModel{},
		&favoriteModel{},
		&verifiedModel{},
	}
}
