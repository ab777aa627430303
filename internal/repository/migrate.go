package repository

import "gorm.io/gorm"

// Migrate creates the entity tables. On Postgres it also installs an
// exclusion constraint so the store itself rejects two active bookings
// with intersecting date ranges on one room.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&clientModel{},
		&roomModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
		DO $$ BEGIN
			ALTER TABLE bookings
			ADD CONSTRAINT idx_no_room_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				daterange(check_in::date, check_out::date, '[)') WITH &&
			)
			WHERE (status IN ('pending', 'confirmed'));
		EXCEPTION
			WHEN duplicate_object THEN NULL;
			WHEN duplicate_table THEN NULL;
		END $$;
	`).Error
}
