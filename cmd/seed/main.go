package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// CLI flags
var (
	dsn           = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	adminEmail    = flag.String("admin-email", "admin@eventcentral.local", "Email for the seeded admin account")
	adminPassword = flag.String("admin-password", "", "Password for the seeded admin (default: env SEED_ADMIN_PASSWORD)")
	skipEvents    = flag.Bool("skip-events", false, "Seed only the admin account, no sample events")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("--dsn not provided and DATABASE_URL not set")
	}
	password := *adminPassword
	if password == "" {
		password = os.Getenv("SEED_ADMIN_PASSWORD")
	}
	if password == "" {
		log.Fatal("--admin-password not provided and SEED_ADMIN_PASSWORD not set")
	}

	sqlDB, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer sqlDB.Close()

	adminID, err := seedAdmin(sqlDB, *adminEmail, password)
	if err != nil {
		log.Fatal("Seeding admin failed: ", err)
	}

	if !*skipEvents {
		if err := seedEvents(sqlDB, adminID); err != nil {
			log.Fatal("Seeding events failed: ", err)
		}
	}

	fmt.Println("Seeding complete")
}

// seedAdmin inserts the admin account if its email is not taken and returns
// the admin's user id either way. Re-running the seeder is a no-op.
func seedAdmin(sqlDB *sql.DB, email, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err = sqlDB.Exec(`
		INSERT INTO app_auth.users (user_id, full_name, email, hashed_password, role, created_at)
		VALUES ($1, $2, $3, $4, 'admin', $5)
		ON CONFLICT (email) DO NOTHING
	`, id, "EventCentral Admin", email, string(hashed), time.Now().UTC())
	if err != nil {
		return "", err
	}

	// The insert may have been skipped; read back the canonical id.
	var adminID string
	if err := sqlDB.QueryRow(`SELECT user_id FROM app_auth.users WHERE email = $1`, email).Scan(&adminID); err != nil {
		return "", err
	}

	log.Printf("Admin account ready: %s", email)
	return adminID, nil
}

func seedEvents(sqlDB *sql.DB, creatorID string) error {
	samples := []struct {
		title, description, category, location string
		daysAhead                              int
	}{
		{"Go Meetup", "Monthly Go user group with lightning talks.", "tech", "Community Hall A", 14},
		{"Open Mic Night", "Bring an instrument or a poem.", "music", "The Basement", 7},
		{"City Marathon Expo", "Race pack pickup and running gear stalls.", "sports", "Convention Center", 30},
	}

	for _, s := range samples {
		_, err := sqlDB.Exec(`
			INSERT INTO app_events.events (id, title, description, category, date, location, creator_id, created_at, updated_at)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $8
			WHERE NOT EXISTS (SELECT 1 FROM app_events.events WHERE title = $2)
		`, uuid.New().String(), s.title, s.description, s.category,
			time.Now().UTC().AddDate(0, 0, s.daysAhead), s.location, creatorID, time.Now().UTC())
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d sample events", len(samples))
	return nil
}
